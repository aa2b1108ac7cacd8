package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/document"
)

// maxEntrySize bounds how much of a single archive entry is read.
const maxEntrySize = 16 << 20

// ReadUpload parses an uploaded export. A .json file must be named like an
// export unless force is set; a .zip must contain one. Parse issues from
// lenient decoding are returned alongside the document.
func ReadUpload(name string, data []byte, force bool) (*document.Document, []string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if !force && !isExportJSON(filepath.Base(name)) {
			return nil, nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrUnexpectedName)
		}
		return document.Parse(data)
	case ".zip":
		return readArchive(data)
	default:
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrNotJSONFile)
	}
}

// ReadFile is ReadUpload for a file on disk.
func ReadFile(p string, force bool) (*document.Document, []string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, nil, fmt.Errorf("reading upload: %w", err)
	}
	return ReadUpload(p, data, force)
}

func isExportJSON(base string) bool {
	lower := strings.ToLower(base)
	return strings.HasPrefix(lower, FilePrefix) && strings.HasSuffix(lower, ".json")
}

// readArchive picks the first export JSON by name. The manifest is never
// taken for a document.
func readArchive(data []byte) (*document.Document, []string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	var candidates []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if isExportJSON(path.Base(f.Name)) {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return nil, nil, ErrNoDocumentInArchive
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })

	rc, err := candidates[0].Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", candidates[0].Name, err)
	}
	defer rc.Close()
	body, err := io.ReadAll(io.LimitReader(rc, maxEntrySize))
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", candidates[0].Name, err)
	}
	return document.Parse(body)
}
