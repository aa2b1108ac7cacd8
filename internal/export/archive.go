package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/report"
	"github.com/google/uuid"
)

// Manifest describes the contents of an export archive.
type Manifest struct {
	ExportID    string    `json:"export_id"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Files       []string  `json:"files"`
}

// Archive is a finished export: the ZIP bytes and the name to save them under.
type Archive struct {
	Name     string
	Data     []byte
	Manifest Manifest
}

type file struct {
	name string
	data []byte
}

// Package renders doc and writes the document JSON, the solution design
// markdown, the timeline chart and a manifest into one ZIP.
func Package(doc *document.Document, generatedAt time.Time) (*Archive, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	base := BaseName(doc.Initiative.Title, generatedAt)

	docJSON, err := document.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	md, err := report.Markdown(doc, generatedAt)
	if err != nil {
		return nil, err
	}
	gantt, err := report.GanttHTML(doc)
	if err != nil {
		return nil, err
	}

	files := []file{
		{base + ".json", docJSON},
		{base + ".md", []byte(md)},
		{base + "_gantt.html", []byte(gantt)},
	}
	manifest := Manifest{
		ExportID:    uuid.New().String(),
		Title:       doc.Initiative.Title,
		GeneratedAt: generatedAt.UTC(),
	}
	for _, f := range files {
		manifest.Files = append(manifest.Files, f.name)
	}
	mdata, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	files = append(files, file{ManifestName, mdata})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.name,
			Method:   zip.Deflate,
			Modified: generatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("adding %s: %w", f.name, err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return &Archive{Name: base + ".zip", Data: buf.Bytes(), Manifest: manifest}, nil
}
