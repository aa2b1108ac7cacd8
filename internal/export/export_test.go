package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/testutil"
	"github.com/alexanderramin/nafwizard/internal/wizard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func buildDocument(t *testing.T, title string) *document.Document {
	t.Helper()
	b := wizard.NewBuilder(wizard.WithClock(testutil.Clock()))
	return b.Build(testutil.NewTestFormState(
		testutil.WithTitle(title),
		testutil.WithUsers("Network Engineers"),
		testutil.WithStartDate(testutil.Date(2024, 1, 1)),
		testutil.WithMilestones(domain.Milestone{Name: "Build", DurationBD: 5}),
	))
}

func unzip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = body
	}
	return out
}

func makeZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		w, err := zw.Create(n)
		require.NoError(t, err)
		_, err = w.Write(files[n])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Port Turn-up", "Port_Turn-up"},
		{"  ", "solution"},
		{"!!!", "solution"},
		{"a / b \\ c", "a_b_c"},
		{"__keep_me__", "keep_me"},
		{"Résumé builder", "R_sum_builder"},
		{strings.Repeat("x", 40), strings.Repeat("x", 30)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeTitle(tt.in), "input %q", tt.in)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "naf_report_Port_Turn-up_20240305_140709", BaseName("Port Turn-up", exportTime))
}

func TestPackage_WritesAllArtifacts(t *testing.T) {
	doc := buildDocument(t, "Port Turn-up")

	arc, err := Package(doc, exportTime)
	require.NoError(t, err)

	base := "naf_report_Port_Turn-up_20240305_140709"
	assert.Equal(t, base+".zip", arc.Name)

	files := unzip(t, arc.Data)
	require.Len(t, files, 4)
	assert.Contains(t, files, base+".json")
	assert.Contains(t, files, base+".md")
	assert.Contains(t, files, base+"_gantt.html")
	assert.Contains(t, files, ManifestName)

	assert.True(t, strings.HasPrefix(string(files[base+".md"]), "# Solution Design: Port Turn-up"))
	assert.Contains(t, string(files[base+"_gantt.html"]), "Build")

	var m Manifest
	require.NoError(t, json.Unmarshal(files[ManifestName], &m))
	_, err = uuid.Parse(m.ExportID)
	assert.NoError(t, err)
	assert.Equal(t, arc.Manifest.ExportID, m.ExportID)
	assert.Equal(t, []string{base + ".json", base + ".md", base + "_gantt.html"}, m.Files)
	assert.True(t, exportTime.Equal(m.GeneratedAt))
}

func TestPackage_ExportIDsAreUnique(t *testing.T) {
	doc := buildDocument(t, "x")
	a, err := Package(doc, exportTime)
	require.NoError(t, err)
	b, err := Package(doc, exportTime)
	require.NoError(t, err)
	assert.NotEqual(t, a.Manifest.ExportID, b.Manifest.ExportID)
}

func TestPackage_RoundTripsThroughReadUpload(t *testing.T) {
	doc := buildDocument(t, "Port Turn-up")
	arc, err := Package(doc, exportTime)
	require.NoError(t, err)

	got, issues, err := ReadUpload(arc.Name, arc.Data, false)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, doc, got)
}

func TestReadUpload_JSONName(t *testing.T) {
	data := []byte(`{"initiative": {"title": "Imported"}}`)

	doc, _, err := ReadUpload("naf_report_Imported_20240101_000000.json", data, false)
	require.NoError(t, err)
	assert.Equal(t, "Imported", doc.Initiative.Title)

	_, _, err = ReadUpload("notes.json", data, false)
	assert.ErrorIs(t, err, ErrUnexpectedName)

	doc, _, err = ReadUpload("notes.json", data, true)
	require.NoError(t, err)
	assert.Equal(t, "Imported", doc.Initiative.Title)
}

func TestReadUpload_RejectsOtherTypes(t *testing.T) {
	_, _, err := ReadUpload("naf_report_x.txt", []byte("{}"), true)
	assert.ErrorIs(t, err, ErrNotJSONFile)
}

func TestReadUpload_RequiresObject(t *testing.T) {
	_, _, err := ReadUpload("naf_report_x.json", []byte(`[1, 2]`), false)
	assert.ErrorIs(t, err, document.ErrNotObject)
}

func TestReadUpload_ArchiveWithoutDocument(t *testing.T) {
	data := makeZip(t, map[string][]byte{
		ManifestName: []byte(`{}`),
		"notes.md":   []byte("# hi"),
	})

	_, _, err := ReadUpload("bundle.zip", data, false)
	assert.ErrorIs(t, err, ErrNoDocumentInArchive)
}

func TestReadUpload_ArchivePicksFirstDocumentByName(t *testing.T) {
	data := makeZip(t, map[string][]byte{
		"b/naf_report_second.json": []byte(`{"initiative": {"title": "Second"}}`),
		"a/naf_report_first.json":  []byte(`{"initiative": {"title": "First"}}`),
	})

	doc, _, err := ReadUpload("bundle.ZIP", data, false)
	require.NoError(t, err)
	assert.Equal(t, "First", doc.Initiative.Title)
}

func TestReadUpload_CorruptArchive(t *testing.T) {
	_, _, err := ReadUpload("bundle.zip", []byte("not a zip"), false)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "naf_report_disk.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"my_role": {"who": "me"}}`), 0o644))

	doc, _, err := ReadFile(p, false)
	require.NoError(t, err)
	assert.Equal(t, "me", doc.MyRole.Who)
}
