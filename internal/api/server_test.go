package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/alexanderramin/nafwizard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(service.NewWizardService(service.WizardDeps{Now: testutil.Clock()}), nil)
}

func do(t *testing.T, srv http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func buildDoc(t *testing.T, srv http.Handler, snap formstate.Snapshot) []byte {
	t.Helper()
	body, err := json.Marshal(snap)
	require.NoError(t, err)
	rr := do(t, srv, http.MethodPost, "/v1/build", "application/json", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return rr.Body.Bytes()
}

func TestHealthz(t *testing.T) {
	rr := do(t, newTestServer(), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestCatalog(t *testing.T) {
	rr := do(t, newTestServer(), http.MethodGet, "/v1/catalog", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp catalogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Categories)
	assert.Len(t, resp.Dependencies, 10)
	assert.Len(t, resp.Groups, 14)
	assert.Contains(t, resp.HolidayRegions, "United States")
}

func TestBuild(t *testing.T) {
	srv := newTestServer()
	body := buildDoc(t, srv, formstate.Snapshot{
		formstate.KeyTitle:     "Port turn-up",
		"pres_interact_CLI":    true,
		formstate.KeyStartDate: "2024-01-01",
	})

	var doc document.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "Port turn-up", doc.Initiative.Title)
	assert.Equal(t, "Users will interact with the solution via CLI.", doc.Presentation.Interaction)
	assert.Equal(t, "2024-01-01", doc.Timeline.StartDate)
}

func TestBuild_RejectsNonObject(t *testing.T) {
	rr := do(t, newTestServer(), http.MethodPost, "/v1/build", "application/json", []byte(`[1]`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid snapshot")
}

func TestRestore(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{"pres_user_IT": true})

	rr := do(t, srv, http.MethodPost, "/v1/restore", "application/json", doc)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp restoreResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Snapshot["pres_user_IT"])
	assert.Equal(t, false, resp.Snapshot["pres_user_Operations"])
	assert.Empty(t, resp.Warnings)
}

func TestRestore_ReportsWarningsAndIssues(t *testing.T) {
	body := []byte(`{
		"timeline": {"start_date": "someday", "staff_count": "two"},
		"dependencies": [{"name": "Mainframe"}]
	}`)

	rr := do(t, newTestServer(), http.MethodPost, "/v1/restore", "application/json", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp restoreResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Warnings, 2)
	assert.NotEmpty(t, resp.Issues)
}

func TestRestore_RejectsNonObject(t *testing.T) {
	rr := do(t, newTestServer(), http.MethodPost, "/v1/restore", "application/json", []byte(`"x"`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, newTestServer(), http.MethodPost, "/v1/restore", "application/json", []byte(`{`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidate(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{formstate.KeyTitle: "ok"})

	rr := do(t, srv, http.MethodPost, "/v1/validate", "application/json", doc)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp validateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	rr = do(t, srv, http.MethodPost, "/v1/validate", "application/json", []byte(`{"initiative": {"category": "— Select a category —"}}`))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)
}

func TestSchedule(t *testing.T) {
	body := []byte(`{
		"start_date": "2024-01-01",
		"holiday_region": "United States",
		"milestones": [
			{"name": "Planning", "duration_bd": 5},
			{"name": "", "duration_bd": 0},
			{"name": "Design", "duration_bd": 10, "notes": "HLD"}
		]
	}`)

	rr := do(t, newTestServer(), http.MethodPost, "/v1/schedule", "application/json", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.TotalBusinessDays)
	require.NotNil(t, resp.ProjectedCompletion)
	assert.Equal(t, "2024-01-23", *resp.ProjectedCompletion)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "2024-01-08", resp.Items[0].End)
	assert.Equal(t, "HLD", resp.Items[1].Notes)
	assert.NotEmpty(t, resp.Holidays)
}

func TestSchedule_BadInput(t *testing.T) {
	srv := newTestServer()

	rr := do(t, srv, http.MethodPost, "/v1/schedule", "application/json", []byte(`{"holiday_region": "Atlantis"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, srv, http.MethodPost, "/v1/schedule", "application/json", []byte(`{"start_date": "tomorrow"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReport(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{formstate.KeyTitle: "Backups"})

	rr := do(t, srv, http.MethodPost, "/v1/report?format=md", "application/json", doc)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/markdown")
	assert.True(t, strings.HasPrefix(rr.Body.String(), "# Solution Design: Backups"))

	rr = do(t, srv, http.MethodPost, "/v1/report?format=html", "application/json", doc)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = do(t, srv, http.MethodPost, "/v1/report?format=pdf", "application/json", doc)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExport(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{formstate.KeyTitle: "Backups"})

	rr := do(t, srv, http.MethodPost, "/v1/export", "application/json", doc)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/zip", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "naf_report_Backups_20240101_120000.zip")
	assert.NotEmpty(t, rr.Header().Get("X-Export-Id"))

	zr, err := zip.NewReader(bytes.NewReader(rr.Body.Bytes()), int64(rr.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 4)
}

func TestExport_NoContent(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Encode(domain.NewFormState()))

	rr := do(t, srv, http.MethodPost, "/v1/export", "application/json", doc)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestImport_Multipart(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{formstate.KeyTitle: "Backups"})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "naf_report_Backups.json")
	require.NoError(t, err)
	_, err = part.Write(doc)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rr := do(t, srv, http.MethodPost, "/v1/import", mw.FormDataContentType(), body.Bytes())
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Document document.Document `json:"document"`
		Snapshot map[string]any    `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Backups", resp.Document.Initiative.Title)
	assert.Equal(t, "Backups", resp.Snapshot[formstate.KeyTitle])
}

func TestImport_RawBody(t *testing.T) {
	srv := newTestServer()
	doc := buildDoc(t, srv, formstate.Snapshot{formstate.KeyTitle: "Backups"})

	rr := do(t, srv, http.MethodPost, "/v1/import?name=notes.json", "application/json", doc)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, srv, http.MethodPost, "/v1/import?name=notes.json&force=true", "application/json", doc)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, srv, http.MethodPost, "/v1/import", "application/json", doc)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, srv, http.MethodPost, "/v1/import?name=bundle.zip", "application/zip", []byte("garbage"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
