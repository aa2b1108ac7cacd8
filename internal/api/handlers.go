package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/formstate"
	"github.com/alexanderramin/nafwizard/internal/scheduler"
	"github.com/alexanderramin/nafwizard/internal/service"
)

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.svc.Catalog()
	resp := catalogResponse{
		Categories:           cat.Categories,
		DeploymentStrategies: cat.DeploymentStrategies,
		Stakeholders:         cat.Stakeholders,
		Dependencies:         catalog.Dependencies,
		HolidayRegions:       calendar.Regions(),
		RiskReasons:          catalog.RiskReasons,
	}
	for _, g := range catalog.Groups() {
		resp.Groups = append(resp.Groups, groupJSON{ID: g.ID, Label: g.Label, Options: g.Options, Custom: g.HasCustom()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	snap := formstate.Snapshot{}
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid snapshot: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, s.svc.BuildSnapshot(r.Context(), snap))
}

// readDocument leniently parses a document body.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (*document.Document, []string, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, statusFor(err), fmt.Errorf("reading body: %w", err))
		return nil, nil, false
	}
	doc, issues, err := document.Parse(body)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return nil, nil, false
	}
	return doc, issues, true
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	doc, issues, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	res := s.svc.Restore(r.Context(), doc)
	writeJSON(w, http.StatusOK, restoreResponse{
		Snapshot: res.Snapshot,
		Warnings: toWarnings(res.Warnings),
		Issues:   nonNil(issues),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, issues, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	resp := validateResponse{Errors: []string{}, Issues: nonNil(issues)}
	for _, err := range document.Validate(doc) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	resp.Valid = len(resp.Errors) == 0
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req service.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid schedule request: %w", err))
		return
	}
	res, err := s.svc.Schedule(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// Only a bad start date gets here.
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}

	plan := res.Plan
	resp := scheduleResponse{
		StartDate:         plan.Start.Format(scheduler.DateLayout),
		HolidayRegion:     res.Region,
		TotalBusinessDays: plan.TotalBusinessDays,
		EstimateMonths:    res.EstimateMonths,
		Items:             make([]scheduleItemJSON, 0, len(plan.Items)),
		Holidays:          make([]holidayJSON, 0, len(res.Holidays)),
	}
	if plan.ProjectedCompletion != nil {
		end := plan.ProjectedCompletion.Format(scheduler.DateLayout)
		resp.ProjectedCompletion = &end
	}
	for _, it := range plan.Items {
		resp.Items = append(resp.Items, scheduleItemJSON{
			Name:       it.Name,
			DurationBD: it.DurationBD,
			Start:      it.Start.Format(scheduler.DateLayout),
			End:        it.End.Format(scheduler.DateLayout),
			Notes:      it.Notes,
		})
	}
	for _, h := range res.Holidays {
		resp.Holidays = append(resp.Holidays, holidayJSON{Date: h.Date.Format(scheduler.DateLayout), Name: h.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

var contentTypes = map[service.ReportFormat]string{
	service.FormatMarkdown:   "text/markdown; charset=utf-8",
	service.FormatHighlights: "text/markdown; charset=utf-8",
	service.FormatHTML:       "text/html; charset=utf-8",
	service.FormatJSON:       "application/json",
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseReportFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	doc, _, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	out, err := s.svc.Render(r.Context(), doc, format)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, _, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	arc, err := s.svc.Export(r.Context(), doc)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", arc.Name))
	w.Header().Set("X-Export-Id", arc.Manifest.ExportID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(arc.Data)
}

// handleImport accepts a multipart "file" field or a raw body named by the
// "name" query parameter. "force" skips the file name check.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))

	var (
		name string
		data []byte
		err  error
	)
	if file, header, ferr := r.FormFile("file"); ferr == nil {
		defer file.Close()
		name = header.Filename
		data, err = io.ReadAll(file)
	} else {
		name = r.URL.Query().Get("name")
		if name == "" {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing upload: send a multipart \"file\" field or a body with ?name="))
			return
		}
		data, err = io.ReadAll(r.Body)
	}
	if err != nil {
		s.writeError(w, statusFor(err), fmt.Errorf("reading upload: %w", err))
		return
	}

	res, err := s.svc.Import(r.Context(), name, data, force)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// Unreadable archives are the client's problem too.
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document": res.Document,
		"snapshot": res.Snapshot,
		"warnings": toWarnings(res.Warnings),
		"issues":   nonNil(res.Issues),
	})
}
