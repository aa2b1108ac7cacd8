// Package api exposes the wizard operations over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/alexanderramin/nafwizard/internal/calendar"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/export"
	"github.com/alexanderramin/nafwizard/internal/service"
)

// maxBodyBytes caps request bodies, uploads included.
const maxBodyBytes = 16 << 20

type Server struct {
	router chi.Router
	svc    service.WizardService
	logger *slog.Logger
}

// NewServer wires the routes for svc. A nil logger discards request logs.
func NewServer(svc service.WizardService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{router: chi.NewRouter(), svc: svc, logger: logger}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(s.requestLog)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/build", s.handleBuild)
		r.Post("/restore", s.handleRestore)
		r.Post("/validate", s.handleValidate)
		r.Post("/schedule", s.handleSchedule)
		r.Post("/report", s.handleReport)
		r.Post("/export", s.handleExport)
		r.Post("/import", s.handleImport)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"dur", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrNoContent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, document.ErrInvalidJSON),
		errors.Is(err, document.ErrNotObject),
		errors.Is(err, export.ErrNotJSONFile),
		errors.Is(err, export.ErrUnexpectedName),
		errors.Is(err, export.ErrNoDocumentInArchive),
		errors.Is(err, calendar.ErrUnknownRegion),
		errors.Is(err, service.ErrUnknownFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
