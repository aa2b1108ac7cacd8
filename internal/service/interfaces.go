package service

import (
	"context"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
	"github.com/alexanderramin/nafwizard/internal/export"
	"github.com/alexanderramin/nafwizard/internal/formstate"
)

// WizardService is the use-case surface shared by the CLI and the HTTP API.
type WizardService interface {
	Catalog() *catalog.Catalog
	Build(ctx context.Context, state domain.FormState) *document.Document
	BuildSnapshot(ctx context.Context, snap formstate.Snapshot) *document.Document
	Restore(ctx context.Context, doc *document.Document) *RestoreResult
	Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error)
	Render(ctx context.Context, doc *document.Document, format ReportFormat) (string, error)
	Export(ctx context.Context, doc *document.Document) (*export.Archive, error)
	Import(ctx context.Context, name string, data []byte, force bool) (*ImportResult, error)
}
