package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/cli"
	"github.com/alexanderramin/nafwizard/internal/config"
	"github.com/alexanderramin/nafwizard/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	var (
		logger   *slog.Logger
		observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	)
	switch cfg.LogFormat {
	case config.LogJSON:
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
		if cfg.LogCalls {
			observer = service.NewJSONUseCaseObserver(os.Stderr)
		}
	default:
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		if cfg.LogCalls {
			observer = service.NewLogUseCaseObserver(os.Stderr)
		}
	}

	app := &cli.App{
		Wizard: service.NewWizardService(service.WizardDeps{
			Catalog:      cat,
			HolidayYears: cfg.HolidayYears,
		}, observer),
		Config: cfg,
		Logger: logger,
	}

	// The wizard and pager need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
