package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrsinham/painplanner/cmd/painplanner/wizard"
	"github.com/mrsinham/painplanner/cmd/painplanner/wizard/screens"
	"github.com/mrsinham/painplanner/internal/bodymap"
	"github.com/mrsinham/painplanner/internal/clipboard"
	"github.com/mrsinham/painplanner/internal/config"
	"github.com/mrsinham/painplanner/internal/dicom"
	"github.com/mrsinham/painplanner/internal/export"
	"github.com/mrsinham/painplanner/internal/logging"
)

func wizardCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(*configPath)
		},
	}
}

// loadConfig reads and validates the configuration.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newExporter builds the PDF/DICOM exporter described by cfg.
func newExporter(cfg *config.Config, logger zerolog.Logger) *export.Exporter {
	exp := export.New(bodymap.Renderer{}, cfg.Page.Margin, cfg.Raster.Scale, logger)
	exp.Patient = dicom.Patient{Name: cfg.Patient.Name, ID: cfg.Patient.ID}
	return exp
}

func runWizard(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Interactive, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger.Info().Str("version", version).Str("output_dir", cfg.OutputDir).Msg("Starting wizard")

	return wizard.Run(wizard.Options{
		Logger: logger,
		Services: screens.Services{
			Exporter:  newExporter(cfg, logger),
			Clipboard: clipboard.System{},
			Task:      &export.Task{},
			PDFPath:   cfg.PDFPath(),
			DICOMPath: cfg.DICOMPath(),
			Logger:    logger,
		},
	})
}
