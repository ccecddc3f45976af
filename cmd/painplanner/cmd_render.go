package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/export"
	"github.com/mrsinham/painplanner/internal/logging"
	"github.com/mrsinham/painplanner/internal/report"
)

// Render output formats.
const (
	formatText  = "text"
	formatEmail = "email"
	formatPDF   = "pdf"
	formatDICOM = "dicom"
)

type renderOptions struct {
	answers     string
	format      string
	out         string
	generatedAt string
}

func renderCmd(configPath *string) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the summary from an answers file without the wizard",
		Example: `  painplanner render --answers answers.yaml
  painplanner render --answers answers.yaml --format email
  painplanner render --answers answers.yaml --format pdf --out summary.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), *configPath, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.answers, "answers", "", "Answers file (YAML), '-' for stdin")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text, email, pdf, dicom")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output path (text/email default to stdout, pdf/dicom to the configured output)")
	cmd.Flags().StringVar(&opts.generatedAt, "generated-at", "", "Override the \"Report Generated\" stamp of text output")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func readAnswers(path string, stdin io.Reader) (*assessment.Snapshot, error) {
	if path == "-" {
		return assessment.Decode(stdin)
	}
	return assessment.LoadFile(path)
}

func runRender(ctx context.Context, configPath string, opts renderOptions, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Console, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	snap, err := readAnswers(opts.answers, os.Stdin)
	if err != nil {
		return fmt.Errorf("reading answers: %w", err)
	}

	stamp := opts.generatedAt
	if stamp == "" {
		stamp = report.Timestamp(time.Now())
	}

	switch opts.format {
	case formatText, formatEmail:
		text := report.Text(snap, stamp)
		if opts.format == formatEmail {
			text = report.EmailBody(text)
		}
		if opts.out == "" {
			_, err := io.WriteString(stdout, text)
			return err
		}
		if err := export.WriteFileAtomic(opts.out, []byte(text)); err != nil {
			return err
		}
		logger.Info().Str("path", opts.out).Str("format", opts.format).Msg("Summary written")
		return nil

	case formatPDF, formatDICOM:
		exp := newExporter(cfg, logger)
		var res export.Result
		if opts.format == formatPDF {
			res, err = exp.WritePDF(ctx, snap, orDefault(opts.out, cfg.PDFPath()))
		} else {
			res, err = exp.WriteDICOM(ctx, snap, orDefault(opts.out, cfg.DICOMPath()))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", export.NoticeFor(err), err)
		}
		fmt.Fprintln(stdout, res.Notice())
		return nil
	}

	return fmt.Errorf("unknown format %q (want text, email, pdf or dicom)", opts.format)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
