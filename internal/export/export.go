// Package export turns an assessment snapshot into files and clipboard
// text. File exports render fully in memory and are written atomically, so
// a failed export never leaves a partial file behind.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/clipboard"
	"github.com/mrsinham/painplanner/internal/dicom"
	"github.com/mrsinham/painplanner/internal/document"
	"github.com/mrsinham/painplanner/internal/report"
)

// User-facing notices.
const (
	NoticeRasterUnavailable = "Sorry, PDF generation is currently unavailable. Please try again later."
	NoticePDFFailed         = "An error occurred while generating the PDF. Please try again."
	NoticeEmailCopied       = "The summary content (including a suggested subject and body) has been copied to your clipboard. Please paste it into a new email message."
	NoticeClipboardFailed   = "Could not copy to clipboard automatically. Please manually copy the text from the summary or use the Download PDF option."
	NoticeCopied            = "Summary copied to clipboard!"
	NoticeBusy              = "An export is already in progress."
	NoticeCancelled         = "Export cancelled."
)

// Format names an export target.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDICOM Format = "dicom"
)

// Result describes a written export.
type Result struct {
	Format  Format
	Path    string
	Size    int64
	Pages   int
	Elapsed time.Duration
}

// Notice is the success message shown to the user.
func (r Result) Notice() string {
	return fmt.Sprintf("Saved %s (%s, %s) in %s",
		filepath.Base(r.Path),
		english.Plural(r.Pages, "page", ""),
		humanize.Bytes(uint64(r.Size)),
		r.Elapsed.Round(time.Millisecond))
}

// NoticeFor maps an export error to the message shown to the user.
func NoticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, document.ErrRasterUnavailable):
		return NoticeRasterUnavailable
	case errors.Is(err, ErrBusy):
		return NoticeBusy
	case errors.Is(err, context.Canceled):
		return NoticeCancelled
	default:
		return NoticePDFFailed
	}
}

// Exporter renders snapshots to PDF and DICOM.
type Exporter struct {
	Raster   document.Rasterizer
	Geometry document.Geometry
	Scale    float64
	Patient  dicom.Patient
	Logger   zerolog.Logger
	Now      func() time.Time
}

// New returns an exporter with A4 geometry and the given margin and scale.
func New(raster document.Rasterizer, margin, scale float64, logger zerolog.Logger) *Exporter {
	g := document.A4
	if margin > 0 {
		g.Margin = margin
	}
	return &Exporter{
		Raster:   raster,
		Geometry: g,
		Scale:    scale,
		Logger:   logger,
		Now:      time.Now,
	}
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// RenderPDF lays out the report for snap and returns the PDF bytes and the
// page count. Nothing is written on failure.
func (e *Exporter) RenderPDF(ctx context.Context, snap *assessment.Snapshot, generatedAt string) ([]byte, int, error) {
	doc := report.Blocks(snap, generatedAt)

	surface := document.NewPDFSurface(e.Geometry, report.Title+" Summary")
	p := document.NewPaginator(surface, e.Raster, e.Geometry).WithScale(e.Scale)
	if err := p.Emit(ctx, doc); err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	if err := surface.Save(&buf); err != nil {
		return nil, 0, fmt.Errorf("saving PDF: %w", err)
	}
	return buf.Bytes(), p.Pages(), nil
}

// WritePDF renders snap and writes it to path.
func (e *Exporter) WritePDF(ctx context.Context, snap *assessment.Snapshot, path string) (Result, error) {
	start := e.now()
	data, pages, err := e.RenderPDF(ctx, snap, report.Timestamp(start))
	if err != nil {
		e.Logger.Error().Err(err).Str("path", path).Msg("PDF export failed")
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := WriteFileAtomic(path, data); err != nil {
		e.Logger.Error().Err(err).Str("path", path).Msg("PDF export failed")
		return Result{}, err
	}

	res := Result{Format: FormatPDF, Path: path, Size: int64(len(data)), Pages: pages, Elapsed: e.now().Sub(start)}
	e.Logger.Info().Str("path", path).Int("pages", pages).Int64("bytes", res.Size).Msg("PDF exported")
	return res, nil
}

// WriteDICOM renders snap and writes it to path as a DICOM Encapsulated PDF.
func (e *Exporter) WriteDICOM(ctx context.Context, snap *assessment.Snapshot, path string) (Result, error) {
	start := e.now()
	pdf, pages, err := e.RenderPDF(ctx, snap, report.Timestamp(start))
	if err != nil {
		e.Logger.Error().Err(err).Str("path", path).Msg("DICOM export failed")
		return Result{}, err
	}

	var buf bytes.Buffer
	err = dicom.Write(&buf, pdf, dicom.Options{
		Patient: e.Patient,
		Title:   report.Title + " Summary",
		Created: start,
	})
	if err != nil {
		e.Logger.Error().Err(err).Str("path", path).Msg("DICOM export failed")
		return Result{}, fmt.Errorf("encapsulating PDF: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		e.Logger.Error().Err(err).Str("path", path).Msg("DICOM export failed")
		return Result{}, err
	}

	res := Result{Format: FormatDICOM, Path: path, Size: int64(buf.Len()), Pages: pages, Elapsed: e.now().Sub(start)}
	e.Logger.Info().Str("path", path).Int64("bytes", res.Size).Msg("DICOM exported")
	return res, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		cleanup()
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}

// CopyEmail puts the email envelope around the text summary on the
// clipboard and returns the notice to show.
func CopyEmail(w clipboard.Writer, snap *assessment.Snapshot, generatedAt string) (string, error) {
	body := report.EmailBody(report.Text(snap, generatedAt))
	if err := w.WriteAll(body); err != nil {
		return NoticeClipboardFailed, fmt.Errorf("copying email: %w", err)
	}
	return NoticeEmailCopied, nil
}

// CopySummary puts the plain text summary on the clipboard.
func CopySummary(w clipboard.Writer, snap *assessment.Snapshot, generatedAt string) (string, error) {
	if err := w.WriteAll(report.Text(snap, generatedAt)); err != nil {
		return NoticeClipboardFailed, fmt.Errorf("copying summary: %w", err)
	}
	return NoticeCopied, nil
}
