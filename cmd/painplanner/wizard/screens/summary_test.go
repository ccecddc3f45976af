package screens

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/clipboard"
	"github.com/mrsinham/painplanner/internal/document"
	"github.com/mrsinham/painplanner/internal/export"
	"github.com/mrsinham/painplanner/internal/report"
)

type fakeExporter struct {
	err   error
	calls []export.Format
}

func (f *fakeExporter) write(ctx context.Context, format export.Format, path string) (export.Result, error) {
	f.calls = append(f.calls, format)
	if err := ctx.Err(); err != nil {
		return export.Result{}, err
	}
	if f.err != nil {
		return export.Result{}, f.err
	}
	return export.Result{Format: format, Path: path, Size: 2048, Pages: 2, Elapsed: time.Second}, nil
}

func (f *fakeExporter) WritePDF(ctx context.Context, _ *assessment.Snapshot, path string) (export.Result, error) {
	return f.write(ctx, export.FormatPDF, path)
}

func (f *fakeExporter) WriteDICOM(ctx context.Context, _ *assessment.Snapshot, path string) (export.Result, error) {
	return f.write(ctx, export.FormatDICOM, path)
}

var fixedNow = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC) }

func newTestSummary(exp Exporter, clip clipboard.Writer, edit func(string)) *SummaryScreen {
	return NewSummaryScreen("Summary Report", assessment.Default(),
		edit,
		Services{
			Exporter:  exp,
			Clipboard: clip,
			Task:      &export.Task{},
			PDFPath:   "out/summary.pdf",
			DICOMPath: "out/summary.dcm",
			Now:       fixedNow,
			Logger:    zerolog.Nop(),
		})
}

func TestSummaryScreen_RenderReport(t *testing.T) {
	s := newTestSummary(nil, nil, nil)
	out := s.renderReport(80)

	for _, want := range []string{
		"Report Generated: March 5, 2024 at 2:07 PM",
		"Section 1: Pain Snapshot",
		"Section 6: Personal Pain Goals & Action Planning",
		"Not specified",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q", want)
		}
	}
}

func TestSummaryScreen_ExportPDF(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestSummary(exp, nil, nil)

	cmd := s.startExport(export.FormatPDF)
	if cmd == nil {
		t.Fatalf("Expected an export command")
	}
	if !s.services.Task.Pending() {
		t.Errorf("Expected export to be pending until the command runs")
	}

	msg := cmd()
	done, ok := msg.(ExportDoneMsg)
	if !ok {
		t.Fatalf("Expected ExportDoneMsg, got %T", msg)
	}
	if done.Result.Path != "out/summary.pdf" {
		t.Errorf("Expected PDF path, got %s", done.Result.Path)
	}
	if s.services.Task.Pending() {
		t.Errorf("Expected task released after export")
	}

	s.Update(msg)
	notice, isErr := s.Notice()
	if isErr || !strings.HasPrefix(notice, "Saved summary.pdf") {
		t.Errorf("Unexpected notice %q (error=%v)", notice, isErr)
	}
}

func TestSummaryScreen_ExportDICOMUsesDICOMPath(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestSummary(exp, nil, nil)

	msg := s.startExport(export.FormatDICOM)()
	done, ok := msg.(ExportDoneMsg)
	if !ok {
		t.Fatalf("Expected ExportDoneMsg, got %T", msg)
	}
	if done.Result.Path != "out/summary.dcm" || exp.calls[0] != export.FormatDICOM {
		t.Errorf("Expected DICOM export to out/summary.dcm, got %v %s", exp.calls, done.Result.Path)
	}
}

func TestSummaryScreen_ExportBusy(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestSummary(exp, nil, nil)

	_, finish, err := s.services.Task.Start(context.Background())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer finish()

	if cmd := s.startExport(export.FormatPDF); cmd != nil {
		t.Errorf("Expected no command while another export runs")
	}
	if notice, isErr := s.Notice(); !isErr || notice != export.NoticeBusy {
		t.Errorf("Expected busy notice, got %q", notice)
	}
	if len(exp.calls) != 0 {
		t.Errorf("Expected exporter not called")
	}
}

func TestSummaryScreen_ExportFailure(t *testing.T) {
	exp := &fakeExporter{err: document.ErrRasterUnavailable}
	s := newTestSummary(exp, nil, nil)

	msg := s.startExport(export.FormatPDF)()
	if _, ok := msg.(ExportFailedMsg); !ok {
		t.Fatalf("Expected ExportFailedMsg, got %T", msg)
	}
	s.Update(msg)

	if notice, isErr := s.Notice(); !isErr || notice != export.NoticeRasterUnavailable {
		t.Errorf("Expected raster notice, got %q", notice)
	}
}

func TestSummaryScreen_EscCancelsExport(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestSummary(exp, nil, nil)

	cmd := s.startExport(export.FormatPDF)
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	msg := cmd()
	failed, ok := msg.(ExportFailedMsg)
	if !ok {
		t.Fatalf("Expected ExportFailedMsg, got %T", msg)
	}
	if !errors.Is(failed.Err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", failed.Err)
	}
	s.Update(msg)
	if notice, _ := s.Notice(); notice != export.NoticeCancelled {
		t.Errorf("Expected cancelled notice, got %q", notice)
	}
}

func TestSummaryScreen_CopyEmail(t *testing.T) {
	clip := &clipboard.Memory{}
	s := newTestSummary(nil, clip, nil)

	s.action = actionEmail
	s.complete()

	if !strings.HasPrefix(clip.Text(), "Subject: ") {
		t.Errorf("Expected email envelope on clipboard, got %q", clip.Text())
	}
	if notice, isErr := s.Notice(); isErr || notice != export.NoticeEmailCopied {
		t.Errorf("Expected email notice, got %q", notice)
	}
}

func TestSummaryScreen_CopySummary(t *testing.T) {
	clip := &clipboard.Memory{}
	s := newTestSummary(nil, clip, nil)

	s.action = actionCopy
	s.complete()

	if !strings.HasPrefix(clip.Text(), "Report Generated: March 5, 2024") {
		t.Errorf("Expected plain summary on clipboard, got %q", clip.Text())
	}
	if notice, _ := s.Notice(); notice != export.NoticeCopied {
		t.Errorf("Expected copied notice, got %q", notice)
	}
}

func TestSummaryScreen_CopyFailure(t *testing.T) {
	clip := &clipboard.Memory{Err: clipboard.ErrUnsupported}
	s := newTestSummary(nil, clip, nil)

	s.action = actionEmail
	s.complete()

	if notice, isErr := s.Notice(); !isErr || notice != export.NoticeClipboardFailed {
		t.Errorf("Expected clipboard failure notice, got %q", notice)
	}
}

func TestSummaryScreen_EditSection(t *testing.T) {
	var edited string
	s := newTestSummary(nil, nil, func(id string) { edited = id })

	s.action = actionEdit
	s.complete()
	if !s.picking {
		t.Fatalf("Expected section picker")
	}

	if s.target != "painSnapshot" {
		t.Errorf("Expected the first heading preselected, got %q", s.target)
	}

	s.target = "impactDailyLife"
	s.complete()
	if edited != "impactDailyLife" {
		t.Errorf("Expected edit of impactDailyLife, got %q", edited)
	}
	if s.picking {
		t.Errorf("Expected action menu back after picking")
	}
}

func TestSummaryScreen_EditTargetsFollowReportHeadings(t *testing.T) {
	s := newTestSummary(nil, nil, nil)
	want := report.EditTargets(report.Blocks(assessment.Default(), "now"))

	got := s.EditTargets()
	if len(got) != len(want) {
		t.Fatalf("Expected %d edit targets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Target %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSummaryScreen_EscLeavesPicker(t *testing.T) {
	s := newTestSummary(nil, nil, func(string) {})

	s.action = actionEdit
	s.complete()
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if s.picking {
		t.Errorf("Expected Esc to close the section picker")
	}
}

func TestSummaryScreen_Done(t *testing.T) {
	s := newTestSummary(nil, nil, nil)

	s.action = actionDone
	s.complete()
	if !s.Done() {
		t.Errorf("Expected Done after choosing Done")
	}
}

func TestCompletionScreen(t *testing.T) {
	s := NewCompletionScreen()
	if s.Action() != CompletionStartOver {
		t.Errorf("Expected Start Over as default action")
	}

	view := s.View()
	for _, want := range []string{"Next Steps & Resources", ResourcesURL, "self-monitoring"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected completion page to contain %q", want)
		}
	}

	s.action = actionExit
	if s.Action() != CompletionExit {
		t.Errorf("Expected Exit action")
	}
}
