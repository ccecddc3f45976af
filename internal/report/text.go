package report

import (
	"strings"
	"time"

	"github.com/mrsinham/painplanner/internal/assessment"
)

// Title is the report's full name.
const Title = "Holistic Pain Profile & Action Planner (HPPAP)"

// EmailSubject is the suggested subject line for the email envelope.
const EmailSubject = "My Holistic Pain Profile & Action Planner (HPPAP) Summary"

// TimestampLayout formats the "Report Generated" stamp.
const TimestampLayout = "January 2, 2006 at 3:04 PM"

const separator = "------------------------------------------------------"

// Timestamp formats t for the report header.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Text renders the plain-text summary. The output depends only on its
// arguments.
func Text(snap *assessment.Snapshot, generatedAt string) string {
	var sb strings.Builder
	sb.WriteString("Report Generated: " + generatedAt + "\n")
	sb.WriteString(Title + " Summary\n\n")

	for _, sec := range Sections(snap) {
		sb.WriteString("== " + sec.Headline + " ==\n")
		for _, l := range sec.Lines {
			sb.WriteString(l.Label + ": " + l.Value + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// EmailBody wraps a text summary with a subject line, greeting and sign-off
// ready to paste into an email.
func EmailBody(summary string) string {
	var sb strings.Builder
	sb.WriteString("Subject: " + EmailSubject + "\n\n")
	sb.WriteString("Hello,\n\n")
	sb.WriteString("Please find my HPPAP summary details below. This information can help facilitate discussions about my pain management.\n\n")
	sb.WriteString("You can also download this summary as a PDF from the application and attach it to an email if preferred.\n\n")
	sb.WriteString(separator + "\n")
	sb.WriteString(summary)
	sb.WriteString(separator + "\n\n")
	sb.WriteString("Thank you.")
	return sb.String()
}
