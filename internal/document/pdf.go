package document

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const pdfFont = "Helvetica"

// PDFSurface draws on an A4-style fpdf document using the core Helvetica
// font. Text is transcoded to Windows-1252; characters outside it become "?".
type PDFSurface struct {
	pdf    *fpdf.Fpdf
	enc    *encoding.Encoder
	images int
}

// NewPDFSurface returns a surface sized by g with no pages yet.
func NewPDFSurface(g Geometry, title string) *PDFSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("painplanner", true)

	return &PDFSurface{
		pdf: pdf,
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
}

func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
}

// SplitText wraps text to width. Returned lines are in the surface's
// internal single-byte form and are only meaningful to DrawText.
func (s *PDFSurface) SplitText(text string, size float64, bold bool, width float64) []string {
	s.setFont(size, bold)
	lines := s.pdf.SplitText(s.single(text), width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (s *PDFSurface) DrawText(x, y float64, line string, size float64, bold bool) {
	s.setFont(size, bold)
	s.pdf.Text(x, y, narrow(line))
}

func (s *PDFSurface) DrawImage(img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding diagram: %w", err)
	}

	s.images++
	name := fmt.Sprintf("diagram-%d", s.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, &buf)
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return s.pdf.Error()
}

// Save writes the finished PDF.
func (s *PDFSurface) Save(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// PageCount returns the number of pages added so far.
func (s *PDFSurface) PageCount() int {
	return s.pdf.PageCount()
}

func (s *PDFSurface) setFont(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	s.pdf.SetFont(pdfFont, style, size)
}

// single transcodes text to Windows-1252 and widens every byte to one rune
// so fpdf's per-byte width table can measure it.
func (s *PDFSurface) single(text string) string {
	b, err := s.enc.Bytes([]byte(text))
	if err != nil {
		b = []byte(strings.ToValidUTF8(text, "?"))
	}
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}

// narrow undoes the widening done by single.
func narrow(line string) string {
	b := make([]byte, 0, len(line))
	for _, r := range line {
		if r > 0xff {
			r = '?'
		}
		b = append(b, byte(r))
	}
	return string(b)
}
