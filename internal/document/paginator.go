package document

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/mrsinham/painplanner/internal/assessment"
)

// ErrRasterUnavailable is returned when a document holds an image block but
// no rasterizer was configured.
var ErrRasterUnavailable = errors.New("diagram rasterizer unavailable")

// Geometry is a page size and uniform margin, in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// A4 is portrait A4 with 15 mm margins.
var A4 = Geometry{PageWidth: 210, PageHeight: 297, Margin: 15}

// ContentWidth is the printable width between margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Bottom is the lowest y a line may reach.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// Surface is a page-based drawing target. DrawText receives lines exactly
// as returned by SplitText.
type Surface interface {
	AddPage()
	SplitText(text string, size float64, bold bool, width float64) []string
	DrawText(x, y float64, line string, size float64, bold bool)
	DrawImage(img image.Image, x, y, w, h float64) error
	Save(w io.Writer) error
}

// RasterOptions controls diagram rasterization.
type RasterOptions struct {
	Scale      float64
	Background color.Color
}

// Rasterizer draws the body diagram with pins as a bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, pins []assessment.Pin, opts RasterOptions) (image.Image, error)
}

// Proportioned is implemented by rasterizers that know the shape of their
// output before drawing. Aspect is height over width.
type Proportioned interface {
	Aspect() float64
}

// Image placement, in millimetres.
const (
	ImageWidth   = 80.0
	ImageReserve = 80.0
	ImageGap     = 5.0
)

// LineHeight returns the advance for one line of text at size points.
func LineHeight(size float64) float64 {
	return size * 0.5
}

// Paginator places blocks top to bottom, starting a new page whenever the
// next line or image would cross the bottom margin.
type Paginator struct {
	geometry Geometry
	surface  Surface
	raster   Rasterizer
	scale    float64

	y     float64
	pages int
}

// NewPaginator returns a paginator drawing on surface. raster may be nil
// for documents without images.
func NewPaginator(surface Surface, raster Rasterizer, geometry Geometry) *Paginator {
	return &Paginator{
		geometry: geometry,
		surface:  surface,
		raster:   raster,
		scale:    2,
	}
}

// WithScale sets the rasterization scale factor.
func (p *Paginator) WithScale(scale float64) *Paginator {
	if scale > 0 {
		p.scale = scale
	}
	return p
}

// Pages returns the number of pages emitted so far.
func (p *Paginator) Pages() int {
	return p.pages
}

// Emit lays out doc. It stops at the first rasterization failure or when
// ctx is cancelled; the surface is then incomplete and must be discarded.
func (p *Paginator) Emit(ctx context.Context, doc Document) error {
	p.pages = 0
	p.newPage()
	return p.emitNodes(ctx, doc.Nodes)
}

func (p *Paginator) emitNodes(ctx context.Context, nodes []Node) error {
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch v := n.(type) {
		case Block:
			if err := p.emitBlock(ctx, v); err != nil {
				return err
			}
		case Group:
			if v.KeepTogether {
				p.keepTogether(v)
			}
			if err := p.emitNodes(ctx, v.Nodes); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Paginator) emitBlock(ctx context.Context, b Block) error {
	if b.IsImage() {
		return p.emitImage(ctx, b)
	}

	lh := LineHeight(b.Size)
	width := p.geometry.ContentWidth() - b.Indent
	for _, line := range p.surface.SplitText(b.Line(), b.Size, b.Bold, width) {
		p.ensure(lh)
		p.surface.DrawText(p.geometry.Margin+b.Indent, p.y, line, b.Size, b.Bold)
		p.y += lh
	}
	p.y += b.Gap
	return nil
}

func (p *Paginator) emitImage(ctx context.Context, b Block) error {
	if p.raster == nil {
		return ErrRasterUnavailable
	}
	img, err := p.raster.Rasterize(ctx, b.Pins, RasterOptions{Scale: p.scale, Background: color.White})
	if err != nil {
		return fmt.Errorf("rasterizing pin diagram: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("rasterizing pin diagram: empty image")
	}

	h := float64(bounds.Dy()) * ImageWidth / float64(bounds.Dx())
	p.ensure(max(ImageReserve, h))
	x := p.geometry.Margin + (p.geometry.ContentWidth()-ImageWidth)/2
	if err := p.surface.DrawImage(img, x, p.y, ImageWidth, h); err != nil {
		return fmt.Errorf("placing pin diagram: %w", err)
	}
	p.y += h + ImageGap + b.Gap
	return nil
}

// ensure starts a new page when need millimetres do not fit below the cursor.
func (p *Paginator) ensure(need float64) {
	if p.y+need > p.geometry.Bottom() {
		p.newPage()
	}
}

// keepTogether breaks before g when g fits on a fresh page but not in the
// space left on this one.
func (p *Paginator) keepTogether(g Group) {
	h := p.estimate(g.Nodes)
	if p.y == p.geometry.Margin {
		return
	}
	if p.y+h > p.geometry.Bottom() && p.geometry.Margin+h <= p.geometry.Bottom() {
		p.newPage()
	}
}

// imageHeight is the space an image is expected to take, never less than
// ImageReserve.
func (p *Paginator) imageHeight() float64 {
	if pr, ok := p.raster.(Proportioned); ok && pr.Aspect() > 0 {
		return max(ImageReserve, ImageWidth*pr.Aspect())
	}
	return ImageReserve
}

// estimate measures nodes without drawing.
func (p *Paginator) estimate(nodes []Node) float64 {
	var h float64
	for _, n := range nodes {
		switch v := n.(type) {
		case Block:
			if v.IsImage() {
				h += p.imageHeight() + ImageGap + v.Gap
				continue
			}
			lines := p.surface.SplitText(v.Line(), v.Size, v.Bold, p.geometry.ContentWidth()-v.Indent)
			h += float64(len(lines))*LineHeight(v.Size) + v.Gap
		case Group:
			h += p.estimate(v.Nodes)
		}
	}
	return h
}

func (p *Paginator) newPage() {
	p.surface.AddPage()
	p.pages++
	p.y = p.geometry.Margin
}
