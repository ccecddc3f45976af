package bodymap

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/document"
)

// pixelsPerUnit at scale 1.
const pixelsPerUnit = 2.0

var (
	bodyFill    = color.RGBA{0xdb, 0xe4, 0xf0, 0xff}
	bodyStroke  = color.RGBA{0x4a, 0x55, 0x68, 0xff}
	pinColor    = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	captionGray = color.RGBA{0x6b, 0x72, 0x80, 0xff}
)

// Renderer rasterizes the diagram. The zero value is ready to use.
type Renderer struct{}

var (
	_ document.Rasterizer   = Renderer{}
	_ document.Proportioned = Renderer{}
)

// Aspect returns the height of the diagram over its width.
func (Renderer) Aspect() float64 {
	w, h := Size(1)
	return float64(h) / float64(w)
}

// Size returns the pixel size of the diagram at scale.
func Size(scale float64) (int, int) {
	k := pixelsPerUnit * scale
	return int(math.Round(Width * k)), int(math.Round(Height * k))
}

// Rasterize draws the three body views and the pins on top. Pins are
// numbered in list order.
func (Renderer) Rasterize(ctx context.Context, pins []assessment.Pin, opts document.RasterOptions) (image.Image, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	figs, err := outlines()
	if err != nil {
		return nil, err
	}

	w, h := Size(scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid diagram size: %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	k := pixelsPerUnit * scale
	for _, f := range figs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, poly := range f.polys {
			fillPolygon(img, poly, f.offsetX, k, bodyFill)
			strokePolygon(img, poly, f.offsetX, k, math.Max(1, k*0.6), bodyStroke)
		}
		caption(img, f.name, int((f.offsetX+50)*k), int(380*k), scale)
	}

	for i, p := range pins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		drawPin(img, p, i+1, scale)
	}

	return img, nil
}

func fillPolygon(dst draw.Image, poly []point, dx, k float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32((poly[0].X+dx)*k), float32(poly[0].Y*k))
	for _, p := range poly[1:] {
		z.LineTo(float32((p.X+dx)*k), float32(p.Y*k))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokePolygon draws each edge as a thin quad.
func strokePolygon(dst draw.Image, poly []point, dx, k, width float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	for i := range poly {
		a, e := poly[i], poly[(i+1)%len(poly)]
		ax, ay := (a.X+dx)*k, a.Y*k
		ex, ey := (e.X+dx)*k, e.Y*k
		lx, ly := ex-ax, ey-ay
		l := math.Hypot(lx, ly)
		if l == 0 {
			continue
		}
		nx, ny := -ly/l*half, lx/l*half
		z.MoveTo(float32(ax+nx), float32(ay+ny))
		z.LineTo(float32(ex+nx), float32(ey+ny))
		z.LineTo(float32(ex-nx), float32(ey-ny))
		z.LineTo(float32(ax-nx), float32(ay-ny))
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillCircle draws a disc from four cubic arcs.
func fillCircle(dst draw.Image, cx, cy, r float64, c color.Color) {
	const kappa = 0.5522847498
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	o := r * kappa
	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+o), f(cx+o), f(cy+r), f(cx), f(cy+r))
	z.CubeTo(f(cx-o), f(cy+r), f(cx-r), f(cy+o), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-o), f(cx-o), f(cy-r), f(cx), f(cy-r))
	z.CubeTo(f(cx+o), f(cy-r), f(cx+r), f(cy-o), f(cx+r), f(cy))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawPin places a dot whose bottom edge sits on the pin position, with its
// number beside it.
func drawPin(dst *image.RGBA, p assessment.Pin, n int, scale float64) {
	b := dst.Bounds()
	x := assessment.ClampPct(p.XPct) / 100 * float64(b.Dx())
	y := assessment.ClampPct(p.YPct) / 100 * float64(b.Dy())
	r := 3.5 * pixelsPerUnit * scale

	fillCircle(dst, x, y-r, r+math.Max(1, scale), color.White)
	fillCircle(dst, x, y-r, r, pinColor)
	label(dst, fmt.Sprintf("#%d", n), int(x+r+2*scale), int(y-r), scale)
}

// label draws text in black with a white outline so it stays legible over
// the figure. The glyphs are drawn at basicfont size and scaled up.
func label(dst *image.RGBA, text string, x, y int, scale float64) {
	face := basicfont.Face7x13
	tw := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	th := m.Ascent.Ceil() + m.Descent.Ceil()

	const pad = 2
	tile := image.NewRGBA(image.Rect(0, 0, tw+2*pad, th+2*pad))
	d := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	baseX, baseY := pad, pad+m.Ascent.Ceil()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				d.Dot = fixed.P(baseX+dx, baseY+dy)
				d.DrawString(text)
			}
		}
	}
	d.Src = image.NewUniform(color.Black)
	d.Dot = fixed.P(baseX, baseY)
	d.DrawString(text)

	k := math.Max(1, scale)
	w := int(float64(tile.Bounds().Dx()) * k)
	h := int(float64(tile.Bounds().Dy()) * k)
	target := image.Rect(x, y-h/2, x+w, y-h/2+h)
	draw.NearestNeighbor.Scale(dst, target, tile, tile.Bounds(), draw.Over, nil)
}

// caption centres text horizontally on cx.
func caption(dst *image.RGBA, text string, cx, baseline int, scale float64) {
	face := basicfont.Face7x13
	k := math.Max(1, scale)
	tw := font.MeasureString(face, text).Ceil()
	th := face.Metrics().Ascent.Ceil() + face.Metrics().Descent.Ceil()

	tile := image.NewRGBA(image.Rect(0, 0, tw, th))
	d := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(captionGray),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	w, h := int(float64(tw)*k), int(float64(th)*k)
	target := image.Rect(cx-w/2, baseline-h, cx-w/2+w, baseline)
	draw.NearestNeighbor.Scale(dst, target, tile, tile.Bounds(), draw.Over, nil)
}
