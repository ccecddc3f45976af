package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/painplanner/internal/assessment"
)

type drawnLine struct {
	page int
	y    float64
	text string
}

type drawnImage struct {
	page       int
	x, y, w, h float64
}

// fakeSurface wraps at a fixed number of characters per line.
type fakeSurface struct {
	charsPerLine int
	page         int
	lines        []drawnLine
	images       []drawnImage
}

func (f *fakeSurface) AddPage() { f.page++ }

func (f *fakeSurface) SplitText(text string, size float64, bold bool, width float64) []string {
	if f.charsPerLine <= 0 || len(text) <= f.charsPerLine {
		return []string{text}
	}
	var out []string
	for len(text) > f.charsPerLine {
		out = append(out, text[:f.charsPerLine])
		text = text[f.charsPerLine:]
	}
	return append(out, text)
}

func (f *fakeSurface) DrawText(x, y float64, line string, size float64, bold bool) {
	f.lines = append(f.lines, drawnLine{page: f.page, y: y, text: line})
}

func (f *fakeSurface) DrawImage(img image.Image, x, y, w, h float64) error {
	f.images = append(f.images, drawnImage{page: f.page, x: x, y: y, w: w, h: h})
	return nil
}

func (f *fakeSurface) Save(w io.Writer) error { return nil }

type fakeRaster struct {
	w, h int
	err  error
	got  RasterOptions
}

func (r *fakeRaster) Rasterize(ctx context.Context, pins []assessment.Pin, opts RasterOptions) (image.Image, error) {
	r.got = opts
	if r.err != nil {
		return nil, r.err
	}
	return image.NewRGBA(image.Rect(0, 0, r.w, r.h)), nil
}

// shapedRaster knows its aspect before drawing, like the body diagram.
type shapedRaster struct{ fakeRaster }

func (r *shapedRaster) Aspect() float64 { return float64(r.h) / float64(r.w) }

func field(i int) Block {
	return Block{Role: RoleField, Label: fmt.Sprintf("Field %d", i), Value: "value", Size: 11, Gap: 1}
}

func TestEmitSpreadsLongDocumentOverPages(t *testing.T) {
	surface := &fakeSurface{}
	var nodes []Node
	for i := 0; i < 120; i++ {
		nodes = append(nodes, field(i))
	}

	p := NewPaginator(surface, nil, A4)
	require.NoError(t, p.Emit(context.Background(), Document{Nodes: nodes}))

	assert.Greater(t, p.Pages(), 1)
	require.Len(t, surface.lines, 120, "every line is drawn exactly once")
	for i, l := range surface.lines {
		assert.Equal(t, fmt.Sprintf("Field %d: value", i), l.text)
		assert.GreaterOrEqual(t, l.y, A4.Margin)
		assert.LessOrEqual(t, l.y+LineHeight(11), A4.Bottom(), "line %d crosses the bottom margin", i)
	}
	for i := 1; i < len(surface.lines); i++ {
		prev, cur := surface.lines[i-1], surface.lines[i]
		if cur.page == prev.page {
			assert.Greater(t, cur.y, prev.y)
		} else {
			assert.Equal(t, prev.page+1, cur.page)
			assert.Equal(t, A4.Margin, cur.y)
		}
	}
}

func TestEmitWrapsLongText(t *testing.T) {
	surface := &fakeSurface{charsPerLine: 10}
	doc := Document{Nodes: []Node{
		Block{Role: RoleParagraph, Text: strings.Repeat("x", 35), Size: 10, Gap: 2},
		Block{Role: RoleParagraph, Text: "after", Size: 10},
	}}

	require.NoError(t, NewPaginator(surface, nil, A4).Emit(context.Background(), doc))

	require.Len(t, surface.lines, 5)
	assert.Equal(t, A4.Margin, surface.lines[0].y)
	assert.InDelta(t, A4.Margin+3*5, surface.lines[3].y, 0.001)
	assert.InDelta(t, A4.Margin+4*5+2, surface.lines[4].y, 0.001)
}

func TestKeepTogetherGroupMovesToNextPage(t *testing.T) {
	surface := &fakeSurface{}
	var filler []Node
	for i := 0; i < 40; i++ {
		filler = append(filler, field(i))
	}
	group := Group{KeepTogether: true, Nodes: []Node{
		Block{Role: RoleHeading, Text: "Heading", Size: 14, Bold: true, Gap: 3},
		field(100), field(101), field(102), field(103), field(104), field(105),
	}}
	doc := Document{Nodes: append(filler, group)}

	require.NoError(t, NewPaginator(surface, nil, A4).Emit(context.Background(), doc))

	heading := surface.lines[40]
	require.Equal(t, "Heading", heading.text)
	assert.Equal(t, 2, heading.page)
	assert.Equal(t, A4.Margin, heading.y)
	for _, l := range surface.lines[41:] {
		assert.Equal(t, 2, l.page)
	}
}

func TestOversizedKeepTogetherGroupStaysInPlace(t *testing.T) {
	surface := &fakeSurface{}
	var body []Node
	for i := 0; i < 80; i++ {
		body = append(body, field(i))
	}
	doc := Document{Nodes: []Node{
		Block{Role: RoleTitle, Text: "Title", Size: 18, Bold: true, Gap: 2},
		Group{KeepTogether: true, Nodes: body},
	}}

	require.NoError(t, NewPaginator(surface, nil, A4).Emit(context.Background(), doc))
	assert.Equal(t, 1, surface.lines[1].page, "group larger than a page starts right away")
}

func TestEmitImageIsCenteredAndScaled(t *testing.T) {
	surface := &fakeSurface{}
	raster := &fakeRaster{w: 660, h: 780}
	doc := Document{Nodes: []Node{
		Block{Role: RoleImage, Pins: []assessment.Pin{assessment.NewPin(50, 50)}},
		Block{Role: RoleField, Label: "After", Value: "x", Size: 11},
	}}

	require.NoError(t, NewPaginator(surface, raster, A4).Emit(context.Background(), doc))

	require.Len(t, surface.images, 1)
	img := surface.images[0]
	assert.Equal(t, ImageWidth, img.w)
	assert.InDelta(t, 80.0*780/660, img.h, 0.001)
	assert.InDelta(t, (A4.PageWidth-ImageWidth)/2, img.x, 0.001)
	assert.Equal(t, A4.Margin, img.y)
	assert.InDelta(t, A4.Margin+img.h+ImageGap, surface.lines[0].y, 0.001)
	assert.Equal(t, 2.0, raster.got.Scale)
}

func TestEmitImageReservesSpace(t *testing.T) {
	surface := &fakeSurface{}
	var nodes []Node
	for i := 0; i < 80; i++ {
		nodes = append(nodes, field(i))
	}
	nodes = append(nodes, Block{Role: RoleImage})

	require.NoError(t, NewPaginator(surface, &fakeRaster{w: 100, h: 100}, A4).Emit(context.Background(), Document{Nodes: nodes}))

	last := surface.lines[len(surface.lines)-1]
	require.Len(t, surface.images, 1)
	if last.y+LineHeight(11)+ImageReserve > A4.Bottom() {
		assert.Equal(t, last.page+1, surface.images[0].page)
		assert.Equal(t, A4.Margin, surface.images[0].y)
	}
}

func TestEmitTallImageStaysAboveBottomMargin(t *testing.T) {
	surface := &fakeSurface{}
	var nodes []Node
	for i := 0; i < 28; i++ {
		nodes = append(nodes, field(i))
	}
	nodes = append(nodes, Block{Role: RoleImage})

	require.NoError(t, NewPaginator(surface, &fakeRaster{w: 660, h: 780}, A4).Emit(context.Background(), Document{Nodes: nodes}))

	require.Len(t, surface.images, 1)
	img := surface.images[0]
	assert.Greater(t, img.h, ImageReserve)
	assert.LessOrEqual(t, img.y+img.h, A4.Bottom())
	assert.Equal(t, 2, img.page)
	assert.Equal(t, A4.Margin, img.y)
}

func TestKeepTogetherUsesImageAspect(t *testing.T) {
	surface := &fakeSurface{}
	var nodes []Node
	for i := 0; i < 25; i++ {
		nodes = append(nodes, field(i))
	}
	nodes = append(nodes, Group{KeepTogether: true, Nodes: []Node{
		Block{Role: RoleHeading, Text: "Pain Map", Size: 14, Bold: true, Gap: 3},
		Block{Role: RoleImage},
	}})
	raster := &shapedRaster{fakeRaster{w: 660, h: 780}}

	require.NoError(t, NewPaginator(surface, raster, A4).Emit(context.Background(), Document{Nodes: nodes}))

	heading := surface.lines[25]
	require.Equal(t, "Pain Map", heading.text)
	assert.Equal(t, 2, heading.page, "heading follows the diagram it introduces")
	require.Len(t, surface.images, 1)
	assert.Equal(t, 2, surface.images[0].page)
	assert.LessOrEqual(t, surface.images[0].y+surface.images[0].h, A4.Bottom())
}

func TestEmitWithoutRasterizer(t *testing.T) {
	doc := Document{Nodes: []Node{Block{Role: RoleImage}}}
	err := NewPaginator(&fakeSurface{}, nil, A4).Emit(context.Background(), doc)
	assert.ErrorIs(t, err, ErrRasterUnavailable)
}

func TestEmitPropagatesRasterError(t *testing.T) {
	boom := errors.New("boom")
	doc := Document{Nodes: []Node{Block{Role: RoleImage}}}
	err := NewPaginator(&fakeSurface{}, &fakeRaster{err: boom}, A4).Emit(context.Background(), doc)
	assert.ErrorIs(t, err, boom)
}

func TestEmitStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	surface := &fakeSurface{}
	err := NewPaginator(surface, nil, A4).Emit(ctx, Document{Nodes: []Node{field(1)}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, surface.lines)
}

func TestPDFSurfaceProducesDocument(t *testing.T) {
	surface := NewPDFSurface(A4, "Test")
	doc := Document{Nodes: []Node{
		Block{Role: RoleTitle, Text: "Holistic Pain Profile & Action Planner (HPPAP)", Size: 18, Bold: true, Gap: 2},
		Block{Role: RoleField, Label: "Small Achievable Goal", Value: "Walk to the café – twice a week", Size: 11, Gap: 1},
		Block{Role: RoleImage},
	}}

	p := NewPaginator(surface, &fakeRaster{w: 40, h: 50}, A4)
	require.NoError(t, p.Emit(context.Background(), doc))

	var buf bytes.Buffer
	require.NoError(t, surface.Save(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, surface.PageCount())
}

func TestPDFSurfaceSplitsToWidth(t *testing.T) {
	surface := NewPDFSurface(A4, "Test")
	surface.AddPage()

	lines := surface.SplitText(strings.Repeat("word ", 100), 11, false, A4.ContentWidth())
	assert.Greater(t, len(lines), 1)
}
