package bodymap

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"

	"github.com/mrsinham/painplanner/internal/document"
)

// Grid cell glyphs.
const (
	CellEmpty   = ' '
	CellBody    = '░'
	CellOutline = '▒'
)

// Grid rasterizes the diagram without pins and samples it down to a
// cols x rows character grid for the terminal pin board.
func Grid(cols, rows int) ([][]rune, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid size: %dx%d", cols, rows)
	}

	src, err := Renderer{}.Rasterize(context.Background(), nil, document.RasterOptions{Scale: 1, Background: color.White})
	if err != nil {
		return nil, err
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)

	grid := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]rune, cols)
		for x := 0; x < cols; x++ {
			grid[y][x] = classify(small.RGBAAt(x, y))
		}
	}
	return grid, nil
}

// GridString renders a grid as newline-separated rows.
func GridString(grid [][]rune) string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func classify(c color.RGBA) rune {
	lum := (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
	switch {
	case lum > 245:
		return CellEmpty
	case lum > 170:
		return CellBody
	default:
		return CellOutline
	}
}
