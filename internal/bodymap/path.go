package bodymap

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// point is a position in diagram units.
type point struct{ X, Y float64 }

// parsePath flattens an absolute SVG path (M L H V C S Z) into closed
// polygons. Curves are subdivided into fixed steps.
func parsePath(d string) ([][]point, error) {
	toks := tokenize(d)
	var (
		polys   [][]point
		cur     []point
		pos     point
		ctrl    point
		hasCtrl bool
		cmd     byte
	)

	num := func(i *int) (float64, error) {
		if *i >= len(toks) {
			return 0, fmt.Errorf("path %q: missing number", d)
		}
		v, err := strconv.ParseFloat(toks[*i], 64)
		if err != nil {
			return 0, fmt.Errorf("path %q: %w", d, err)
		}
		*i++
		return v, nil
	}
	pair := func(i *int) (point, error) {
		x, err := num(i)
		if err != nil {
			return point{}, err
		}
		y, err := num(i)
		return point{x, y}, err
	}
	closePoly := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for i := 0; i < len(toks); {
		if c := toks[i][0]; isCommand(c) {
			cmd = c
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("path %q: number before command", d)
		}

		var err error
		switch cmd {
		case 'M':
			closePoly()
			pos, err = pair(&i)
			cur = []point{pos}
			cmd = 'L'
			hasCtrl = false
		case 'L':
			pos, err = pair(&i)
			cur = append(cur, pos)
			hasCtrl = false
		case 'H':
			pos.X, err = num(&i)
			cur = append(cur, pos)
			hasCtrl = false
		case 'V':
			pos.Y, err = num(&i)
			cur = append(cur, pos)
			hasCtrl = false
		case 'C', 'S':
			var c1, c2, end point
			if cmd == 'C' {
				if c1, err = pair(&i); err != nil {
					return nil, err
				}
			} else {
				c1 = pos
				if hasCtrl {
					c1 = point{2*pos.X - ctrl.X, 2*pos.Y - ctrl.Y}
				}
			}
			if c2, err = pair(&i); err != nil {
				return nil, err
			}
			if end, err = pair(&i); err != nil {
				return nil, err
			}
			cur = append(cur, cubic(pos, c1, c2, end)...)
			pos, ctrl, hasCtrl = end, c2, true
		case 'Z':
			closePoly()
			hasCtrl = false
			cmd = 0
		default:
			return nil, fmt.Errorf("path %q: unsupported command %q", d, cmd)
		}
		if err != nil {
			return nil, err
		}
	}
	closePoly()
	return polys, nil
}

const curveSteps = 12

// cubic returns points along a cubic Bézier, excluding the start.
func cubic(p0, p1, p2, p3 point) []point {
	out := make([]point, 0, curveSteps)
	for s := 1; s <= curveSteps; s++ {
		t := float64(s) / curveSteps
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		out = append(out, point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return out
}

func isCommand(c byte) bool {
	return strings.IndexByte("MLHVCSZ", c) >= 0
}

func tokenize(d string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range d {
		switch {
		case unicode.IsLetter(r):
			flush()
			toks = append(toks, string(r))
		case r == ',' || unicode.IsSpace(r):
			flush()
		case r == '-' && cur.Len() > 0:
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
