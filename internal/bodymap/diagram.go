// Package bodymap draws the body diagram used to place pain pins, both as a
// bitmap for documents and as a character grid for the terminal.
package bodymap

import (
	"fmt"
	"sync"
)

// Diagram size in units. Pin percentages are relative to the whole diagram.
const (
	Width  = 330.0
	Height = 390.0
)

// region is one outlined body part of a figure.
type region struct {
	ID   string
	Path string
}

// figure is one view of the body, drawn at an x offset.
type figure struct {
	Name    string
	OffsetX float64
	Regions []region
}

// front outlines follow a 100x370 box.
var front = []region{
	{"head", "M50,10 C20,10 10,40 10,60 S20,110 50,110 S90,80 90,60 S80,10 50,10 Z"},
	{"neck", "M45,110 H55 V130 H45 Z"},
	{"torso", "M30,130 H70 V230 H30 Z"},
	{"left-arm", "M30,130 L10,150 L15,200 L30,210 Z"},
	{"right-arm", "M70,130 L90,150 L85,200 L70,210 Z"},
	{"left-leg", "M30,230 L20,350 L40,350 L45,230 Z"},
	{"right-leg", "M70,230 L80,350 L60,350 L55,230 Z"},
	{"left-hand", "M15,200 L0,210 L5,220 L15,210 Z"},
	{"right-hand", "M85,200 L100,210 L95,220 L85,210 Z"},
	{"left-foot", "M20,350 L10,360 L30,370 L40,350 Z"},
	{"right-foot", "M80,350 L90,360 L70,370 L60,350 Z"},
}

var side = []region{
	{"head", "M50,10 C30,10 25,40 28,60 S40,110 50,110 S75,80 72,60 S70,10 50,10 Z"},
	{"neck", "M45,110 H55 V130 H45 Z"},
	{"torso", "M38,130 H64 V230 H38 Z"},
	{"arm", "M44,135 H58 L56,210 H46 Z"},
	{"leg", "M40,230 H62 L58,350 H44 Z"},
	{"foot", "M44,350 H58 L72,362 L70,370 H44 Z"},
}

var figures = []figure{
	{Name: "Front", OffsetX: 0, Regions: front},
	{Name: "Back", OffsetX: 115, Regions: front},
	{Name: "Side", OffsetX: 230, Regions: side},
}

// outline is a parsed figure ready to draw.
type outline struct {
	name    string
	offsetX float64
	polys   [][]point
}

var (
	parseOnce sync.Once
	parsed    []outline
	parseErr  error
)

// outlines parses every figure once.
func outlines() ([]outline, error) {
	parseOnce.Do(func() {
		for _, f := range figures {
			o := outline{name: f.Name, offsetX: f.OffsetX}
			for _, r := range f.Regions {
				polys, err := parsePath(r.Path)
				if err != nil {
					parseErr = fmt.Errorf("region %s of %s: %w", r.ID, f.Name, err)
					return
				}
				o.polys = append(o.polys, polys...)
			}
			parsed = append(parsed, o)
		}
	})
	return parsed, parseErr
}
