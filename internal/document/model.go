// Package document lays out report blocks on fixed-size pages and emits
// them through a drawing surface.
package document

import "github.com/mrsinham/painplanner/internal/assessment"

// Role tells renderers what a block is for.
type Role int

const (
	RoleTitle Role = iota
	RoleMeta
	RoleHeading
	RoleField
	RoleParagraph
	RoleImage
)

// Node is a Block or a Group.
type Node interface {
	node()
}

// Block is one paragraph of text or one image.
type Block struct {
	Role  Role
	Text  string
	Label string
	Value string

	// Size is the font size in points; line height is half of it in mm.
	Size   float64
	Bold   bool
	Indent float64
	// Gap is the vertical space in mm left after the block.
	Gap float64

	// Edit names the section a heading lets the user revise.
	Edit assessment.SectionKey

	// Pins are drawn over the body diagram of an image block.
	Pins []assessment.Pin
}

// Group is a run of nodes that belong together. KeepTogether asks the
// paginator to avoid splitting it across pages when it fits on one.
type Group struct {
	Section      assessment.SectionKey
	KeepTogether bool
	Nodes        []Node
}

// Document is the input of the paginator.
type Document struct {
	Title       string
	GeneratedAt string
	Nodes       []Node
}

func (Block) node() {}
func (Group) node() {}

// IsImage reports whether the block draws the pin diagram.
func (b Block) IsImage() bool {
	return b.Role == RoleImage
}

// Line returns the text drawn for a text block.
func (b Block) Line() string {
	if b.Role == RoleField {
		return b.Label + ": " + b.Value
	}
	return b.Text
}

// Walk calls fn for every block in document order.
func (d Document) Walk(fn func(Block)) {
	walk(d.Nodes, fn)
}

func walk(nodes []Node, fn func(Block)) {
	for _, n := range nodes {
		switch v := n.(type) {
		case Block:
			fn(v)
		case Group:
			walk(v.Nodes, fn)
		}
	}
}
