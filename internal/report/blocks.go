package report

import (
	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/document"
)

// Font sizes in points and gaps in millimetres.
const (
	titleSize   = 18
	metaSize    = 10
	headingSize = 14
	fieldSize   = 11

	titleGap   = 2
	metaGap    = 8
	headingGap = 3
	fieldGap   = 1
	pinRowGap  = 3
	sectionGap = 6
)

// Blocks renders the report as a block document: title, timestamp, then
// one keep-together group per section whose heading carries the section key
// for editing.
func Blocks(snap *assessment.Snapshot, generatedAt string) document.Document {
	nodes := []document.Node{
		document.Block{Role: document.RoleTitle, Text: Title, Size: titleSize, Bold: true, Gap: titleGap},
		document.Block{Role: document.RoleMeta, Text: "Report Generated: " + generatedAt, Size: metaSize, Gap: metaGap},
	}
	for _, sec := range Sections(snap) {
		nodes = append(nodes, sectionGroup(sec))
	}

	return document.Document{
		Title:       Title,
		GeneratedAt: generatedAt,
		Nodes:       nodes,
	}
}

// EditTarget is a heading of the block projection that reopens its section.
type EditTarget struct {
	Section assessment.SectionKey
	Heading string
}

// EditTargets lists the editable headings of doc in document order.
func EditTargets(doc document.Document) []EditTarget {
	var targets []EditTarget
	doc.Walk(func(b document.Block) {
		if b.Role == document.RoleHeading && b.Edit != "" {
			targets = append(targets, EditTarget{Section: b.Edit, Heading: b.Text})
		}
	})
	return targets
}

func sectionGroup(sec Section) document.Group {
	nodes := []document.Node{
		document.Block{
			Role: document.RoleHeading,
			Text: sec.Title,
			Size: headingSize,
			Bold: true,
			Gap:  headingGap,
			Edit: sec.Key,
		},
	}

	for i, l := range sec.Lines {
		gap := float64(fieldGap)
		if i == len(sec.Lines)-1 {
			gap = sectionGap
		}
		row := fieldBlock(l, gap)

		if l.pinsRow && len(l.pins) > 0 {
			row.Gap = pinRowGap
			nodes = append(nodes, document.Group{
				Section:      sec.Key,
				KeepTogether: true,
				Nodes: []document.Node{
					row,
					document.Block{Role: document.RoleImage, Pins: l.pins},
				},
			})
			continue
		}
		nodes = append(nodes, row)
	}

	return document.Group{Section: sec.Key, KeepTogether: true, Nodes: nodes}
}

func fieldBlock(l Line, gap float64) document.Block {
	return document.Block{
		Role:  document.RoleField,
		Label: l.Label,
		Value: l.Value,
		Size:  fieldSize,
		Gap:   gap,
	}
}
