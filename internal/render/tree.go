// Package render maps a resume view model onto one of a closed set of layout
// variants. Layouts produce a presentation tree; actual visual styling is the
// concern of whatever consumes the tree.
package render

import "strings"

// Node is one element of a presentation tree.
type Node interface {
	node()
}

// Document is the root of a rendered layout.
type Document struct {
	Format   Format
	Children []Node
}

// Header carries the candidate's name and contact line.
type Header struct {
	Name    string
	Contact []Field
}

// Section is a titled block of markdown content.
type Section struct {
	Heading string
	Body    []Node
}

// Columns splits content into a narrow and a wide column. LeftWidth is the
// left column's share in percent.
type Columns struct {
	LeftWidth int
	Left      []Node
	Right     []Node
}

// Field is a labelled value, e.g. a contact entry. Label may be empty.
type Field struct {
	Label string
	Value string
}

// Markdown is a verbatim markdown fragment from the source document.
type Markdown struct {
	Text string
}

func (*Header) node()   {}
func (*Section) node()  {}
func (*Columns) node()  {}
func (Field) node()     {}
func (*Markdown) node() {}

// PlainText flattens a presentation tree into displayable text. Columns are
// emitted narrow column first; field labels are joined with their values.
func PlainText(doc *Document) string {
	var sb strings.Builder
	writeNodes(&sb, doc.Children)
	return strings.TrimRight(sb.String(), "\n")
}

func writeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Header:
			if v.Name != "" {
				sb.WriteString("# " + v.Name + "\n")
			}
			parts := make([]string, 0, len(v.Contact))
			for _, f := range v.Contact {
				parts = append(parts, fieldText(f))
			}
			if len(parts) > 0 {
				sb.WriteString(strings.Join(parts, " | ") + "\n")
			}
			sb.WriteString("\n")
		case *Section:
			sb.WriteString(strings.ToUpper(v.Heading) + "\n")
			writeNodes(sb, v.Body)
			sb.WriteString("\n")
		case *Columns:
			writeNodes(sb, v.Left)
			writeNodes(sb, v.Right)
		case Field:
			sb.WriteString(fieldText(v) + "\n")
		case *Markdown:
			sb.WriteString(v.Text + "\n")
		}
	}
}

func fieldText(f Field) string {
	if f.Label == "" {
		return f.Value
	}
	return f.Label + ": " + f.Value
}
