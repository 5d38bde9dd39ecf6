package render

import (
	"strings"

	"github.com/MRehmanR/resume-builder/internal/resume"
)

// Format selects one layout variant.
type Format string

const (
	FormatATS       Format = "ats"
	FormatModern    Format = "modern"
	FormatSidebar   Format = "sidebar"
	FormatCreative  Format = "creative"
	FormatExecutive Format = "executive"
	FormatEuropass  Format = "europass"
)

// layouts is the closed dispatch table. Adding a variant means adding one
// entry here plus its layout file; the view model contract never changes.
var layouts = map[Format]func(resume.ViewModel) *Document{
	FormatATS:       atsLayout,
	FormatModern:    modernLayout,
	FormatSidebar:   sidebarLayout,
	FormatCreative:  creativeLayout,
	FormatExecutive: executiveLayout,
	FormatEuropass:  europassLayout,
}

// formatOrder fixes the presentation order of variants for pickers.
var formatOrder = []Format{
	FormatATS, FormatModern, FormatSidebar, FormatCreative, FormatExecutive, FormatEuropass,
}

// ParseFormat maps user input onto a known format. Unrecognized values fall
// back to the ATS layout; that is the documented default, not an error.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := layouts[f]; ok {
		return f
	}
	return FormatATS
}

// Formats lists all layout variants in stable display order.
func Formats() []Format {
	out := make([]Format, len(formatOrder))
	copy(out, formatOrder)
	return out
}

// Render maps the view model through the layout for f. An unknown format
// renders as ATS.
func Render(vm resume.ViewModel, f Format) *Document {
	layout, ok := layouts[f]
	if !ok {
		f, layout = FormatATS, layouts[FormatATS]
	}
	doc := layout(vm)
	doc.Format = f
	return doc
}

// section wraps a markdown body under a heading, or returns nil for an empty
// body so layouts can skip sections they have nothing to show for.
func section(heading, body string) *Section {
	if body == "" {
		return nil
	}
	return &Section{Heading: heading, Body: []Node{&Markdown{Text: body}}}
}

func appendSection(nodes []Node, heading, body string) []Node {
	if s := section(heading, body); s != nil {
		nodes = append(nodes, s)
	}
	return nodes
}

func contactFields(p resume.PersonalInfo) []Field {
	var fields []Field
	if p.Email != "" {
		fields = append(fields, Field{Value: p.Email})
	}
	if p.Phone != "" {
		fields = append(fields, Field{Value: p.Phone})
	}
	if p.LinkedIn != "" {
		fields = append(fields, Field{Label: "LinkedIn", Value: p.LinkedIn})
	}
	if p.GitHub != "" {
		fields = append(fields, Field{Label: "GitHub", Value: p.GitHub})
	}
	return fields
}
