package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDoc = `# Resume

## Personal Information
- **Name**: Jane Doe
- **Email**: jane@x.com

## Summary
Seasoned backend engineer.

## Skills
- Go
- PostgreSQL

### Tooling
- Docker

## Experience
Acme Corp, 2019-2024.
`

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		section string
		want    string
	}{
		{
			name:    "body between two headings",
			doc:     sampleDoc,
			section: "Summary",
			want:    "Seasoned backend engineer.",
		},
		{
			name:    "case insensitive heading match",
			doc:     sampleDoc,
			section: "sKiLLs",
			want:    "- Go\n- PostgreSQL\n\n### Tooling\n- Docker",
		},
		{
			name:    "last section runs to end of document",
			doc:     sampleDoc,
			section: "Experience",
			want:    "Acme Corp, 2019-2024.",
		},
		{
			name:    "missing heading yields empty string",
			doc:     sampleDoc,
			section: "Languages",
			want:    "",
		},
		{
			name:    "heading need not be the first line",
			doc:     "intro text\n\n## Projects\nResume bot.",
			section: "Projects",
			want:    "Resume bot.",
		},
		{
			name:    "empty body before next heading",
			doc:     "## Skills\n## Education\nMIT",
			section: "Skills",
			want:    "",
		},
		{
			name:    "section name in prose does not match",
			doc:     "I have many Skills to offer.\n\n## Education\nMIT",
			section: "Skills",
			want:    "",
		},
		{
			name:    "deeper heading does not terminate the section",
			doc:     "## Experience\nAcme\n### Highlights\n- shipped",
			section: "Experience",
			want:    "Acme\n### Highlights\n- shipped",
		},
		{
			name:    "empty document",
			doc:     "",
			section: "Skills",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSection(tt.doc, tt.section))
		})
	}
}

func TestExtractSectionIdempotent(t *testing.T) {
	first := ExtractSection(sampleDoc, "Skills")
	second := ExtractSection(sampleDoc, "Skills")
	assert.Equal(t, first, second)
}

func TestExtractSectionOrderIndependent(t *testing.T) {
	// Extracting one section must not consume text another extraction needs.
	skillsFirst := ExtractSection(sampleDoc, "Skills")
	_ = ExtractSection(sampleDoc, "Summary")
	assert.Equal(t, skillsFirst, ExtractSection(sampleDoc, "Skills"))
	assert.Equal(t, "Seasoned backend engineer.", ExtractSection(sampleDoc, "Summary"))
}
