package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRehmanR/resume-builder/internal/resume"
)

func sampleViewModel() resume.ViewModel {
	return resume.ViewModel{
		PersonalInfo: resume.PersonalInfo{
			Name:        "Jane Doe",
			Email:       "jane@x.com",
			Phone:       "+1 555 0100",
			LinkedIn:    "in/janedoe",
			GitHub:      "janedoe",
			Nationality: "Dutch",
		},
		Summary:      "Backend engineer.",
		Skills:       "- Go\n- SQL",
		Experience:   "Acme Corp",
		Education:    "MIT",
		Projects:     "Resume bot",
		Achievements: "Shipped it",
		Languages:    "English, Dutch",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"ats", FormatATS},
		{"Modern", FormatModern},
		{"  EUROPASS ", FormatEuropass},
		{"unknown-format", FormatATS},
		{"", FormatATS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFormat(tt.in), "input %q", tt.in)
	}
}

func TestRenderUnknownFormatFallsBackToATS(t *testing.T) {
	vm := sampleViewModel()
	unknown := Render(vm, Format("unknown-format"))
	ats := Render(vm, FormatATS)
	assert.Equal(t, PlainText(ats), PlainText(unknown))
	assert.Equal(t, FormatATS, unknown.Format)
}

func TestRenderAllFormatsConsumeSameModel(t *testing.T) {
	vm := sampleViewModel()
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			doc := Render(vm, f)
			require.NotNil(t, doc)
			text := PlainText(doc)
			assert.Contains(t, text, "Jane Doe")
			assert.Contains(t, text, "Acme Corp")
		})
	}
}

func TestRenderEmptyModel(t *testing.T) {
	for _, f := range Formats() {
		doc := Render(resume.ViewModel{}, f)
		require.NotNil(t, doc, string(f))
		// No validation failure on missing content; output is just sparse.
		assert.NotContains(t, PlainText(doc), "ACHIEVEMENTS")
	}
}

func TestATSLayoutOmitsLanguages(t *testing.T) {
	text := PlainText(Render(sampleViewModel(), FormatATS))
	assert.NotContains(t, text, "English, Dutch")
}

func TestEuropassLayoutCarriesExtendedFields(t *testing.T) {
	text := PlainText(Render(sampleViewModel(), FormatEuropass))
	assert.Contains(t, text, "Nationality: Dutch")
	assert.Contains(t, text, "English, Dutch")
}

func TestFormatsStableOrder(t *testing.T) {
	want := []Format{FormatATS, FormatModern, FormatSidebar, FormatCreative, FormatExecutive, FormatEuropass}
	assert.Equal(t, want, Formats())
}
