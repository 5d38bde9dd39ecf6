package resume

// ViewModel is the one structured record layout renderers consume. It is
// structurally total: every field is always present, and an empty string
// means the document had nothing for it. Renderers only ever branch on
// emptiness, never on presence.
type ViewModel struct {
	PersonalInfo

	Summary      string
	Skills       string
	Experience   string
	Education    string
	Projects     string
	Achievements string
	Languages    string
}

// BuildViewModel derives the full view model from one markdown snapshot.
// Pure and deterministic; an empty or malformed document produces the
// all-empty view model, which is a valid result rather than an error.
func BuildViewModel(doc string) ViewModel {
	summary := ExtractSection(doc, SectionSummary)
	if summary == "" {
		summary = ExtractSection(doc, SectionSummaryAlt)
	}
	return ViewModel{
		PersonalInfo: ExtractPersonalInfo(doc),
		Summary:      summary,
		Skills:       ExtractSection(doc, SectionSkills),
		Experience:   ExtractSection(doc, SectionExperience),
		Education:    ExtractSection(doc, SectionEducation),
		Projects:     ExtractSection(doc, SectionProjects),
		Achievements: ExtractSection(doc, SectionAchievements),
		Languages:    ExtractSection(doc, SectionLanguages),
	}
}
