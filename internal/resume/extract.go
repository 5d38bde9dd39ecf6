// Package resume turns raw markdown snapshots from the generation backend
// into the structured view model the layout renderers consume.
package resume

import "strings"

// Canonical section headings recognized in a resume document.
const (
	SectionPersonalInfo = "Personal Information"
	SectionSummary      = "Summary"
	SectionSummaryAlt   = "Professional Summary"
	SectionSkills       = "Skills"
	SectionExperience   = "Experience"
	SectionEducation    = "Education"
	SectionProjects     = "Projects"
	SectionAchievements = "Achievements"
	SectionLanguages    = "Languages"
)

// ExtractSection returns the body of the "## <section>" heading in doc: every
// line after the heading up to the next level-two heading or the end of the
// document, with surrounding whitespace trimmed. The heading name match is
// case-insensitive. A missing heading yields "". The scan never consumes
// input, so extracting one section has no effect on any other.
func ExtractSection(doc, section string) string {
	var body []string
	inside := false
	for _, line := range strings.Split(doc, "\n") {
		name, isHeading := headingName(line)
		if isHeading {
			if inside {
				break
			}
			inside = strings.EqualFold(name, section)
			continue
		}
		if inside {
			body = append(body, line)
		}
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// headingName reports whether line is a level-two markdown heading and, if
// so, returns its trimmed text. Deeper headings (###) belong to the section
// body and do not terminate it.
func headingName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "##") {
		return "", false
	}
	rest := trimmed[2:]
	if strings.HasPrefix(rest, "#") {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
