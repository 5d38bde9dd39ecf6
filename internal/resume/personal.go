package resume

import "strings"

// PersonalInfo holds the contact block of a resume. Every field is always
// present; a field the document does not mention is the empty string. The
// extended fields (Address through Gender) only surface in layouts that have
// a slot for them.
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string

	Address     string
	Nationality string
	DateOfBirth string
	Gender      string
}

// ExtractPersonalInfo scans doc for the "Personal Information" section and
// pulls recognized contact fields out of its list items. When that section is
// absent or empty the whole document is searched instead. Fields may appear
// in any order and with either "-" or "*" bullets.
func ExtractPersonalInfo(doc string) PersonalInfo {
	scope := ExtractSection(doc, SectionPersonalInfo)
	if scope == "" {
		scope = doc
	}
	return PersonalInfo{
		Name:        fieldValue(scope, "Name"),
		Email:       fieldValue(scope, "Email"),
		Phone:       fieldValue(scope, "Phone"),
		LinkedIn:    fieldValue(scope, "LinkedIn"),
		GitHub:      fieldValue(scope, "GitHub"),
		Address:     fieldValue(scope, "Address"),
		Nationality: fieldValue(scope, "Nationality"),
		DateOfBirth: fieldValue(scope, "Date of Birth"),
		Gender:      fieldValue(scope, "Gender"),
	}
}

// fieldValue finds the first list item of the shape
// "- **<label>**: <value>" (bullet, optional bold markers, case-insensitive
// label, colon) and returns the trimmed value, or "" when no line matches.
func fieldValue(scope, label string) string {
	for _, line := range strings.Split(scope, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || (trimmed[0] != '-' && trimmed[0] != '*') {
			continue
		}
		rest := strings.TrimSpace(trimmed[1:])
		rest = strings.TrimSpace(strings.TrimLeft(rest, "*"))
		if len(rest) < len(label) || !strings.EqualFold(rest[:len(label)], label) {
			continue
		}
		rest = strings.TrimSpace(strings.TrimLeft(rest[len(label):], "*"))
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		return strings.TrimSpace(rest[1:])
	}
	return ""
}
