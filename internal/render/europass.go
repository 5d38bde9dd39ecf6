package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// europassLayout is the only variant with slots for the extended personal
// fields; it keeps languages and skills in the side column in the Europass
// tradition.
func europassLayout(vm resume.ViewModel) *Document {
	side := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}
	if personal := personalFields(vm.PersonalInfo); len(personal) > 0 {
		side = append(side, &Section{Heading: "Personal Info", Body: personal})
	}
	side = appendSection(side, "Languages", vm.Languages)
	side = appendSection(side, "Skills", vm.Skills)

	var main []Node
	main = appendSection(main, "Profile", vm.Summary)
	main = appendSection(main, "Work Experience", vm.Experience)
	main = appendSection(main, "Education & Training", vm.Education)
	main = appendSection(main, "Projects", vm.Projects)
	main = appendSection(main, "Achievements", vm.Achievements)

	return &Document{Children: []Node{
		&Columns{LeftWidth: 30, Left: side, Right: main},
	}}
}

func personalFields(p resume.PersonalInfo) []Node {
	var fields []Node
	if p.Address != "" {
		fields = append(fields, Field{Label: "Address", Value: p.Address})
	}
	if p.Nationality != "" {
		fields = append(fields, Field{Label: "Nationality", Value: p.Nationality})
	}
	if p.DateOfBirth != "" {
		fields = append(fields, Field{Label: "Date of Birth", Value: p.DateOfBirth})
	}
	if p.Gender != "" {
		fields = append(fields, Field{Label: "Gender", Value: p.Gender})
	}
	return fields
}
