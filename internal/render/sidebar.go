package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// sidebarLayout puts contact, skills, education and achievements in a narrow
// side column and the narrative sections in the main column.
func sidebarLayout(vm resume.ViewModel) *Document {
	side := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}
	side = appendSection(side, "Skills", vm.Skills)
	side = appendSection(side, "Education", vm.Education)
	side = appendSection(side, "Achievements", vm.Achievements)

	var main []Node
	main = appendSection(main, "About Me", vm.Summary)
	main = appendSection(main, "Experience", vm.Experience)
	main = appendSection(main, "Projects", vm.Projects)

	return &Document{Children: []Node{
		&Columns{LeftWidth: 33, Left: side, Right: main},
	}}
}
