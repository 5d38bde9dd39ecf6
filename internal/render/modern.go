package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// modernLayout keeps the single-column flow but pairs education and projects
// side by side under the experience block.
func modernLayout(vm resume.ViewModel) *Document {
	nodes := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}
	nodes = appendSection(nodes, "About Me", vm.Summary)
	nodes = appendSection(nodes, "Skills", vm.Skills)
	nodes = appendSection(nodes, "Experience", vm.Experience)

	var left, right []Node
	left = appendSection(left, "Education", vm.Education)
	right = appendSection(right, "Projects", vm.Projects)
	if len(left) > 0 || len(right) > 0 {
		nodes = append(nodes, &Columns{LeftWidth: 50, Left: left, Right: right})
	}

	nodes = appendSection(nodes, "Achievements", vm.Achievements)
	return &Document{Children: nodes}
}
