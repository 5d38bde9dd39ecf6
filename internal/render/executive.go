package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// executiveLayout uses formal section titles and pairs education with
// achievements.
func executiveLayout(vm resume.ViewModel) *Document {
	nodes := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}
	nodes = appendSection(nodes, "Executive Summary", vm.Summary)
	nodes = appendSection(nodes, "Core Competencies", vm.Skills)
	nodes = appendSection(nodes, "Professional Experience", vm.Experience)

	var left, right []Node
	left = appendSection(left, "Education", vm.Education)
	right = appendSection(right, "Achievements", vm.Achievements)
	if len(left) > 0 || len(right) > 0 {
		nodes = append(nodes, &Columns{LeftWidth: 50, Left: left, Right: right})
	}

	nodes = appendSection(nodes, "Notable Projects", vm.Projects)
	return &Document{Children: nodes}
}
