package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// atsLayout is the plainest variant: a single column ordered for applicant
// tracking systems. It has no slot for languages or the extended personal
// fields.
func atsLayout(vm resume.ViewModel) *Document {
	nodes := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}
	nodes = appendSection(nodes, "Professional Summary", vm.Summary)
	nodes = appendSection(nodes, "Technical Skills", vm.Skills)
	nodes = appendSection(nodes, "Professional Experience", vm.Experience)
	nodes = appendSection(nodes, "Education", vm.Education)
	nodes = appendSection(nodes, "Projects", vm.Projects)
	nodes = appendSection(nodes, "Achievements", vm.Achievements)
	return &Document{Children: nodes}
}
