package render

import "github.com/MRehmanR/resume-builder/internal/resume"

// creativeLayout leads with the story and skills pairing, then education and
// projects as cards.
func creativeLayout(vm resume.ViewModel) *Document {
	nodes := []Node{
		&Header{Name: vm.Name, Contact: contactFields(vm.PersonalInfo)},
	}

	var left, right []Node
	left = appendSection(left, "My Story", vm.Summary)
	right = appendSection(right, "What I Do", vm.Skills)
	if len(left) > 0 || len(right) > 0 {
		nodes = append(nodes, &Columns{LeftWidth: 50, Left: left, Right: right})
	}

	nodes = appendSection(nodes, "Experience", vm.Experience)

	left, right = nil, nil
	left = appendSection(left, "Education", vm.Education)
	right = appendSection(right, "Projects", vm.Projects)
	if len(left) > 0 || len(right) > 0 {
		nodes = append(nodes, &Columns{LeftWidth: 50, Left: left, Right: right})
	}

	nodes = appendSection(nodes, "Achievements", vm.Achievements)
	return &Document{Children: nodes}
}
