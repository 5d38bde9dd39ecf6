package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildViewModel(t *testing.T) {
	t.Run("empty document is a valid all-empty model", func(t *testing.T) {
		vm := BuildViewModel("")
		assert.Equal(t, ViewModel{}, vm)
	})

	t.Run("populates all sections", func(t *testing.T) {
		vm := BuildViewModel(sampleDoc)
		assert.Equal(t, "Jane Doe", vm.Name)
		assert.Equal(t, "jane@x.com", vm.Email)
		assert.Equal(t, "Seasoned backend engineer.", vm.Summary)
		assert.Contains(t, vm.Skills, "- Go")
		assert.Equal(t, "Acme Corp, 2019-2024.", vm.Experience)
		assert.Equal(t, "", vm.Languages)
	})

	t.Run("summary falls back to professional summary heading", func(t *testing.T) {
		vm := BuildViewModel("## Professional Summary\nBuilds things.")
		assert.Equal(t, "Builds things.", vm.Summary)
	})

	t.Run("plain prose document", func(t *testing.T) {
		vm := BuildViewModel("just some text with no headings at all")
		assert.Equal(t, "", vm.Summary)
		assert.Equal(t, "", vm.Skills)
	})
}
