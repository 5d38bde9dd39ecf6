package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortText(t *testing.T) {
	parts := SplitMessage("hello", 100)
	assert.Equal(t, []string{"hello"}, parts)
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	text := strings.Repeat("line one\n", 20)
	parts := SplitMessage(text, 100)

	require.Greater(t, len(parts), 1)
	for _, p := range parts[:len(parts)-1] {
		assert.True(t, strings.HasSuffix(p, "\n"))
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessageHardSplit(t *testing.T) {
	text := strings.Repeat("a", 250)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestFixMarkdownClosesCodeBlock(t *testing.T) {
	fixed := FixMarkdown("some code:\n```go\nfmt.Println()")
	assert.Equal(t, 2, strings.Count(fixed, "```"))
}

func TestFixMarkdownClosesInlineCode(t *testing.T) {
	fixed := FixMarkdown("use `Render here")
	assert.Equal(t, 2, strings.Count(fixed, "`"))
}

func TestFixMarkdownLeavesBalancedTextAlone(t *testing.T) {
	text := "already `fine` and ```\nclosed\n```"
	assert.Equal(t, text, FixMarkdown(text))
}
