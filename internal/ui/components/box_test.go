package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxContainsContent(t *testing.T) {
	out := Box("hello", 100)

	assert.Contains(t, out, "hello")
}

func TestTitledBoxEmbedsTitleInTopBorder(t *testing.T) {
	out := TitledBox("Tags", "work\nhome", 100)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Tags")
	assert.Contains(t, out, "work")
}

func TestTitledBoxEmptyTitleFallsBackToPlainBox(t *testing.T) {
	out := TitledBox("", "content", 100)

	assert.Contains(t, out, "content")
	assert.NotContains(t, out, "[ ")
}

func TestErrorBoxShowsTitleAndMessage(t *testing.T) {
	out := ErrorBox("Error", "write knowledge file: permission denied", 100)

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "permission denied")
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, 0, BoxContentWidth(0))
	// 100 cols -> 70 box width -> minus border and padding.
	assert.Equal(t, 64, BoxContentWidth(100))
}

func TestClampTextWidthTruncates(t *testing.T) {
	out := ClampTextWidth("abcdefghij", 4)

	assert.Equal(t, "abcd", out)
}

func TestClampTextWidthFlattensNewlines(t *testing.T) {
	out := ClampTextWidth("a\nb", 10)

	assert.Equal(t, "a b", out)
}

func TestIndent(t *testing.T) {
	out := Indent("a\nb", 2)

	assert.Equal(t, "  a\n  b", out)
}

func TestCenterLinePadsLeft(t *testing.T) {
	out := CenterLine("hi", 100)

	assert.True(t, strings.HasPrefix(out, " "))
	assert.Contains(t, out, "hi")
}

func TestInfoRow(t *testing.T) {
	out := InfoRow("Tag", "work")

	assert.Contains(t, out, "Tag:")
	assert.Contains(t, out, "work")
}
