package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListNewList(t *testing.T) {
	list := NewList(10)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
	assert.Nil(t, list.Items)
}

func TestListSetItemsResetsCursor(t *testing.T) {
	list := NewList(5)
	list.SetItems([]string{"a", "b", "c"})
	list.Down()

	list.SetItems([]string{"x", "y"})

	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListDownMovementScrolls(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})

	list.Down()
	list.Down()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	list.Down()
	assert.Equal(t, 3, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.Down()
	list.Down()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)
}

func TestListUpMovementScrolls(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})
	list.Cursor = 4
	list.Offset = 2

	list.Up()
	list.Up()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	list.Up()
	assert.Equal(t, 1, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.Up()
	list.Up()
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListVisibleWindow(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})

	assert.Equal(t, []string{"a", "b", "c"}, list.Visible())

	list.Offset = 3
	assert.Equal(t, []string{"d", "e"}, list.Visible())
}

func TestListVisibleEmpty(t *testing.T) {
	list := NewList(5)
	list.SetItems(nil)

	assert.Nil(t, list.Visible())
}

func TestListSelectedItem(t *testing.T) {
	list := NewList(5)
	list.SetItems([]string{"a", "b"})
	list.Down()

	item, ok := list.SelectedItem()
	assert.True(t, ok)
	assert.Equal(t, "b", item)
}

func TestListSelectedItemEmpty(t *testing.T) {
	list := NewList(5)

	_, ok := list.SelectedItem()
	assert.False(t, ok)
}

func TestListReplaceItemsClampsCursor(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d"})
	list.Cursor = 3
	list.Offset = 1

	list.ReplaceItems([]string{"a", "b"})

	assert.Equal(t, 1, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.ReplaceItems(nil)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListSelectScrollsIntoView(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c", "d", "e"})

	list.Select("e")
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 3, list.Offset)

	list.Select("a")
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	list.Select("missing")
	assert.Equal(t, 0, list.Cursor)
}

func TestListRelToAbs(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})
	list.Offset = 2

	assert.Equal(t, 2, list.RelToAbs(0))
	assert.Equal(t, 4, list.RelToAbs(2))
}

func TestListIsSelected(t *testing.T) {
	list := NewList(5)
	list.SetItems([]string{"a", "b", "c"})
	list.Cursor = 1

	assert.False(t, list.IsSelected(0))
	assert.True(t, list.IsSelected(1))
}
