package kb

// UndoLog records deleted tags in LIFO order. Only the tag name is kept;
// the snippet text is not retained, matching the tool's single-step undo
// semantics (the restored text comes from whatever the caller supplies).
type UndoLog struct {
	tags []string
}

// Push records tag as the most recent deletion. Duplicates are allowed.
func (u *UndoLog) Push(tag string) {
	u.tags = append(u.tags, tag)
}

// Pop removes and returns the most recently deleted tag.
func (u *UndoLog) Pop() (string, bool) {
	if len(u.tags) == 0 {
		return "", false
	}
	tag := u.tags[len(u.tags)-1]
	u.tags = u.tags[:len(u.tags)-1]
	return tag, true
}

// Len returns the number of recorded deletions.
func (u *UndoLog) Len() int {
	return len(u.tags)
}
