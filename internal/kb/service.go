// Package kb owns the knowledge store, the deletion undo log, and the
// operations the CLI and TUI invoke against them.
package kb

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/mkarlin/tagstash/internal/persist"
)

// Service orchestrates the store, the undo log, and file persistence.
// It is the single owner of application state; the UI layers only call
// its methods and render what they return.
type Service struct {
	store  *Store
	undo   *UndoLog
	fsys   afero.Fs
	backup string
}

// NewService creates a service with an empty store. backupPath is the
// safety-net file written on every save and the fallback load source.
func NewService(fsys afero.Fs, backupPath string) *Service {
	if backupPath == "" {
		backupPath = persist.BackupFile
	}
	return &Service{
		store:  NewStore(),
		undo:   &UndoLog{},
		fsys:   fsys,
		backup: backupPath,
	}
}

// Add stores text under every tag in tags. All tags receive the same
// snippet; re-adding an existing tag overwrites its text. Returns
// ErrEmptyInput when text is empty, leaving the store untouched.
func (s *Service) Add(text string, tags []string) error {
	if text == "" {
		return ErrEmptyInput
	}
	for _, tag := range tags {
		s.store.Put(tag, text)
	}
	return nil
}

// Delete removes tag and records it in the undo log. Deleting a tag that
// does not exist is a no-op, not an error.
func (s *Service) Delete(tag string) bool {
	if _, ok := s.store.Remove(tag); !ok {
		return false
	}
	s.undo.Push(tag)
	return true
}

// Undo restores the most recently deleted tag, associating it with
// currentText: the undo log keeps tag names only, so the snippet shown
// at undo time stands in for the deleted text. Returns ErrEmptyUndo
// when there is nothing to restore.
func (s *Service) Undo(currentText string) (string, error) {
	tag, ok := s.undo.Pop()
	if !ok {
		return "", ErrEmptyUndo
	}
	s.store.Put(tag, currentText)
	return tag, nil
}

// Get returns the snippet stored under tag.
func (s *Service) Get(tag string) (string, bool) {
	return s.store.Get(tag)
}

// Tags returns all tags in insertion order.
func (s *Service) Tags() []string {
	return s.store.Tags()
}

// Len returns the number of stored snippets.
func (s *Service) Len() int {
	return s.store.Len()
}

// BackupPath returns the fixed safety-net file path.
func (s *Service) BackupPath() string {
	return s.backup
}

// Load replaces the store with the contents of path. An empty path means
// "load the backup if it exists", which tolerates absence by leaving the
// store empty. An explicit path that cannot be read is an error; the
// in-memory state is left untouched in that case.
func (s *Service) Load(path string) error {
	if path == "" {
		path = s.backup
		if !persist.Exists(s.fsys, path) {
			s.store = NewStore()
			return nil
		}
	}
	entries, err := persist.Load(s.fsys, path)
	if err != nil {
		return err
	}
	store := NewStore()
	for _, e := range entries {
		store.Put(e.Tag, e.Text)
	}
	s.store = store
	return nil
}

// Save writes the store to path and always also to the backup path. The
// backup write is best-effort: a failure there is reported only when the
// primary write succeeded.
func (s *Service) Save(path string) error {
	entries := s.snapshot()
	err := persist.Save(s.fsys, path, entries)
	if path != s.backup {
		backupErr := persist.Save(s.fsys, s.backup, entries)
		if err == nil && backupErr != nil {
			return fmt.Errorf("backup: %w", backupErr)
		}
	}
	return err
}

func (s *Service) snapshot() []persist.Entry {
	tags := s.store.Tags()
	entries := make([]persist.Entry, 0, len(tags))
	for _, tag := range tags {
		text, _ := s.store.Get(tag)
		entries = append(entries, persist.Entry{Tag: tag, Text: text})
	}
	return entries
}
