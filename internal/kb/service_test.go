package kb

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlin/tagstash/internal/persist"
)

func newTestService(t *testing.T) (*Service, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	return NewService(fsys, persist.BackupFile), fsys
}

func TestServiceAddStoresSameTextUnderEveryTag(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Add("remember this", []string{"work", "notes"})
	require.NoError(t, err)

	for _, tag := range []string{"work", "notes"} {
		text, ok := svc.Get(tag)
		assert.True(t, ok)
		assert.Equal(t, "remember this", text)
	}
}

func TestServiceAddEmptyTextRejected(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Add("", []string{"work"})

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, svc.Tags())
}

func TestServiceAddOverwritesExistingTag(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Add("old", []string{"work"}))

	require.NoError(t, svc.Add("new", []string{"work"}))

	text, _ := svc.Get("work")
	assert.Equal(t, "new", text)
	assert.Equal(t, []string{"work"}, svc.Tags())
}

func TestServiceDeleteRemovesTag(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Add("report", []string{"work"}))

	assert.True(t, svc.Delete("work"))

	_, ok := svc.Get("work")
	assert.False(t, ok)
	assert.NotContains(t, svc.Tags(), "work")
}

func TestServiceDeleteMissingIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	assert.False(t, svc.Delete("ghost"))

	_, err := svc.Undo("anything")
	assert.ErrorIs(t, err, ErrEmptyUndo)
}

func TestServiceUndoRestoresWithCurrentText(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Add("original text", []string{"work"}))
	require.True(t, svc.Delete("work"))

	tag, err := svc.Undo("whatever is in the editor")
	require.NoError(t, err)
	assert.Equal(t, "work", tag)

	text, ok := svc.Get("work")
	assert.True(t, ok)
	// The undo log keeps tags only; the restored snippet is the text
	// supplied at undo time, not the deleted one.
	assert.Equal(t, "whatever is in the editor", text)
}

func TestServiceUndoEmptyLog(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Undo("x")

	assert.ErrorIs(t, err, ErrEmptyUndo)
}

func TestServiceTwoDeletesUndoInReverseOrder(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Add("a", []string{"first"}))
	require.NoError(t, svc.Add("b", []string{"second"}))

	require.True(t, svc.Delete("first"))
	require.True(t, svc.Delete("second"))

	tag, err := svc.Undo("x")
	require.NoError(t, err)
	assert.Equal(t, "second", tag)

	tag, err = svc.Undo("y")
	require.NoError(t, err)
	assert.Equal(t, "first", tag)

	assert.ElementsMatch(t, []string{"first", "second"}, svc.Tags())
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	svc, fsys := newTestService(t)
	require.NoError(t, svc.Add("finish the report", []string{"work"}))
	require.NoError(t, svc.Add("buy milk", []string{"home", "errands"}))

	require.NoError(t, svc.Save("knowledge.txt"))

	loaded := NewService(fsys, persist.BackupFile)
	require.NoError(t, loaded.Load("knowledge.txt"))

	assert.Equal(t, svc.Tags(), loaded.Tags())
	for _, tag := range svc.Tags() {
		want, _ := svc.Get(tag)
		got, ok := loaded.Get(tag)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestServiceSaveAlwaysWritesBackup(t *testing.T) {
	svc, fsys := newTestService(t)
	require.NoError(t, svc.Add("x", []string{"work"}))

	require.NoError(t, svc.Save("chosen.txt"))

	assert.True(t, persist.Exists(fsys, "chosen.txt"))
	assert.True(t, persist.Exists(fsys, persist.BackupFile))
}

func TestServiceSaveToBackupPathWritesOnce(t *testing.T) {
	svc, fsys := newTestService(t)
	require.NoError(t, svc.Add("x", []string{"work"}))

	require.NoError(t, svc.Save(persist.BackupFile))

	assert.True(t, persist.Exists(fsys, persist.BackupFile))
}

func TestServiceSaveFailureLeavesStoreUntouched(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	svc := NewService(fsys, persist.BackupFile)
	require.NoError(t, svc.Add("x", []string{"work"}))

	err := svc.Save("anywhere.txt")

	assert.Error(t, err)
	text, ok := svc.Get("work")
	assert.True(t, ok)
	assert.Equal(t, "x", text)
}

func TestServiceLoadFallbackMissingBackupYieldsEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Load("")

	assert.NoError(t, err)
	assert.Zero(t, svc.Len())
}

func TestServiceLoadFallbackReadsBackup(t *testing.T) {
	svc, fsys := newTestService(t)
	require.NoError(t, afero.WriteFile(fsys, persist.BackupFile, []byte("work : report\n"), 0o644))

	require.NoError(t, svc.Load(""))

	text, ok := svc.Get("work")
	assert.True(t, ok)
	assert.Equal(t, "report", text)
}

func TestServiceLoadExplicitMissingPathFails(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Add("keep", []string{"work"}))

	err := svc.Load("no-such-file.txt")

	assert.Error(t, err)
	// Failed load leaves the in-memory state untouched.
	_, ok := svc.Get("work")
	assert.True(t, ok)
}

func TestServiceLoadReplacesStore(t *testing.T) {
	svc, fsys := newTestService(t)
	require.NoError(t, svc.Add("stale", []string{"old"}))
	require.NoError(t, afero.WriteFile(fsys, "k.txt", []byte("fresh : new text\n"), 0o644))

	require.NoError(t, svc.Load("k.txt"))

	assert.Equal(t, []string{"fresh"}, svc.Tags())
}
