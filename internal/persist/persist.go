// Package persist reads and writes the knowledge file: one snippet per
// line in the form "tag : text". The format is deliberately plain so a
// corrupted line is skippable and the file stays hand-editable.
package persist

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// BackupFile is the fixed safety-net path, written on every save and used
// as the fallback load source when no file is chosen.
const BackupFile = "knowledge_backup.txt"

// delimiter splits tag from text on the first occurrence only. There is
// no escaping: a tag or text containing the delimiter will not round-trip.
const delimiter = " : "

// Entry is one persisted (tag, text) pair.
type Entry struct {
	Tag  string
	Text string
}

// Save writes entries to path, one line each. Text must not contain
// newlines or the " : " delimiter if the file is to round-trip intact.
func Save(fsys afero.Fs, path string, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Tag)
		b.WriteString(delimiter)
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	if err := afero.WriteFile(fsys, path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write knowledge file: %w", err)
	}
	return nil
}

// Load reads entries from path. Lines without the delimiter are skipped
// rather than treated as errors; tag and text are trimmed of surrounding
// whitespace. Lines whose tag trims to nothing are skipped too.
func Load(fsys afero.Fs, path string) ([]Entry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), delimiter, 2)
		if len(parts) < 2 {
			continue
		}
		tag := strings.TrimSpace(parts[0])
		if tag == "" {
			continue
		}
		entries = append(entries, Entry{Tag: tag, Text: strings.TrimSpace(parts[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return entries, nil
}

// Exists reports whether path is present on the filesystem.
func Exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
