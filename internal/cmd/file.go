// Package cmd holds the scriptable subcommands. Each command is a thin
// cobra wrapper around a RunX function that takes explicit reader/writer
// and filesystem arguments so tests never touch the real disk.
package cmd

import (
	"github.com/spf13/afero"

	"github.com/mkarlin/tagstash/internal/config"
	"github.com/mkarlin/tagstash/internal/kb"
	"github.com/mkarlin/tagstash/internal/persist"
)

// dataFilePath resolves the knowledge file: the --file flag wins, then
// the configured default, then the fixed backup path.
func dataFilePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg, err := config.Load(); err == nil && cfg.DefaultFile != "" {
		return cfg.DefaultFile
	}
	return persist.BackupFile
}

func backupPath() string {
	if cfg, err := config.Load(); err == nil && cfg.BackupFile != "" {
		return cfg.BackupFile
	}
	return persist.BackupFile
}

// openService loads path into a fresh service. A missing file is not an
// error; the command starts from an empty store and creates it on save.
func openService(fsys afero.Fs, path string) (*kb.Service, error) {
	svc := kb.NewService(fsys, backupPath())
	if !persist.Exists(fsys, path) {
		return svc, nil
	}
	if err := svc.Load(path); err != nil {
		return nil, err
	}
	return svc, nil
}
