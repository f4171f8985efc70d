package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mkarlin/tagstash/internal/cmd"
	"github.com/mkarlin/tagstash/internal/config"
	"github.com/mkarlin/tagstash/internal/kb"
	"github.com/mkarlin/tagstash/internal/persist"
	"github.com/mkarlin/tagstash/internal/ui"
)

func main() {
	fsys := afero.NewOsFs()

	var file string
	root := &cobra.Command{
		Use:   "tagstash",
		Short: "Tagstash - tagged knowledge snippets",
		Long:  "Tagstash CLI: stash short knowledge snippets under tags, browse them, and undo deletions.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(fsys, file)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&file, "file", "f", "", "knowledge file to load")

	root.AddCommand(cmd.AddCmd(fsys))
	root.AddCommand(cmd.ListCmd(fsys))
	root.AddCommand(cmd.ShowCmd(fsys))
	root.AddCommand(cmd.DeleteCmd(fsys))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(fsys afero.Fs, flagPath string) error {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = nil
	}

	backup := persist.BackupFile
	if cfg != nil && cfg.BackupFile != "" {
		backup = cfg.BackupFile
	}
	svc := kb.NewService(fsys, backup)

	loadPath := flagPath
	if loadPath == "" && cfg != nil {
		loadPath = cfg.DefaultFile
	}
	if err := svc.Load(loadPath); err != nil {
		// An unreadable file is not fatal; the session starts empty and
		// the user decides where to save on exit.
		fmt.Fprintf(os.Stderr, "load %s: %v (starting empty)\n", loadPath, err)
	}

	app := ui.NewApp(svc, cfg, loadPath)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
