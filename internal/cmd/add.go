package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mkarlin/tagstash/internal/kb"
)

// RunAdd stores text under every given tag and saves the file. With no
// text argument the snippet is read from in until EOF.
func RunAdd(fsys afero.Fs, in io.Reader, out io.Writer, path, text string, tags []string) error {
	if text == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read snippet: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	resolved := kb.ResolveTags(nil, nil, strings.Join(tags, ","))
	if len(resolved) == 0 {
		return fmt.Errorf("at least one tag is required (use --tags)")
	}

	svc, err := openService(fsys, path)
	if err != nil {
		return err
	}
	if err := svc.Add(text, resolved); err != nil {
		return err
	}
	if err := svc.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(out, "added under: %s\n", strings.Join(resolved, ", "))
	return nil
}

// AddCmd returns the `tagstash add` command.
func AddCmd(fsys afero.Fs) *cobra.Command {
	var tags []string
	var file string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Store a knowledge snippet under one or more tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			return RunAdd(fsys, c.InOrStdin(), c.OutOrStdout(), dataFilePath(file), text, tags)
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "tags for the snippet (comma-separated)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "knowledge file (defaults to config, then backup)")
	return cmd
}
