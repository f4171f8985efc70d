package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mkarlin/tagstash/internal/kb"
)

// RunShow prints the snippet stored under tag.
func RunShow(fsys afero.Fs, out io.Writer, path, tag string) error {
	svc, err := openService(fsys, path)
	if err != nil {
		return err
	}
	text, ok := svc.Get(tag)
	if !ok {
		return fmt.Errorf("%w: %q", kb.ErrNotFound, tag)
	}
	fmt.Fprintln(out, text)
	return nil
}

// ShowCmd returns the `tagstash show` command.
func ShowCmd(fsys afero.Fs) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show <tag>",
		Short: "Print the snippet stored under a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return RunShow(fsys, c.OutOrStdout(), dataFilePath(file), args[0])
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "knowledge file (defaults to config, then backup)")
	return cmd
}
