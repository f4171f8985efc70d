package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RunList prints every stored tag in insertion order, one per line.
func RunList(fsys afero.Fs, out io.Writer, path string) error {
	svc, err := openService(fsys, path)
	if err != nil {
		return err
	}
	tags := svc.Tags()
	if len(tags) == 0 {
		fmt.Fprintln(out, "no knowledge stored")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(out, tag)
	}
	return nil
}

// ListCmd returns the `tagstash list` command.
func ListCmd(fsys afero.Fs) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all stored tags",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunList(fsys, c.OutOrStdout(), dataFilePath(file))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "knowledge file (defaults to config, then backup)")
	return cmd
}
