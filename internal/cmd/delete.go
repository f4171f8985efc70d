package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RunDelete removes tag and saves the file. A missing tag is reported
// but is not an error.
func RunDelete(fsys afero.Fs, out io.Writer, path, tag string) error {
	svc, err := openService(fsys, path)
	if err != nil {
		return err
	}
	if !svc.Delete(tag) {
		fmt.Fprintf(out, "tag %q not found, nothing deleted\n", tag)
		return nil
	}
	if err := svc.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %q\n", tag)
	return nil
}

// DeleteCmd returns the `tagstash delete` command.
func DeleteCmd(fsys afero.Fs) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Remove a tag and its snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return RunDelete(fsys, c.OutOrStdout(), dataFilePath(file), args[0])
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "knowledge file (defaults to config, then backup)")
	return cmd
}
