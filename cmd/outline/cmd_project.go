package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/outline/format"
	"github.com/dhamidi/outline/outline"
	"github.com/dhamidi/outline/project"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	var indent string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "project <file>",
		Short: "Print the outline of a Java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := project.ProjectFile(args[0], outline.New())
			if err != nil {
				return err
			}
			enc, err := format.NewEncoder(outputFormat, os.Stdout, indent)
			if err != nil {
				return err
			}
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, lines)")
	cmd.Flags().StringVar(&indent, "indent", "", "indent output with this string (compact if empty)")

	return cmd
}
