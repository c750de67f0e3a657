package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/outline/format"
	"github.com/dhamidi/outline/java/source"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var outputFormat string
	var allowErrors bool

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the syntax tree the outline is projected from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []source.Option
			if allowErrors {
				opts = append(opts, source.WithErrors())
			}
			node, err := source.ParseFile(args[0], opts...)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(os.Stdout).Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				fmt.Println(node.StringWithPositions())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&allowErrors, "errors", false, "print the tree even if the file has syntax errors")

	return cmd
}
