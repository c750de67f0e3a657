package main

import (
	"github.com/dhamidi/outline/java/codebase"
	"github.com/dhamidi/outline/outline"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Serve document symbols derived from outlines over stdio. Use --log to
keep log output off the protocol stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := codebase.NewLSPServer(version, outline.New())
			return server.RunStdio()
		},
	}
}
