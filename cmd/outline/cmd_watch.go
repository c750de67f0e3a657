package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dhamidi/outline/format"
	"github.com/dhamidi/outline/java/codebase"
	"github.com/dhamidi/outline/outline"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print outlines of Java files as they change",
		Long: `Project every Java file of a source tree, then watch the tree and print
one JSON line per re-projected file. Removed files are reported with
"removed": true.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cfg, err := loadConfig(dir, configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cb := codebase.New(dir, outline.New())
			if err := cb.ScanAll(cfg); err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}
			enc := format.NewJSONEncoder(os.Stdout)
			for _, path := range cb.Paths() {
				if err := printEvent(enc, dir, codebase.Event{Path: path, File: cb.GetFile(path)}); err != nil {
					return err
				}
			}

			watcher, err := codebase.NewFileWatcher(cb, cfg)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			defer watcher.Stop()

			for ev := range watcher.Events() {
				if err := printEvent(enc, dir, ev); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: outline.toml in dir)")

	return cmd
}

// printEvent writes ev as one JSON line. Files that currently fail to parse
// are skipped until they have an outline.
func printEvent(enc *format.JSONEncoder, dir string, ev codebase.Event) error {
	rel, err := filepath.Rel(dir, ev.Path)
	if err != nil {
		rel = ev.Path
	}
	line := outline.NewObject()
	line.Set("path", filepath.ToSlash(rel))
	switch {
	case ev.Removed:
		line.Set("removed", true)
	case ev.File != nil && ev.File.Err == nil:
		line.Set("outline", ev.File.Outline)
	default:
		return nil
	}
	return enc.Encode(line)
}
