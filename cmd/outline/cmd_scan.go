package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/outline/config"
	"github.com/dhamidi/outline/format"
	"github.com/dhamidi/outline/outline"
	"github.com/dhamidi/outline/project"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var configPath string
	var jobs int
	var indent string

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Outline every Java file of a source tree",
		Long: `Find the Java files of a source tree, project them in parallel and
print a single JSON object mapping each relative path to its outline.`,
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
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("indent") {
				cfg.Indent = indent
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			proj, err := project.Load(dir, cfg)
			if err != nil {
				return err
			}
			results, err := proj.ProjectAll(cmd.Context(), outline.New())
			if err != nil {
				return err
			}

			if err := format.NewJSONEncoder(os.Stdout).SetIndent(cfg.Indent).Encode(project.Collect(results)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: outline.toml in dir)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files projected at once (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&indent, "indent", "", "indent output with this string (compact if empty)")

	return cmd
}

// loadConfig reads the config at path, or looks for one in dir.
func loadConfig(dir, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Find(dir)
}
