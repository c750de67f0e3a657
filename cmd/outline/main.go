package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbose int
	var quiet bool
	var logFile string

	rootCmd := &cobra.Command{
		Use:          "outline",
		Short:        "Outline the declarations of Java sources as JSON",
		SilenceUsage: true,
		Version:      version,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbosity := verbose
		if quiet {
			verbosity = -4
		}
		var path *string
		if logFile != "" {
			path = &logFile
		}
		commonlog.Configure(verbosity, path)
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
