// Package cmd is the CLI surface for the translator, shaped after the
// teacher's own cmd/root.go + main.go split: a package-scoped root command
// that subcommands register themselves onto via init(), executed by a
// one-line main.go at the repository root.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johndpope/SwiftRewriter/common"
)

var logLevelRaw string
var runLogger common.ILogger = common.NopLogger{}

var rootCmd = &cobra.Command{
	Use:   "swiftrewriter",
	Short: "Translate Objective-C sources into Swift",
	Long: "swiftrewriter reads Objective-C headers and implementations, builds an\n" +
		"intention graph out of them, and renders the result as Swift source.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level common.LogLevel
		if err := level.Parse(logLevelRaw); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		runLogger = common.NewRunLogger(runID(), level, os.TempDir())
		runLogger.OpenLog()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closer, ok := runLogger.(common.ILoggerCloser); ok {
			closer.CloseLog()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelRaw, "log-level", "none", "one of none|fatal|panic|error|warning|info|debug")
}

// Execute runs the root command; main.go's only job is to call this and
// translate a non-nil error into a nonzero exit code.
func Execute() error {
	return rootCmd.Execute()
}

func runID() string {
	return fmt.Sprintf("swiftrewriter-%d", os.Getpid())
}
