package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is this build's release identifier. There is no build pipeline
// in this repository to stamp it via ldflags, so it stays a plain constant
// the way a small CLI would before adopting one.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the swiftrewriter version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "swiftrewriter", Version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
