package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (skill dictionary %s)\n", app, version, resume.SkillDictionaryVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
