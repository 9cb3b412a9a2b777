package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the features extracted from a résumé as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(cmd *cobra.Command, path string) {
	ctx := context.Background()
	l, config := setup()

	text, err := loadFile(ctx, newLoader(config), path)
	if err != nil {
		l.Fatal("loading resume", zap.String("file", path), zap.Error(err))
	}

	processed, err := analysis.NewRunner(analysis.Deps{Logger: l}).Extract(text)
	if err != nil {
		l.Fatal("extracting resume", zap.String("file", path), zap.Error(err))
	}

	l.Debug("resume extracted", logger.ResumeFields(processed)...)

	if err := printJSON(cmd.OutOrStdout(), processed); err != nil {
		l.Fatal("writing output", zap.Error(err))
	}
}
