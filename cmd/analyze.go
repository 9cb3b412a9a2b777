package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/logger"
	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

var errNotInteractive = errors.New("stdin is not a terminal: pass the value as a flag")

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run an AI analysis (ats, interview or reality) on a résumé",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "analysis type: ats, interview or reality (prompted when empty)")
	cmd.Flags().StringP("target-level", "l", "", "target level for the reality check: entry, mid or senior")
	cmd.Flags().String("job-role", "", "role the candidate is interviewing for")
	cmd.Flags().String("feedback", "", "feedback from previous interviews")
}

func analyze(cmd *cobra.Command, path string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, config := setup()

	req, err := requestFromFlags(cmd)
	if err != nil {
		l.Fatal("building request", zap.Error(err))
	}

	requestID := uuid.NewString()
	l = logger.WithFields(l, logger.RequestFields(requestID, string(req.Type))...)

	text, err := loadFile(ctx, newLoader(config), path)
	if err != nil {
		l.Fatal("loading resume", zap.String("file", path), zap.Error(err))
	}

	analyzer, err := newAnalyzer(ctx, config.AI, l)
	if err != nil {
		l.Fatal("building ai analyzer", zap.Error(err))
	}

	l.Info("starting the analysis", zap.String("version", version), zap.String("file", path))

	resp, err := analysis.NewRunner(analysis.Deps{Analyzer: analyzer, Logger: l}).Run(ctx, req, text)
	if err != nil {
		l.Fatal("analysis failed", zap.Error(err))
	}

	if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
		l.Fatal("writing output", zap.Error(err))
	}
}

// requestFromFlags reads the request from flags and prompts for missing choices
// when attached to a terminal.
func requestFromFlags(cmd *cobra.Command) (analysis.Request, error) {
	flags := cmd.Flags()
	typ, _ := flags.GetString("type")
	level, _ := flags.GetString("target-level")
	role, _ := flags.GetString("job-role")
	feedback, _ := flags.GetString("feedback")

	req := analysis.Request{
		Type:        analysis.Type(typ),
		TargetLevel: level,
		JobRole:     role,
		Feedback:    feedback,
	}.Normalize()

	if req.Type == "" {
		choice, err := choose("Analysis type", typeItems())
		if err != nil {
			return req, err
		}
		req.Type = analysis.Type(choice)
	}

	if req.Type == analysis.TypeReality && req.TargetLevel == "" {
		choice, err := choose("Target level", []string{string(resume.LevelEntry), string(resume.LevelMid), string(resume.LevelSenior)})
		if err != nil {
			return req, err
		}
		req.TargetLevel = choice
	}

	return req, req.Validate()
}

func typeItems() []string {
	types := analysis.Types()
	items := make([]string, 0, len(types))
	for _, t := range types {
		items = append(items, string(t))
	}
	return items
}

func choose(label string, items []string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errNotInteractive
	}

	prompt := promptui.Select{
		Label: label,
		Items: items,
	}

	_, choice, err := prompt.Run()
	return choice, err
}
