package gemini

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/ai"
	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
	"github.com/ShreyanshSharma123/interviewHelper/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompts/*.md
var promptFS embed.FS

const (
	defaultMaxLogLength = 200
	maxNoteRunes        = 500
)

const (
	promptATS       = "ats"
	promptHuman     = "human"
	promptInterview = "interview"
	promptReality   = "reality"
)

// Analyzer implements ai.Analyzer on top of a Gemini content generator.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Analyzer = (*Analyzer)(nil)

// NewAnalyzer creates an Analyzer; maxLogLength caps prompt and response previews in debug logs.
func NewAnalyzer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// AnalyzeATS scores how an applicant tracking system would read the résumé.
func (a *Analyzer) AnalyzeATS(ctx context.Context, r *resume.Processed) (*ai.ATSResult, error) {
	if r == nil {
		return nil, errors.New("resume is required")
	}

	var result ai.ATSResult
	if err := a.run(ctx, promptATS, r, nil, &result); err != nil {
		return nil, fmt.Errorf("ats analysis: %w", err)
	}

	clampScores(&result.KeywordMatch, &result.Relevance, &result.Formatting, &result.Overall)
	result.Suggestions = nonNilStrings(result.Suggestions)
	return &result, nil
}

// AnalyzeHuman scores the résumé from a recruiter's point of view.
func (a *Analyzer) AnalyzeHuman(ctx context.Context, r *resume.Processed) (*ai.HumanResult, error) {
	if r == nil {
		return nil, errors.New("resume is required")
	}

	var result ai.HumanResult
	if err := a.run(ctx, promptHuman, r, nil, &result); err != nil {
		return nil, fmt.Errorf("human readability analysis: %w", err)
	}

	clampScores(&result.Clarity, &result.Impact, &result.Layout, &result.Overall)
	result.Suggestions = nonNilStrings(result.Suggestions)
	return &result, nil
}

// AnalyzeInterview lists likely failure points per interview stage.
func (a *Analyzer) AnalyzeInterview(ctx context.Context, r *resume.Processed, ic ai.InterviewContext) (*ai.InterviewResult, error) {
	if r == nil {
		return nil, errors.New("resume is required")
	}

	vars := map[string]string{"{{CANDIDATE_NOTES}}": candidateNotes(ic)}

	var result ai.InterviewResult
	if err := a.run(ctx, promptInterview, r, vars, &result); err != nil {
		return nil, fmt.Errorf("interview analysis: %w", err)
	}

	result.Screening = nonNilFailures(result.Screening)
	result.Technical = nonNilFailures(result.Technical)
	result.Behavioral = nonNilFailures(result.Behavioral)
	return &result, nil
}

// CheckReality compares the résumé against the target level and returns a verdict.
func (a *Analyzer) CheckReality(ctx context.Context, r *resume.Processed, target resume.Level) (*ai.RealityCheck, error) {
	if r == nil {
		return nil, errors.New("resume is required")
	}

	vars := map[string]string{"{{TARGET_LEVEL}}": target.Label()}

	var result ai.RealityCheck
	if err := a.run(ctx, promptReality, r, vars, &result); err != nil {
		return nil, fmt.Errorf("reality check: %w", err)
	}

	verdict, err := normalizeVerdict(result.Verdict)
	if err != nil {
		return nil, fmt.Errorf("reality check: %w", err)
	}
	result.Verdict = verdict
	result.InferredLevel = strings.TrimSpace(result.InferredLevel)
	result.NextSteps = nonNilStrings(result.NextSteps)
	return &result, nil
}

func (a *Analyzer) run(ctx context.Context, kind string, r *resume.Processed, vars map[string]string, target any) error {
	if a.generator == nil {
		return errors.New("content generator is not configured")
	}

	prompt, err := buildPrompt(kind, r, vars)
	if err != nil {
		return err
	}

	a.logger.Debug("gemini generate content request",
		zap.String("analysis", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return err
	}

	a.logger.Debug("gemini generate content response",
		zap.String("analysis", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return decodeResponse(raw, target)
}

func buildPrompt(kind string, r *resume.Processed, vars map[string]string) (string, error) {
	data, err := promptFS.ReadFile("prompts/" + kind + ".md")
	if err != nil {
		return "", fmt.Errorf("load %s prompt: %w", kind, err)
	}

	pairs := []string{
		"{{RESUME}}", strings.TrimSpace(r.FullText),
		"{{SIGNALS}}", signals(r),
	}
	for placeholder, value := range vars {
		pairs = append(pairs, placeholder, value)
	}

	return strings.NewReplacer(pairs...).Replace(string(data)), nil
}

// signals renders the deterministic features as a bullet list for the prompt.
func signals(r *resume.Processed) string {
	skills := "none detected"
	if len(r.Skills) > 0 {
		skills = strings.Join(r.Skills, ", ")
	}

	education := "not detected"
	if r.EducationLevel != resume.EducationUnknown {
		education = string(r.EducationLevel)
	}

	sections := "none detected"
	if names := r.Sections.Names(); len(names) > 0 {
		sections = strings.Join(names, ", ")
	}

	impact := "no"
	if r.HasQuantifiedImpact {
		impact = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Estimated years of experience: %d\n", r.YearsOfExperience)
	fmt.Fprintf(&b, "- Inferred level: %s\n", r.CandidateLevel.Label())
	fmt.Fprintf(&b, "- Skills: %s\n", skills)
	fmt.Fprintf(&b, "- Education: %s\n", education)
	fmt.Fprintf(&b, "- Sections: %s\n", sections)
	fmt.Fprintf(&b, "- Bullet points: %d\n", len(r.BulletPoints))
	fmt.Fprintf(&b, "- Quantified impact: %s", impact)
	return b.String()
}

func candidateNotes(ic ai.InterviewContext) string {
	role := sanitizeNote(ic.JobRole)
	feedback := sanitizeNote(ic.Feedback)
	if role == "" && feedback == "" {
		return "none provided"
	}

	var lines []string
	if role != "" {
		lines = append(lines, "- Target role: "+role)
	}
	if feedback != "" {
		lines = append(lines, "- Previous interview feedback: "+feedback)
	}
	return strings.Join(lines, "\n")
}

// sanitizeNote flattens user input to one line so it cannot open new prompt
// sections, and caps its length.
func sanitizeNote(s string) string {
	s = strings.NewReplacer("{{", "(", "}}", ")", "[", "(", "]", ")", "---", "-").Replace(s)
	s = strings.Join(strings.Fields(s), " ")

	if utf8.RuneCountInString(s) > maxNoteRunes {
		s = strings.TrimSpace(string([]rune(s)[:maxNoteRunes])) + "..."
	}
	return s
}

func normalizeVerdict(v ai.Verdict) (ai.Verdict, error) {
	key := strings.ToLower(strings.Join(strings.FieldsFunc(string(v), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), " "))

	switch key {
	case "ready":
		return ai.VerdictReady, nil
	case "stretching", "stretch":
		return ai.VerdictStretching, nil
	case "not ready", "notready":
		return ai.VerdictNotReady, nil
	default:
		return "", fmt.Errorf("unexpected verdict %q", v)
	}
}

func clampScores(components ...*ai.ScoreComponent) {
	for _, c := range components {
		switch {
		case math.IsNaN(c.Score):
			c.Score = 0
		case c.Score < 0:
			c.Score = 0
		case c.Score > 100:
			c.Score = 100
		}
		c.Explanation = strings.TrimSpace(c.Explanation)
	}
}

func nonNilStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNilFailures(in []ai.FailurePoint) []ai.FailurePoint {
	if in == nil {
		return []ai.FailurePoint{}
	}
	return in
}
