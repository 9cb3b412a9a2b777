// Package ai defines the AI-generated career feedback returned to the presentation
// panels and the Analyzer contract implemented by LLM providers.
package ai

import (
	"context"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

// ScoreComponent is a 0-100 score with the model's reasoning.
type ScoreComponent struct {
	Score       float64 `json:"score" mapstructure:"score"`
	Explanation string  `json:"explanation" mapstructure:"explanation"`
}

// ATSResult scores how well an applicant tracking system would parse and rank the résumé.
type ATSResult struct {
	KeywordMatch ScoreComponent `json:"keywordMatch" mapstructure:"keywordMatch"`
	Relevance    ScoreComponent `json:"relevance" mapstructure:"relevance"`
	Formatting   ScoreComponent `json:"formatting" mapstructure:"formatting"`
	Overall      ScoreComponent `json:"overall" mapstructure:"overall"`
	Suggestions  []string       `json:"suggestions" mapstructure:"suggestions"`
}

// HumanResult scores the résumé from the point of view of a recruiter skimming it.
type HumanResult struct {
	Clarity     ScoreComponent `json:"clarity" mapstructure:"clarity"`
	Impact      ScoreComponent `json:"impact" mapstructure:"impact"`
	Layout      ScoreComponent `json:"layout" mapstructure:"layout"`
	Overall     ScoreComponent `json:"overall" mapstructure:"overall"`
	Suggestions []string       `json:"suggestions" mapstructure:"suggestions"`
}

// ATSHumanResult combines both perspectives with the conflicts between them.
type ATSHumanResult struct {
	ATS       *ATSResult   `json:"ats"`
	Human     *HumanResult `json:"human"`
	Conflicts []string     `json:"conflicts"`
}

// FailurePoint is a likely reason for failing an interview stage and how to avoid it.
type FailurePoint struct {
	Reason string `json:"reason" mapstructure:"reason"`
	Advice string `json:"advice" mapstructure:"advice"`
}

// InterviewResult lists failure points per interview stage.
type InterviewResult struct {
	Screening  []FailurePoint `json:"screening" mapstructure:"screening"`
	Technical  []FailurePoint `json:"technical" mapstructure:"technical"`
	Behavioral []FailurePoint `json:"behavioral" mapstructure:"behavioral"`
}

// Verdict is the readiness outcome of a reality check.
type Verdict string

const (
	VerdictReady      Verdict = "Ready"
	VerdictStretching Verdict = "Stretching"
	VerdictNotReady   Verdict = "Not Ready"
)

// RealityCheck compares the candidate's inferred level with the level they target.
type RealityCheck struct {
	InferredLevel string   `json:"inferredLevel" mapstructure:"inferredLevel"`
	Verdict       Verdict  `json:"verdict" mapstructure:"verdict"`
	Explanation   string   `json:"explanation" mapstructure:"explanation"`
	NextSteps     []string `json:"nextSteps" mapstructure:"nextSteps"`
}

// InterviewContext carries optional candidate input for the interview analysis.
type InterviewContext struct {
	JobRole  string
	Feedback string
}

// Analyzer produces feedback for an extracted résumé.
type Analyzer interface {
	AnalyzeATS(ctx context.Context, r *resume.Processed) (*ATSResult, error)
	AnalyzeHuman(ctx context.Context, r *resume.Processed) (*HumanResult, error)
	AnalyzeInterview(ctx context.Context, r *resume.Processed, ic InterviewContext) (*InterviewResult, error)
	CheckReality(ctx context.Context, r *resume.Processed, target resume.Level) (*RealityCheck, error)
}
