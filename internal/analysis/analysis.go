// Package analysis dispatches an uploaded résumé to the requested AI analysis.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/ai"
	"github.com/ShreyanshSharma123/interviewHelper/internal/logger"
	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

// MinTextLength is the shortest trimmed document text worth analysing.
const MinTextLength = 20

var (
	ErrUnknownType      = errors.New(`invalid or missing analysisType: must be "ats", "interview" or "reality"`)
	ErrTargetLevel      = errors.New(`invalid or missing targetLevel: must be "entry", "mid" or "senior"`)
	ErrInsufficientText = errors.New("could not extract meaningful text from the uploaded file: ensure it is not image-based or corrupted")
)

// Analysis is a single analysis kind the runner can dispatch to.
type Analysis interface {
	Name() Type
	Validate(req Request) error
	Run(ctx context.Context, deps Deps, r *resume.Processed, req Request) (any, error)
}

// Deps aggregates dependencies shared by all analyses.
type Deps struct {
	Analyzer ai.Analyzer
	Logger   *zap.Logger
}

// Response is the envelope returned to clients.
type Response struct {
	Success      bool `json:"success"`
	AnalysisType Type `json:"analysisType"`
	Data         any  `json:"data"`
}

// Runner validates requests, extracts résumé features and runs the requested analysis.
type Runner struct {
	deps     Deps
	analyses map[Type]Analysis
	now      func() time.Time
}

// Defaults returns every supported analysis.
func Defaults() []Analysis {
	return []Analysis{NewATS(), NewInterview(), NewReality()}
}

// NewRunner creates a runner for the given analyses, or Defaults when none are passed.
func NewRunner(deps Deps, analyses ...Analysis) *Runner {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if len(analyses) == 0 {
		analyses = Defaults()
	}

	byName := make(map[Type]Analysis, len(analyses))
	for _, a := range analyses {
		byName[a.Name()] = a
	}

	return &Runner{deps: deps, analyses: byName, now: time.Now}
}

// WithLogger returns a copy of the runner that logs to l.
func (r *Runner) WithLogger(l *zap.Logger) *Runner {
	cp := *r
	if l != nil {
		cp.deps.Logger = l
	}
	return &cp
}

// Extract checks that the document holds enough text and returns its features.
func (r *Runner) Extract(rawText string) (*resume.Processed, error) {
	if utf8.RuneCountInString(strings.TrimSpace(rawText)) < MinTextLength {
		return nil, ErrInsufficientText
	}

	return resume.ExtractAt(rawText, r.now()), nil
}

// Run executes the analysis named by req over rawText. Request errors wrap
// ErrUnknownType, ErrTargetLevel or ErrInsufficientText.
func (r *Runner) Run(ctx context.Context, req Request, rawText string) (*Response, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	step, ok := r.analyses[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not enabled", ErrUnknownType, req.Type)
	}
	if err := step.Validate(req); err != nil {
		return nil, err
	}

	processed, err := r.Extract(rawText)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(r.deps.Logger, zap.String(logger.FieldAnalysisType, string(req.Type)))
	log.Info("resume extracted", logger.ResumeFields(processed)...)

	started := r.now()
	data, err := step.Run(ctx, Deps{Analyzer: r.deps.Analyzer, Logger: log}, processed, req)
	if err != nil {
		return nil, fmt.Errorf("%s analysis: %w", step.Name(), err)
	}

	log.Info("analysis completed", zap.Duration("elapsed", r.now().Sub(started)))

	return &Response{Success: true, AnalysisType: req.Type, Data: data}, nil
}
