package analysis

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShreyanshSharma123/interviewHelper/internal/ai"
	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

var errNoAnalyzer = errors.New("ai analyzer is not configured")

type atsAnalysis struct{}

// NewATS creates the combined ATS and recruiter readability analysis.
func NewATS() Analysis {
	return &atsAnalysis{}
}

func (a *atsAnalysis) Name() Type { return TypeATS }

func (a *atsAnalysis) Validate(Request) error { return nil }

// Run scores ATS compatibility and human readability concurrently, then reports
// where the two perspectives pull in different directions.
func (a *atsAnalysis) Run(ctx context.Context, deps Deps, r *resume.Processed, _ Request) (any, error) {
	if deps.Analyzer == nil {
		return nil, errNoAnalyzer
	}

	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu          sync.Mutex
		atsResult   *ai.ATSResult
		humanResult *ai.HumanResult
	)

	g.Go(func() error {
		result, err := deps.Analyzer.AnalyzeATS(gCtx, r)
		if err != nil {
			return err
		}
		mu.Lock()
		atsResult = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		result, err := deps.Analyzer.AnalyzeHuman(gCtx, r)
		if err != nil {
			return err
		}
		mu.Lock()
		humanResult = result
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	conflicts := DetectConflicts(r, atsResult.Overall.Score, humanResult.Overall.Score)

	if deps.Logger != nil {
		deps.Logger.Debug("ats and human scores",
			zap.Float64("ats_overall", atsResult.Overall.Score),
			zap.Float64("human_overall", humanResult.Overall.Score),
			zap.Int("conflicts", len(conflicts)),
		)
	}

	return &ai.ATSHumanResult{ATS: atsResult, Human: humanResult, Conflicts: conflicts}, nil
}

type interviewAnalysis struct{}

// NewInterview creates the interview failure-point analysis.
func NewInterview() Analysis {
	return &interviewAnalysis{}
}

func (a *interviewAnalysis) Name() Type { return TypeInterview }

func (a *interviewAnalysis) Validate(Request) error { return nil }

func (a *interviewAnalysis) Run(ctx context.Context, deps Deps, r *resume.Processed, req Request) (any, error) {
	if deps.Analyzer == nil {
		return nil, errNoAnalyzer
	}

	return deps.Analyzer.AnalyzeInterview(ctx, r, ai.InterviewContext{
		JobRole:  req.JobRole,
		Feedback: req.Feedback,
	})
}

type realityAnalysis struct{}

// NewReality creates the reality check against a target level.
func NewReality() Analysis {
	return &realityAnalysis{}
}

func (a *realityAnalysis) Name() Type { return TypeReality }

func (a *realityAnalysis) Validate(req Request) error {
	_, err := req.Level()
	return err
}

func (a *realityAnalysis) Run(ctx context.Context, deps Deps, r *resume.Processed, req Request) (any, error) {
	if deps.Analyzer == nil {
		return nil, errNoAnalyzer
	}

	target, err := req.Level()
	if err != nil {
		return nil, err
	}

	check, err := deps.Analyzer.CheckReality(ctx, r, target)
	if err != nil {
		return nil, err
	}

	if deps.Logger != nil {
		deps.Logger.Debug("reality check verdict",
			zap.String("target_level", string(target)),
			zap.String("candidate_level", string(r.CandidateLevel)),
			zap.String("verdict", string(check.Verdict)),
		)
	}

	return check, nil
}
