package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

// Type names an analysis.
type Type string

const (
	TypeATS       Type = "ats"
	TypeInterview Type = "interview"
	TypeReality   Type = "reality"
)

// Types lists the analysis types in display order.
func Types() []Type {
	return []Type{TypeATS, TypeInterview, TypeReality}
}

// Request carries the form fields of an analysis request.
type Request struct {
	Type        Type   `json:"analysisType" form:"analysisType" validate:"required,oneof=ats interview reality"`
	TargetLevel string `json:"targetLevel,omitempty" form:"targetLevel" validate:"omitempty,oneof=entry mid senior"`
	JobRole     string `json:"jobRole,omitempty" form:"jobRole" validate:"max=200"`
	Feedback    string `json:"feedback,omitempty" form:"feedback" validate:"max=4000"`
}

var validate = validator.New()

// Normalize trims the fields and lowercases the enumerations.
func (r Request) Normalize() Request {
	r.Type = Type(strings.ToLower(strings.TrimSpace(string(r.Type))))
	r.TargetLevel = strings.ToLower(strings.TrimSpace(r.TargetLevel))
	r.JobRole = strings.TrimSpace(r.JobRole)
	r.Feedback = strings.TrimSpace(r.Feedback)
	return r
}

// Validate checks the field values. A target level is only required by the reality check.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Type":
			return ErrUnknownType
		case "TargetLevel":
			return ErrTargetLevel
		}
	}

	fe := fieldErrs[0]
	return fmt.Errorf("invalid %s: failed %q (limit %s)", fe.Field(), fe.Tag(), fe.Param())
}

// Level returns the parsed target level.
func (r Request) Level() (resume.Level, error) {
	level, err := resume.ParseLevel(r.TargetLevel)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTargetLevel, err)
	}
	return level, nil
}
