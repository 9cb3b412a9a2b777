package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

const (
	FieldProvider     = "ai_provider"
	FieldModel        = "ai_model"
	FieldRequestID    = "request_id"
	FieldAnalysisType = "analysis_type"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields describes the AI provider and model. Empty values are dropped.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, CommonFields(provider, model)...)
}

// RequestFields identifies one analysis request.
func RequestFields(requestID, analysisType string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRequestID, Value: requestID},
		StringField{Key: FieldAnalysisType, Value: analysisType},
	)
}

// ResumeFields summarises extracted résumé features without logging the text itself.
func ResumeFields(r *resume.Processed) []zap.Field {
	if r == nil {
		return nil
	}

	education := string(r.EducationLevel)
	if education == "" {
		education = "unknown"
	}

	return []zap.Field{
		zap.Int("text_length", len(r.FullText)),
		zap.Int("skills", len(r.Skills)),
		zap.Int("years_of_experience", r.YearsOfExperience),
		zap.String("candidate_level", string(r.CandidateLevel)),
		zap.String("education", education),
		zap.Strings("sections", r.Sections.Names()),
		zap.Int("bullet_points", len(r.BulletPoints)),
		zap.Bool("quantified_impact", r.HasQuantifiedImpact),
	}
}
