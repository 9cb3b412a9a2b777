package logger

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ShreyanshSharma123/interviewHelper/internal/resume"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  Gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "provider" || fields[0].String != "Gemini" {
		t.Fatalf("unexpected provider field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithFields(logger, zap.String("foo", "bar")).Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if ctx := entries[0].ContextMap(); ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched := WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	enriched.Info("another log")
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCommonFields(zap.New(core), " gemini ", "gemini-2.5-flash").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" {
		t.Fatalf("expected provider field to be gemini, got %q", ctx[FieldProvider])
	}
	if ctx[FieldModel] != "gemini-2.5-flash" {
		t.Fatalf("unexpected model field: %q", ctx[FieldModel])
	}

	if empty := CommonFields("", ""); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestRequestFields(t *testing.T) {
	fields := RequestFields("req-1", "")
	if len(fields) != 1 || fields[0].Key != FieldRequestID || fields[0].String != "req-1" {
		t.Fatalf("unexpected fields: %+v", fields)
	}

	if fields := RequestFields("req-1", "ats"); len(fields) != 2 || fields[1].Key != FieldAnalysisType {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestResumeFields(t *testing.T) {
	if fields := ResumeFields(nil); fields != nil {
		t.Fatalf("expected nil fields for nil resume, got %+v", fields)
	}

	core, observed := observer.New(zapcore.InfoLevel)
	processed := resume.ExtractAt("Skills\n- Go, Docker\nClass of 2020", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	zap.New(core).Info("extracted", ResumeFields(processed)...)

	ctx := observed.All()[0].ContextMap()
	if ctx["skills"] != int64(2) {
		t.Fatalf("expected 2 skills, got %v", ctx["skills"])
	}
	if ctx["years_of_experience"] != int64(5) {
		t.Fatalf("expected 5 years, got %v", ctx["years_of_experience"])
	}
	if ctx["education"] != "unknown" {
		t.Fatalf("expected unknown education, got %v", ctx["education"])
	}
	if ctx["quantified_impact"] != false {
		t.Fatalf("expected no quantified impact, got %v", ctx["quantified_impact"])
	}
}
