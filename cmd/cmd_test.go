package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/document"
	"github.com/ShreyanshSharma123/interviewHelper/internal/server"
)

func TestDecodeConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	config, err := decodeConfig(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Port != server.DefaultPort {
		t.Fatalf("expected default port, got %d", config.Server.Port)
	}
	if config.Server.MaxUploadBytes != document.DefaultMaxBytes {
		t.Fatalf("expected default upload limit, got %d", config.Server.MaxUploadBytes)
	}
	if config.AI.Gemini.Model != "gemini-2.5-flash" || config.AI.Gemini.MaxRetries != 2 {
		t.Fatalf("unexpected gemini defaults: %+v", config.AI.Gemini)
	}
}

func TestDecodeConfigEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_API_KEY_FILE", "/run/secrets/gemini")

	v := viper.New()
	if err := bindEnv(v); err != nil {
		t.Fatalf("bind env: %v", err)
	}
	setDefaults(v)

	config, err := decodeConfig(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Port != 8081 {
		t.Fatalf("expected port from env, got %d", config.Server.Port)
	}
	if config.AI.Gemini.APIKeyFile != "/run/secrets/gemini" {
		t.Fatalf("expected key file from env, got %q", config.AI.Gemini.APIKeyFile)
	}
}

func TestDecodeConfigEmpty(t *testing.T) {
	config, err := decodeConfig(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AI == nil || config.AI.Gemini == nil {
		t.Fatalf("expected nested config to be initialized")
	}
}

func TestRequestFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		expect  analysis.Request
		wantErr error
	}{
		{
			name:   "ats",
			args:   []string{"--type", "ATS"},
			expect: analysis.Request{Type: analysis.TypeATS},
		},
		{
			name:   "reality with level",
			args:   []string{"-t", "reality", "-l", "mid"},
			expect: analysis.Request{Type: analysis.TypeReality, TargetLevel: "mid"},
		},
		{
			name:   "interview with context",
			args:   []string{"-t", "interview", "--job-role", " SRE ", "--feedback", "needs depth"},
			expect: analysis.Request{Type: analysis.TypeInterview, JobRole: "SRE", Feedback: "needs depth"},
		},
		{
			name:    "invalid level",
			args:    []string{"-t", "reality", "-l", "cto"},
			wantErr: analysis.ErrTargetLevel,
		},
		{
			name:    "missing type without terminal",
			args:    nil,
			wantErr: errNotInteractive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{Use: "analyze"}
			addAnalyzeFlags(c)
			if err := c.Flags().Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			req, err := requestFromFlags(c)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req != tt.expect {
				t.Fatalf("expected %+v, got %+v", tt.expect, req)
			}
		})
	}
}
