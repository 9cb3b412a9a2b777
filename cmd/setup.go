package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/ai"
	"github.com/ShreyanshSharma123/interviewHelper/internal/ai/gemini"
	"github.com/ShreyanshSharma123/interviewHelper/internal/document"
	"github.com/ShreyanshSharma123/interviewHelper/internal/logger"
	"github.com/ShreyanshSharma123/interviewHelper/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// setup builds the logger and loads the configuration shared by all commands.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	return l, config
}

func newLoader(config *Config) *document.Loader {
	return document.NewLoader(document.WithMaxBytes(config.Server.MaxUploadBytes))
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (or set ai.gemini.api-key-file / GEMINI_API_KEY_FILE)", err)
	}

	aiLogger := logger.WithCommonFields(l, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, gemini.GeneratorConfig{
		Model:       cfg.Gemini.Model,
		MaxRetries:  cfg.Gemini.MaxRetries,
		Temperature: cfg.Gemini.Temperature,
	}, aiLogger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries)))
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, aiLogger, cfg.Gemini.MaxLogLength), nil
}

// loadFile reads a résumé from disk and returns its text.
func loadFile(ctx context.Context, loader *document.Loader, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	limit := loader.MaxBytes()
	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return loader.Load(ctx, content, filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
