package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	mu    sync.Mutex
	calls []modelCallRecord
	queue []fakeModelResponse
}

type modelCallRecord struct {
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

type fakeModelResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) enqueue(resp *genai.GenerateContentResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, fakeModelResponse{resp: resp, err: err})
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var prompt string
	for _, content := range contents {
		for _, part := range content.Parts {
			prompt += part.Text
		}
	}
	f.calls = append(f.calls, modelCallRecord{model: model, prompt: prompt, config: config})

	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func newTestGenerator(models modelsAPI, maxRetries int) *Generator {
	g := newGenerator(models, GeneratorConfig{Model: "gemini-test", MaxRetries: maxRetries}, zap.NewNop())
	g.backoff = time.Millisecond
	return g
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"})
	models.enqueue(textResponse("retry ok"), nil)

	g := newTestGenerator(models, 2)

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}

	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}

	for _, call := range models.calls {
		if call.model != "gemini-test" {
			t.Fatalf("unexpected model: %q", call.model)
		}
		if call.prompt != "prompt" {
			t.Fatalf("unexpected prompt: %q", call.prompt)
		}
		if call.config == nil || call.config.ResponseMIMEType != "application/json" {
			t.Fatalf("expected json response mime type, got %+v", call.config)
		}
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	models := &fakeModels{}
	tempErr := genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	models.enqueue(nil, tempErr)
	models.enqueue(nil, tempErr)
	models.enqueue(nil, tempErr)

	g := newTestGenerator(models, 2)

	_, err := g.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}

	if len(models.calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(models.calls))
	}
}

func TestGeneratorDoesNotRetryClientErrors(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"})

	g := newTestGenerator(models, 3)

	_, err := g.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for invalid request")
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected single call, got %d", len(models.calls))
	}
}

func TestGeneratorRetriesRateLimit(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"})
	models.enqueue(textResponse("ok"), nil)

	g := newTestGenerator(models, 1)

	if _, err := g.GenerateContent(context.Background(), "prompt"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}
}

func TestGeneratorStopsOnCanceledContext(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusInternalServerError})

	g := newTestGenerator(models, 3)
	g.backoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := g.GenerateContent(ctx, "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(models.calls) != 1 {
		t.Fatalf("expected single call, got %d", len(models.calls))
	}
}

func TestGeneratorJoinsTextParts(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse(" {\"a\":", "", "1} "), nil)

	g := newTestGenerator(models, 0)

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "{\"a\":\n1}" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestGeneratorRejectsEmptyInputAndOutput(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse("   "), nil)

	g := newTestGenerator(models, 0)

	if _, err := g.GenerateContent(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if len(models.calls) != 0 {
		t.Fatalf("empty prompt must not reach the api, got %d calls", len(models.calls))
	}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	t.Parallel()

	g := newGenerator(&fakeModels{}, GeneratorConfig{MaxRetries: -1}, nil)

	if g.Model() != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, g.Model())
	}
	if g.maxRetries != 0 {
		t.Fatalf("expected negative retries to clamp to 0, got %d", g.maxRetries)
	}
	if got := *g.config.Temperature; got != defaultTemperature {
		t.Fatalf("expected default temperature, got %v", got)
	}
	if g.config.MaxOutputTokens != defaultMaxOutput {
		t.Fatalf("unexpected max output tokens: %d", g.config.MaxOutputTokens)
	}
	if len(g.config.SafetySettings) != 4 {
		t.Fatalf("expected 4 safety settings, got %d", len(g.config.SafetySettings))
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator(context.Background(), " ", GeneratorConfig{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
