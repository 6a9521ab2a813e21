package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// ErrNotConfigured signals that no generation credential was provided.
// The pipeline treats it as "skip generation and use the fallback".
var ErrNotConfigured = errors.New("generation provider not configured")

// Generator produces raw model output for a prompt. ForceJSON asks the
// provider to constrain its output to machine-parseable JSON.
type Generator interface {
	Generate(ctx context.Context, prompt string, forceJSON bool) (string, error)
}

// GeminiClient wraps the Google GenAI API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a Gemini-backed generator. An empty API key returns
// a client whose Generate always reports ErrNotConfigured rather than an
// error at construction.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if apiKey == "" {
		return &GeminiClient{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Generate calls the model once and returns its text output.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, forceJSON bool) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.3),
		MaxOutputTokens: 2048,
	}
	if forceJSON {
		cfg.ResponseMIMEType = "application/json"
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned empty output")
	}
	return text, nil
}
