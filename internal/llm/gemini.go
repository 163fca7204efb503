/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiGenerator generates text through the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	temperature float64
}

// NewGenAIClient creates a genai client for the Gemini API backend.
func NewGenAIClient(ctx context.Context, cfg Config) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// NewGeminiGenerator creates a Generator backed by the genai SDK.
func NewGeminiGenerator(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	client, err := NewGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, temperature: cfg.Temperature}, nil
}

// Generate sends prompt to model and returns the concatenated text parts.
func (g *GeminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	var gc *genai.GenerateContentConfig
	if g.temperature > 0 {
		t := float32(g.temperature)
		gc = &genai.GenerateContentConfig{Temperature: &t}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), gc)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("model %s returned an empty response", model)
	}
	return text, nil
}

// Client exposes the underlying genai client for multimodal calls.
func (g *GeminiGenerator) Client() *genai.Client {
	return g.client
}
