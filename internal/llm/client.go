/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package llm provides the plan generation client: provider selection,
// per-model text generation and the ordered model fallback caller.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/josephgoksu/fitcoach/types"
)

// Provider identifies the LLM provider to use.
type Provider string

// Config holds configuration for creating a generation client.
type Config struct {
	Provider    Provider
	Models      []string // Fallback chain, tried in order
	APIKey      string   // Required for every provider except Ollama
	BaseURL     string   // Optional endpoint override
	Temperature float64
	Timeout     time.Duration // Per-call transport timeout; 0 means none
}

// Generator produces freeform text for a prompt with one model identifier.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, model, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f(ctx, model, prompt)
}

// NewGenerator creates the Generator for the configured provider.
// The credential is checked first so a misconfiguration never reaches the network.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	if err := CheckCredential(cfg); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiGenerator(ctx, cfg)
	case ProviderOpenAI, ProviderOllama, ProviderAnthropic:
		return NewEinoGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: gemini, openai, ollama, anthropic)", cfg.Provider)
	}
}

// NewChatModel creates an Eino ChatModel for a single model identifier.
// It backs the non-Gemini providers.
func NewChatModel(ctx context.Context, cfg Config, modelID string) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		oc := &openai.ChatModelConfig{
			Model:   modelID,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}
		if cfg.Temperature > 0 {
			t := float32(cfg.Temperature)
			oc.Temperature = &t
		}
		return openai.NewChatModel(ctx, oc)

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   modelID,
			Timeout: cfg.Timeout,
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is required")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     modelID,
			MaxTokens: DefaultAnthropicMaxTokens,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderGemini:
		return ProviderGemini, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderOllama:
		return ProviderOllama, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", p)
	}
}

// RequiresAPIKey reports whether the provider needs a credential.
func RequiresAPIKey(p Provider) bool {
	return p != ProviderOllama
}

// IsPlaceholderKey reports whether key is empty or a sample value.
func IsPlaceholderKey(key string) bool {
	k := strings.TrimSpace(key)
	if k == "" {
		return true
	}
	for _, p := range placeholderAPIKeys {
		if strings.EqualFold(k, p) {
			return true
		}
	}
	return false
}

// CheckCredential fails with a configuration error when a required
// credential is missing or still a placeholder.
func CheckCredential(cfg Config) error {
	if !RequiresAPIKey(cfg.Provider) {
		return nil
	}
	if IsPlaceholderKey(cfg.APIKey) {
		return types.NewPipelineError(types.KindConfiguration,
			fmt.Sprintf("please configure your %s API key (set it in .env or %s)", cfg.Provider, apiKeyHint(cfg.Provider)), nil)
	}
	return nil
}

func apiKeyHint(p Provider) string {
	switch p {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "llm.apiKey"
	}
}
