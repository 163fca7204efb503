/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/josephgoksu/fitcoach/internal/llm"
)

// LoadLLMConfig loads LLM configuration from Viper and Environment variables.
// It handles precedence: Explicit Viper Config > Environment Variables > Defaults.
// It does NOT handle interactive prompts (that belongs in the CLI layer).
func LoadLLMConfig() (llm.Config, error) {
	// 1. Provider
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	// 2. Model chain. A single llm.model is accepted as a one-element chain.
	models := viper.GetStringSlice("llm.models")
	if len(models) == 0 {
		if single := strings.TrimSpace(viper.GetString("llm.model")); single != "" {
			models = []string{single}
		}
	}
	if len(models) == 0 {
		models = llm.DefaultModelsForProvider(string(llmProvider))
	}

	// 3. API Key. Missing keys are reported at call time.
	apiKey := ResolveAPIKey(llmProvider)

	// 4. Base URL (Ollama or Custom)
	baseURL := viper.GetString("llm.baseURL")
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	var timeout time.Duration
	if secs := viper.GetInt("llm.requestTimeoutSeconds"); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	return llm.Config{
		Provider:    llmProvider,
		Models:      models,
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Temperature: viper.GetFloat64("llm.temperature"),
		Timeout:     timeout,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, the shared llm.apiKey, then provider env vars.
func ResolveAPIKey(provider llm.Provider) string {
	keyFromViper := func(path string) string {
		if viper.IsSet(path) {
			return strings.TrimSpace(viper.GetString(path))
		}
		return ""
	}

	// 1) Per-provider config key (llm.apiKeys.<provider>)
	if key := keyFromViper(fmt.Sprintf("llm.apiKeys.%s", provider)); key != "" {
		return key
	}
	// 2) Shared key (llm.apiKey / FITCOACH_LLM_APIKEY)
	if key := keyFromViper("llm.apiKey"); key != "" {
		return key
	}
	// 3) Provider-specific env vars
	return providerEnvKey(provider)
}

// geminiEnvKeys are checked in order; the last one is the variable name used by the web app.
var geminiEnvKeys = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "NEXT_PUBLIC_GEMINI_API_KEY"}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ProviderGemini:
		for _, name := range geminiEnvKeys {
			if key := strings.TrimSpace(os.Getenv(name)); key != "" {
				return key
			}
		}
		return ""
	default:
		return ""
	}
}

// ResolveNarrationKey returns narration.apiKey or ELEVENLABS_API_KEY.
func ResolveNarrationKey() string {
	if key := strings.TrimSpace(viper.GetString("narration.apiKey")); key != "" {
		return key
	}
	for _, name := range []string{"ELEVENLABS_API_KEY", "NEXT_PUBLIC_ELEVENLABS_API_KEY"} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return ""
}
