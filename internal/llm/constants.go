/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

// Provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = ProviderGemini

	// ProviderGemini represents the Google Gemini provider (genai SDK)
	ProviderGemini = "gemini"

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderOllama represents the Ollama provider
	ProviderOllama = "ollama"

	// ProviderAnthropic represents the Anthropic provider
	ProviderAnthropic = "anthropic"
)

// DefaultOllamaURL is the default URL for Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// DefaultImageModel is the Gemini model used for illustrative images.
const DefaultImageModel = "gemini-2.0-flash-preview-image-generation"

// DefaultAnthropicMaxTokens bounds Claude responses; a full weekly plan fits comfortably.
const DefaultAnthropicMaxTokens = 8192

// placeholderAPIKeys are sample values shipped in env templates.
// A key equal to one of these is treated as not configured.
var placeholderAPIKeys = []string{
	"your_gemini_api_key_here",
	"your_api_key_here",
	"your-api-key",
	"<your-api-key>",
	"changeme",
}

// DefaultModelsForProvider returns the fallback chain for a provider,
// ordered by preference. This is a convenience wrapper around the registry in models.go.
func DefaultModelsForProvider(provider string) []string {
	return GetFallbackChain(provider)
}
