/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import "sort"

// Model represents a model definition used to build fallback chains.
type Model struct {
	ID         string // Model identifier sent upstream (e.g., "gemini-2.5-flash")
	Provider   string // Provider display name (e.g., "Google")
	ProviderID string // Internal provider ID (e.g., "gemini")
	Priority   int    // Position in the provider's fallback chain, lower is tried first
	Note       string // Short human description shown by `fitcoach config models`
}

// ModelRegistry is the single source of truth for the default fallback chains.
// Gemini identifiers are ordered by preference, not alphabetically.
var ModelRegistry = []Model{
	// Google Gemini
	{ID: "gemini-2.5-flash", Provider: "Google", ProviderID: ProviderGemini, Priority: 1, Note: "stable, good balance of speed and quality"},
	{ID: "gemini-2.0-flash", Provider: "Google", ProviderID: ProviderGemini, Priority: 2, Note: "fast and versatile"},
	{ID: "gemini-flash-latest", Provider: "Google", ProviderID: ProviderGemini, Priority: 3, Note: "latest flash model"},
	{ID: "gemini-2.5-pro", Provider: "Google", ProviderID: ProviderGemini, Priority: 4, Note: "high quality for complex tasks"},
	{ID: "gemini-pro-latest", Provider: "Google", ProviderID: ProviderGemini, Priority: 5, Note: "latest pro model"},

	// OpenAI
	{ID: "gpt-4o-mini", Provider: "OpenAI", ProviderID: ProviderOpenAI, Priority: 1},
	{ID: "gpt-4o", Provider: "OpenAI", ProviderID: ProviderOpenAI, Priority: 2},

	// Anthropic
	{ID: "claude-3-5-sonnet-latest", Provider: "Anthropic", ProviderID: ProviderAnthropic, Priority: 1},
	{ID: "claude-3-5-haiku-latest", Provider: "Anthropic", ProviderID: ProviderAnthropic, Priority: 2},

	// Ollama (local)
	{ID: "llama3.2", Provider: "Ollama", ProviderID: ProviderOllama, Priority: 1},
}

// GetModelsForProvider returns the registry entries of a provider in chain order.
func GetModelsForProvider(providerID string) []Model {
	var out []Model
	for _, m := range ModelRegistry {
		if m.ProviderID == providerID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// GetFallbackChain returns the model IDs of a provider in chain order.
func GetFallbackChain(providerID string) []string {
	models := GetModelsForProvider(providerID)
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids
}
