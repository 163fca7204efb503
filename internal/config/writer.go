/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/josephgoksu/fitcoach/internal/llm"
)

// GlobalConfigFile is the file name inside the global config directory.
const GlobalConfigFile = "config.yaml"

// SaveGlobalLLMConfig saves the provider, model chain and API key to the global
// config file, keeping every other key already present.
func SaveGlobalLLMConfig(provider string, models []string, key string) (string, error) {
	if provider == "" {
		return "", fmt.Errorf("provider cannot be empty")
	}
	if _, err := llm.ValidateProvider(provider); err != nil {
		return "", err
	}

	configDir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(configDir, GlobalConfigFile)

	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	llmSection := childMap(doc, "llm")
	llmSection["provider"] = provider
	if len(models) > 0 {
		llmSection["models"] = models
	}
	if key != "" {
		childMap(llmSection, "apiKeys")[provider] = key
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	content := append([]byte("# FitCoach Global Configuration\n"), out...)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", err
	}
	return path, nil
}

// childMap returns parent[key] as a map, replacing any non-map value.
func childMap(parent map[string]any, key string) map[string]any {
	if m, ok := parent[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	parent[key] = m
	return m
}
