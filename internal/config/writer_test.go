/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
	return dir
}

func readConfig(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return doc
}

func TestSaveGlobalLLMConfig_NewFile(t *testing.T) {
	dir := withConfigDir(t)

	path, err := SaveGlobalLLMConfig("gemini", []string{"gemini-2.5-flash"}, "key:with#chars")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, GlobalConfigFile), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	llmSection := readConfig(t, path)["llm"].(map[string]any)
	assert.Equal(t, "gemini", llmSection["provider"])
	assert.Equal(t, []any{"gemini-2.5-flash"}, llmSection["models"])
	assert.Equal(t, "key:with#chars", llmSection["apiKeys"].(map[string]any)["gemini"])
}

func TestSaveGlobalLLMConfig_PreservesOtherKeys(t *testing.T) {
	dir := withConfigDir(t)
	existing := "server:\n  port: 9090\nllm:\n  provider: openai\n  apiKeys:\n    openai: sk-old\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(existing), 0600))

	path, err := SaveGlobalLLMConfig("gemini", nil, "g-key")
	require.NoError(t, err)

	doc := readConfig(t, path)
	assert.Equal(t, 9090, doc["server"].(map[string]any)["port"])
	keys := doc["llm"].(map[string]any)["apiKeys"].(map[string]any)
	assert.Equal(t, "sk-old", keys["openai"])
	assert.Equal(t, "g-key", keys["gemini"])
	assert.Equal(t, "gemini", doc["llm"].(map[string]any)["provider"])
}

func TestSaveGlobalLLMConfig_Invalid(t *testing.T) {
	withConfigDir(t)
	_, err := SaveGlobalLLMConfig("", nil, "k")
	assert.Error(t, err)
	_, err = SaveGlobalLLMConfig("watson", nil, "k")
	assert.Error(t, err)
}
