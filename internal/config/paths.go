/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.fitcoach).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fitcoach"), nil
}

// GetDataDir returns the directory holding persisted state.
// Resolution order (first match wins):
// 1. Explicit config via "dataDir" (flag/config file/env)
// 2. XDG_DATA_HOME/fitcoach (if XDG_DATA_HOME is set)
// 3. ~/.fitcoach/data
func GetDataDir() string {
	if path := viper.GetString("dataDir"); path != "" {
		return path
	}
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "fitcoach")
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(dir, "data")
}

// GetPoliciesDir returns the operator policy directory: plan.policiesDir, else <dataDir>/policies.
func GetPoliciesDir(dataDir string) string {
	if dir := viper.GetString("plan.policiesDir"); dir != "" {
		return dir
	}
	return filepath.Join(dataDir, "policies")
}

// GetTemplatesDir returns the prompt override directory: plan.templatesDir, else <dataDir>/prompts.
func GetTemplatesDir(dataDir string) string {
	if dir := viper.GetString("plan.templatesDir"); dir != "" {
		return dir
	}
	return filepath.Join(dataDir, "prompts")
}
