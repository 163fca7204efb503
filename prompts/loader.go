/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package prompts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyPlanPreamble is the key for the opening instruction of the plan prompt.
	KeyPlanPreamble PromptKey = "PlanPreamble"
	// KeyPlanInstructions is the key for the closing instruction of the plan prompt.
	KeyPlanInstructions PromptKey = "PlanInstructions"
	// KeyImagePrompt is the key for the image prompt template. It must contain one %s.
	KeyImagePrompt PromptKey = "ImagePrompt"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyPlanPreamble: {
		defaultContent: PlanPreamble,
		filename:       "plan_prompt.txt",
	},
	KeyPlanInstructions: {
		defaultContent: PlanInstructions,
		filename:       "plan_instructions.txt",
	},
	KeyImagePrompt: {
		defaultContent: ImagePromptTemplate,
		filename:       "image_prompt.txt",
	},
}

// Loader resolves prompts, preferring files in a templates directory.
type Loader struct {
	fs  afero.Fs
	dir string
}

// NewLoader creates a Loader reading overrides from dir on fs.
// An empty dir disables overrides.
func NewLoader(fs afero.Fs, dir string) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, dir: strings.TrimSpace(dir)}
}

// Get returns the override file content for key if it exists, otherwise the default.
func (l *Loader) Get(key PromptKey) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if l == nil || l.dir == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(l.dir, config.filename)
	content, err := afero.ReadFile(l.fs, customPromptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.defaultContent, nil
		}
		return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, err)
	}

	custom := strings.TrimSpace(string(content))
	if custom == "" {
		return config.defaultContent, nil
	}
	if key == KeyImagePrompt && strings.Count(custom, "%s") != 1 {
		slog.Warn("ignoring image prompt override without exactly one %s", "path", customPromptPath)
		return config.defaultContent, nil
	}
	slog.Debug("using custom prompt", "key", string(key), "path", customPromptPath)
	return custom, nil
}

// GetPrompt resolves key against templatesDir on the OS filesystem.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	return NewLoader(afero.NewOsFs(), templatesDir).Get(key)
}
