/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package prompts

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLoaderGet(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/tpl/plan_prompt.txt", []byte("You are a friendly marathon coach.\n"), 0o644)
	_ = afero.WriteFile(fs, "/tpl/image_prompt.txt", []byte("no placeholder here"), 0o644)

	tests := []struct {
		name      string
		dir       string
		promptKey PromptKey
		wantError bool
		want      string
	}{
		{
			name:      "override present",
			dir:       "/tpl",
			promptKey: KeyPlanPreamble,
			want:      "You are a friendly marathon coach.",
		},
		{
			name:      "override missing falls back to default",
			dir:       "/tpl",
			promptKey: KeyPlanInstructions,
			want:      PlanInstructions,
		},
		{
			name:      "invalid image override is ignored",
			dir:       "/tpl",
			promptKey: KeyImagePrompt,
			want:      ImagePromptTemplate,
		},
		{
			name:      "empty dir uses default",
			dir:       "",
			promptKey: KeyPlanPreamble,
			want:      PlanPreamble,
		},
		{
			name:      "unknown key",
			dir:       "/tpl",
			promptKey: PromptKey("Nope"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLoader(fs, tt.dir).Get(tt.promptKey)
			if (err != nil) != tt.wantError {
				t.Fatalf("Get() error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError && got != tt.want {
				t.Errorf("Get(%v) = %q, want %q", tt.promptKey, got, tt.want)
			}
		})
	}
}

func TestPlanBuilder_UsesOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/tpl/plan_prompt.txt", []byte("Custom opening."), 0o644)

	prompt, err := NewPlanBuilder(NewLoader(fs, "/tpl")).Plan(anaProfile())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if !strings.HasPrefix(prompt, "Custom opening.") {
		t.Errorf("prompt does not start with override: %q", prompt[:40])
	}
	if !strings.Contains(prompt, `"workoutPlan"`) {
		t.Error("JSON shape must always be appended")
	}
}
