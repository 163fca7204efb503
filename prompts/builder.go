/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package prompts

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/fitcoach/models"
)

// BuildPlanPrompt renders the default plan prompt for profile.
func BuildPlanPrompt(profile models.UserProfile) string {
	return BuildPlanPromptWith(PlanPreamble, PlanInstructions, profile)
}

// BuildPlanPromptWith renders a plan prompt with custom opening and closing
// instructions. The profile block and the JSON shape are always included.
func BuildPlanPromptWith(preamble, instructions string, profile models.UserProfile) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(preamble))
	b.WriteString("\n\n")
	b.WriteString(ProfileBlock(profile))
	b.WriteString("\n")
	b.WriteString(PlanJSONShape)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(instructions))
	b.WriteString("\n")

	return b.String()
}

// ProfileBlock lists every profile field as a labeled line.
// Optional fields appear only when set.
func ProfileBlock(p models.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "Height: %d cm\n", p.Height)
	fmt.Fprintf(&b, "Weight: %d kg\n", p.Weight)
	fmt.Fprintf(&b, "Fitness Goal: %s\n", p.FitnessGoal)
	fmt.Fprintf(&b, "Fitness Level: %s\n", p.FitnessLevel)
	fmt.Fprintf(&b, "Workout Location: %s\n", p.WorkoutLocation)
	fmt.Fprintf(&b, "Dietary Preference: %s\n", p.DietaryPreference)
	if p.HasMedicalHistory() {
		fmt.Fprintf(&b, "Medical History: %s\n", strings.TrimSpace(p.MedicalHistory))
	}
	if p.HasStressLevel() {
		fmt.Fprintf(&b, "Stress Level: %s\n", p.StressLevel)
	}
	return b.String()
}

// BuildImagePrompt wraps subject in the default image instruction.
func BuildImagePrompt(subject string) string {
	return BuildImagePromptWith(ImagePromptTemplate, subject)
}

// BuildImagePromptWith wraps subject in template, which must contain one %s.
func BuildImagePromptWith(template, subject string) string {
	return fmt.Sprintf(template, strings.TrimSpace(subject))
}

// PlanBuilder renders prompts using overrides resolved by a Loader.
type PlanBuilder struct {
	loader *Loader
}

// NewPlanBuilder creates a PlanBuilder. A nil loader uses the defaults.
func NewPlanBuilder(loader *Loader) *PlanBuilder {
	return &PlanBuilder{loader: loader}
}

// Plan renders the plan prompt for profile.
func (b *PlanBuilder) Plan(profile models.UserProfile) (string, error) {
	preamble, err := b.loader.Get(KeyPlanPreamble)
	if err != nil {
		return "", err
	}
	instructions, err := b.loader.Get(KeyPlanInstructions)
	if err != nil {
		return "", err
	}
	return BuildPlanPromptWith(preamble, instructions, profile), nil
}

// Image renders the image prompt for subject.
func (b *PlanBuilder) Image(subject string) (string, error) {
	tmpl, err := b.loader.Get(KeyImagePrompt)
	if err != nil {
		return "", err
	}
	return BuildImagePromptWith(tmpl, subject), nil
}
