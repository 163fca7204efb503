/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephgoksu/fitcoach/models"
)

func anaProfile() models.UserProfile {
	return models.UserProfile{
		Name:              "Ana",
		Age:               30,
		Gender:            models.GenderFemale,
		Height:            165,
		Weight:            60,
		FitnessGoal:       models.GoalWeightLoss,
		FitnessLevel:      models.LevelBeginner,
		WorkoutLocation:   models.LocationHome,
		DietaryPreference: models.DietVegetarian,
	}
}

func TestBuildPlanPrompt_ContainsRequiredFields(t *testing.T) {
	prompt := BuildPlanPrompt(anaProfile())

	for _, want := range []string{
		"Name: Ana",
		"Age: 30",
		"Gender: female",
		"Height: 165 cm",
		"Weight: 60 kg",
		"Fitness Goal: weight-loss",
		"Fitness Level: beginner",
		"Workout Location: home",
		"Dietary Preference: vegetarian",
		`"workoutPlan"`,
		`"dietPlan"`,
		`"tips"`,
		`"motivation"`,
		"7-day workout plan",
		"breakfast, lunch, dinner, and snacks",
		"5 lifestyle and posture tips",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPlanPrompt_OptionalFields(t *testing.T) {
	without := BuildPlanPrompt(anaProfile())
	assert.NotContains(t, without, "Medical History:")
	assert.NotContains(t, without, "Stress Level:")

	p := anaProfile()
	p.MedicalHistory = "mild asthma"
	p.StressLevel = models.StressHigh
	with := BuildPlanPrompt(p)
	assert.Contains(t, with, "Medical History: mild asthma")
	assert.Contains(t, with, "Stress Level: high")

	shape := func(s string) string { return s[strings.Index(s, "Please provide"):] }
	assert.Equal(t, shape(without), shape(with), "optional fields must not alter the requested JSON shape")
}

func TestBuildPlanPrompt_IsPure(t *testing.T) {
	assert.Equal(t, BuildPlanPrompt(anaProfile()), BuildPlanPrompt(anaProfile()))
}

func TestBuildImagePrompt(t *testing.T) {
	got := BuildImagePrompt("  push-up form ")
	assert.True(t, strings.HasPrefix(got, "Generate a high-quality, realistic image of: push-up form."))
	assert.Contains(t, got, "suitable for a fitness app")
}
