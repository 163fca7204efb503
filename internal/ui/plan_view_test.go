/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephgoksu/fitcoach/models"
)

func samplePlan() *models.FitnessPlan {
	return &models.FitnessPlan{
		WorkoutPlan: []models.WorkoutDay{
			{Day: "Monday", Exercises: []models.Exercise{{Name: "Push-ups", Sets: 3, Reps: "10-12", RestTime: "60 seconds", Description: "Keep your core tight"}}},
			{Day: "Sunday"},
		},
		DietPlan:   models.DietPlan{Meals: []models.MealPlan{{MealType: "Breakfast", Items: []string{"Oats", "Berries"}, Calories: "350 kcal"}}},
		Tips:       []string{"Drink water"},
		Motivation: "Small steps every day",
	}
}

func TestRenderPlan(t *testing.T) {
	profile := &models.UserProfile{Name: "Ana", Age: 30, Height: 165, Weight: 60, FitnessGoal: models.GoalWeightLoss}
	out := RenderPlan(samplePlan(), profile, 80)

	for _, want := range []string{
		"Ana", "Weight Loss",
		"Workout Plan", "Monday", "Push-ups", "10-12", "60 seconds", "Keep your core tight",
		"Sunday", "Rest day",
		"Diet Plan", "Breakfast", "350 kcal", "Oats", "Berries",
		"Tips and Advice", "Drink water",
		"Motivation", "Small steps every day",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPlan_Nil(t *testing.T) {
	assert.Empty(t, RenderPlan(nil, nil, 0))
}

func TestRenderQuote(t *testing.T) {
	out := RenderQuote(models.Quote{Quote: "Keep going.", Author: "Anon", Source: models.QuoteSourceFallback})
	assert.Contains(t, out, "Keep going.")
	assert.Contains(t, out, "Anon")
	assert.Contains(t, out, "offline")

	out = RenderQuote(models.Quote{Quote: "Q", Author: "A", Source: models.QuoteSourceExternal})
	assert.NotContains(t, out, "offline")
}

func TestRenderWarnings(t *testing.T) {
	assert.Empty(t, RenderWarnings(nil))
	assert.Contains(t, RenderWarnings([]string{"expected 7 workout days, got 1"}), "expected 7 workout days")
}
