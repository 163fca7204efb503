/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package narration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/models"
)

func plan() *models.FitnessPlan {
	return &models.FitnessPlan{
		WorkoutPlan: []models.WorkoutDay{{
			Day:       "Monday",
			Exercises: []models.Exercise{{Name: "Squats", Sets: 3, Reps: "12", RestTime: "60 seconds"}},
		}},
		DietPlan: models.DietPlan{Meals: []models.MealPlan{
			{MealType: "Breakfast", Items: []string{"Oats", "Berries"}},
		}},
		Tips:       []string{"Drink water.", "Sleep 8 hours"},
		Motivation: "You are stronger than you think.",
	}
}

func TestScript(t *testing.T) {
	tests := []struct {
		section Section
		want    string
	}{
		{SectionWorkout, "Your Workout Plan: Monday. Squats, 3 sets of 12 reps, rest 60 seconds."},
		{SectionDiet, "Your Diet Plan: Breakfast: Oats, Berries."},
		{SectionTips, "Tips and Advice: Drink water. Sleep 8 hours."},
		{SectionMotivation, "You are stronger than you think."},
	}
	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			got, err := Script(plan(), tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScript_Errors(t *testing.T) {
	_, err := Script(nil, SectionWorkout)
	assert.Error(t, err)
	_, err = Script(plan(), Section("dance"))
	assert.Error(t, err)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("DIET")
	require.NoError(t, err)
	assert.Equal(t, SectionDiet, s)

	_, err = ParseSection("cardio")
	assert.Error(t, err)
}
