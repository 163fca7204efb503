/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/models"
)

func TestRootHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	require.NoError(t, rootCmd.Help())

	out := buf.String()
	assert.Contains(t, out, "fitcoach")
	for _, sub := range []string{"generate", "show", "clear", "quote", "export", "narrate", "image", "serve", "mcp", "config"} {
		assert.Contains(t, out, sub)
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", GetVersion())
}

func TestDecodeProfile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		p, err := decodeProfile(strings.NewReader(`
name: "  Ana "
age: 30
gender: female
height: 165
weight: 60
fitnessGoal: weight-loss
fitnessLevel: beginner
workoutLocation: home
dietaryPreference: vegetarian
`))
		require.NoError(t, err)
		assert.Equal(t, "Ana", p.Name)
		assert.Equal(t, 165, p.Height)
		assert.Equal(t, models.GoalWeightLoss, p.FitnessGoal)
		assert.NoError(t, p.Validate())
	})

	t.Run("json", func(t *testing.T) {
		p, err := decodeProfile(strings.NewReader(`{"name":"Ben","age":42,"gender":"male","height":180,"weight":85,
"fitnessGoal":"muscle-gain","fitnessLevel":"advanced","workoutLocation":"gym","dietaryPreference":"keto","stressLevel":"high"}`))
		require.NoError(t, err)
		assert.Equal(t, "Ben", p.Name)
		assert.Equal(t, models.StressHigh, p.StressLevel)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := decodeProfile(strings.NewReader("name: Ana\nshoeSize: 38\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode profile")
	})
}

func TestIntInRange(t *testing.T) {
	check := intInRange(10, 100)
	assert.NoError(t, check(" 30 "))
	assert.Error(t, check("9"))
	assert.Error(t, check("101"))
	assert.Error(t, check("thirty"))
}

func TestRenderSaved(t *testing.T) {
	saved := &app.SavedPlan{
		Plan: &models.FitnessPlan{
			WorkoutPlan: []models.WorkoutDay{{Day: "Day 1", Exercises: []models.Exercise{{Name: "Plank", Sets: 3, Reps: "30s", RestTime: "30 seconds"}}}},
			DietPlan:    models.DietPlan{Meals: []models.MealPlan{{MealType: "Breakfast", Items: []string{"Oats"}}}},
			Tips:        []string{"Hydrate"},
			Motivation:  "Keep going",
		},
		Profile: &models.UserProfile{Name: "Ana", Age: 30},
	}

	var js bytes.Buffer
	require.NoError(t, renderSaved(&js, saved, "json"))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Contains(t, decoded, "plan")
	assert.Contains(t, decoded, "profile")

	var y bytes.Buffer
	require.NoError(t, renderSaved(&y, saved, "yaml"))
	assert.Contains(t, y.String(), "workoutPlan:")
	assert.Contains(t, y.String(), "motivation: Keep going")

	assert.Error(t, renderSaved(&bytes.Buffer{}, saved, "xml"))
}

func TestImageFileName(t *testing.T) {
	tests := []struct {
		subject string
		mime    string
		want    string
	}{
		{"Kettlebell Swing", "image/png", "kettlebell-swing.png"},
		{"  Push-ups!! ", "image/jpeg", "push-ups.jpg"},
		{"Squat", "image/svg+xml", "squat.svg"},
		{"???", "", "image.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, imageFileName(tt.subject, imagegen.Image{MIMEType: tt.mime}))
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "****", maskKey("short"))
	assert.Equal(t, "****wxyz", maskKey("abcdefghijklwxyz"))
}
