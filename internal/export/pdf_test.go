/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/models"
)

func planWith(days, exercisesPerDay int) *models.FitnessPlan {
	p := &models.FitnessPlan{
		DietPlan: models.DietPlan{Meals: []models.MealPlan{
			{MealType: "Breakfast", Items: []string{"Oats", "Café au lait"}},
			{MealType: "Lunch", Items: []string{"Lentil soup"}},
		}},
		Tips:       []string{"Hydrate"},
		Motivation: "Go",
	}
	for d := 0; d < days; d++ {
		day := models.WorkoutDay{Day: fmt.Sprintf("Day %d", d+1)}
		for e := 0; e < exercisesPerDay; e++ {
			day.Exercises = append(day.Exercises, models.Exercise{Name: "Squats", Sets: 3, Reps: "10-12", RestTime: "60 seconds"})
		}
		p.WorkoutPlan = append(p.WorkoutPlan, day)
	}
	return p
}

func TestBuild_WeeklyPlanFitsOnePage(t *testing.T) {
	pdf, err := build(planWith(7, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())

	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	out := buf.String()
	assert.Contains(t, out, "%PDF-")
	assert.Contains(t, out, "(Your Personalized Fitness Plan)")
	assert.Contains(t, out, "(Workout Plan)")
	assert.Contains(t, out, "(- Squats: 3 sets x 10-12)")
	assert.Contains(t, out, "(Diet Plan)")
	assert.Contains(t, out, "(Breakfast:)")
	assert.Contains(t, out, "(- Lentil soup)")
}

func TestBuild_LongPlanPaginates(t *testing.T) {
	pdf, err := build(planWith(14, 6))
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestBuild_NilPlan(t *testing.T) {
	_, err := build(nil)
	assert.Error(t, err)
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	got, err := SavePDF(path, planWith(1, 1))
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
