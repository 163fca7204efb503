/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/internal/planner"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

type fakeGenerator struct {
	plan  *models.FitnessPlan
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ models.UserProfile) (*planner.GenerationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &planner.GenerationResult{Plan: f.plan, Model: "gemini-2.5-flash", Attempts: 2, Warnings: []string{"short week"}}, nil
}

func testProfile() models.UserProfile {
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

func testPlan() *models.FitnessPlan {
	return &models.FitnessPlan{
		WorkoutPlan: []models.WorkoutDay{{Day: "Day 1", Exercises: []models.Exercise{{Name: "Plank", Sets: 3, Reps: "30s", RestTime: "30 seconds"}}}},
		DietPlan:    models.DietPlan{Meals: []models.MealPlan{{MealType: "Breakfast", Items: []string{"Oats"}}}},
		Tips:        []string{"Hydrate"},
		Motivation:  "You got this",
	}
}

func newTestPlanApp(gen PlanGenerator) (*PlanApp, *Context) {
	appCtx := NewContextWithStore(memory.NewMemStore(), llm.Config{})
	a := NewPlanApp(appCtx)
	a.GeneratorFactory = func(context.Context) (PlanGenerator, error) { return gen, nil }
	return a, appCtx
}

func TestPlanApp_GenerateSavesPlanAndProfile(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	a, _ := newTestPlanApp(gen)
	ctx := context.Background()

	res := a.Generate(ctx, testProfile())
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "gemini-2.5-flash", res.Model)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, []string{"short week"}, res.Warnings)

	saved, err := a.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPlan(), saved.Plan)
	assert.Equal(t, "Ana", saved.Profile.Name)
}

func TestPlanApp_InvalidProfileSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	a, _ := newTestPlanApp(gen)

	p := testProfile()
	p.Age = 5
	res := a.Generate(context.Background(), p)
	assert.False(t, res.Success)
	assert.Equal(t, types.KindValidation, res.Kind)
	assert.Zero(t, gen.calls)
}

func TestPlanApp_FailureKeepsPreviousPlan(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	a, _ := newTestPlanApp(gen)
	ctx := context.Background()
	require.True(t, a.Generate(ctx, testProfile()).Success)

	gen.err = types.NewPipelineError(types.KindUpstreamFatal, "generation failed", errors.New("API key not valid"))
	res := a.Generate(ctx, testProfile())
	assert.False(t, res.Success)
	assert.Equal(t, types.KindUpstreamFatal, res.Kind)
	assert.Contains(t, res.Message, "Failed to generate fitness plan")
	assert.Contains(t, res.Hint, "quota")

	saved, err := a.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPlan(), saved.Plan)
}

func TestPlanApp_MissingCredentialIsFriendly(t *testing.T) {
	appCtx := NewContextWithStore(memory.NewMemStore(), llm.Config{Provider: llm.ProviderGemini})
	res := NewPlanApp(appCtx).Generate(context.Background(), testProfile())
	assert.False(t, res.Success)
	assert.Equal(t, types.KindConfiguration, res.Kind)
	assert.Contains(t, res.Hint, "GEMINI_API_KEY")
}

func TestPlanApp_CurrentNeedsBoth(t *testing.T) {
	a, appCtx := newTestPlanApp(&fakeGenerator{})
	ctx := context.Background()

	_, err := a.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSavedPlan)

	require.NoError(t, appCtx.Repo.SavePlan(ctx, testPlan()))
	_, err = a.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSavedPlan, "a plan without its profile is not restored")
}

func TestPlanApp_RegenerateUsesSavedProfile(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	a, appCtx := newTestPlanApp(gen)
	ctx := context.Background()

	res := a.Regenerate(ctx)
	assert.False(t, res.Success)

	require.NoError(t, appCtx.Repo.SaveProfile(ctx, testProfile()))
	res = a.Regenerate(ctx)
	require.True(t, res.Success)
	assert.Equal(t, "Ana", res.Profile.Name)
	assert.Equal(t, 1, gen.calls)
}

func TestPlanApp_Clear(t *testing.T) {
	a, _ := newTestPlanApp(&fakeGenerator{plan: testPlan()})
	ctx := context.Background()
	require.True(t, a.Generate(ctx, testProfile()).Success)

	require.NoError(t, a.Clear(ctx))
	_, err := a.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSavedPlan)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind types.ErrorKind
		wantHint string
	}{
		{"configuration", types.NewPipelineError(types.KindConfiguration, "missing key", nil), types.KindConfiguration, "GEMINI_API_KEY"},
		{"not found", types.NewPipelineError(types.KindUpstreamNotFound, "all 3 models failed", nil), types.KindUpstreamNotFound, "llm.models"},
		{"parse", types.NewPipelineError(types.KindParse, "no JSON", nil), types.KindParse, "Try again"},
		{"transport", types.NewPipelineError(types.KindTransport, "dial", nil), types.KindTransport, "network"},
		{"deadline", context.DeadlineExceeded, "", "too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DescribeError(tt.err)
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Contains(t, f.Hint, tt.wantHint)
		})
	}
}
