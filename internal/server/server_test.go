/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/internal/planner"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

type fakeGenerator struct{ err error }

func (f fakeGenerator) Generate(context.Context, models.UserProfile) (*planner.GenerationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &planner.GenerationResult{
		Plan: &models.FitnessPlan{
			WorkoutPlan: []models.WorkoutDay{{Day: "Day 1", Exercises: []models.Exercise{{Name: "Squat", Sets: 3, Reps: "10", RestTime: "60 seconds"}}}},
			DietPlan:    models.DietPlan{Meals: []models.MealPlan{{MealType: "Lunch", Items: []string{"Rice"}}}},
			Tips:        []string{"Sleep"},
			Motivation:  "Go",
		},
		Model:    "gemini-2.5-flash",
		Attempts: 1,
	}, nil
}

type fixedQuote struct{}

func (fixedQuote) Daily(context.Context) models.Quote {
	return models.Quote{Quote: "Keep going.", Author: "Anon", Source: models.QuoteSourceFallback}
}

type fakeNarrator struct{ err error }

func (f fakeNarrator) Narrate(context.Context, string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ID3audio"), nil
}

type placeholderImages struct{}

func (placeholderImages) Generate(_ context.Context, subject string) imagegen.Image {
	return imagegen.Image{MIMEType: "image/png", Data: []byte(subject), Placeholder: true}
}

func newTestServer(t *testing.T, genErr, narrErr error) *Server {
	t.Helper()
	appCtx := app.NewContextWithStore(memory.NewMemStore(), llm.Config{})
	plans := app.NewPlanApp(appCtx)
	plans.GeneratorFactory = func(context.Context) (app.PlanGenerator, error) {
		return fakeGenerator{err: genErr}, nil
	}
	media := app.NewMediaAppWith(appCtx, fixedQuote{}, fakeNarrator{err: narrErr}, placeholderImages{})
	return New(types.ServerConfig{}, plans, media, "test")
}

func profileBody(t *testing.T, age int) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(models.UserProfile{
		Name: "Ana", Age: age, Gender: models.GenderFemale, Height: 165, Weight: 60,
		FitnessGoal: models.GoalWeightLoss, FitnessLevel: models.LevelBeginner,
		WorkoutLocation: models.LocationHome, DietaryPreference: models.DietVegetarian,
	})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGeneratePlan_ThenCurrentAndClear(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := do(s, httptest.NewRequest(http.MethodPost, "/api/plans", profileBody(t, 30)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res app.GenerateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "Squat", res.Plan.WorkoutPlan[0].Exercises[0].Name)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/plans/current", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var saved app.SavedPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "Ana", saved.Profile.Name)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/plans/current/pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "fitness-plan.pdf")

	rec = do(s, httptest.NewRequest(http.MethodDelete, "/api/plans/current", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/plans/current", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePlan_StatusByKind(t *testing.T) {
	tests := []struct {
		name   string
		genErr error
		age    int
		want   int
	}{
		{"invalid profile", nil, 5, http.StatusUnprocessableEntity},
		{"missing key", types.NewPipelineError(types.KindConfiguration, "no key", nil), 30, http.StatusServiceUnavailable},
		{"models exhausted", types.NewPipelineError(types.KindUpstreamNotFound, "all failed", nil), 30, http.StatusBadGateway},
		{"parse", types.NewPipelineError(types.KindParse, "no JSON", nil), 30, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.genErr, nil)
			rec := do(s, httptest.NewRequest(http.MethodPost, "/api/plans", profileBody(t, tt.age)))
			assert.Equal(t, tt.want, rec.Code)

			var res app.GenerateResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestGeneratePlan_BadBody(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := do(s, httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBufferString("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDailyQuote(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/daily-quote", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var q map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "Keep going.", q["quote"])
	assert.Equal(t, "Anon", q["author"])
	assert.Equal(t, "fallback", q["source"])
}

func TestNarrate(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := do(s, httptest.NewRequest(http.MethodPost, "/api/tts", bytes.NewBufferString(`{"text":"Day 1. Squat"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ID3audio", rec.Body.String())

	rec = do(s, httptest.NewRequest(http.MethodPost, "/api/tts", bytes.NewBufferString(`{"text":"  "}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNarrate_FailureIsAdvisory(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no key", types.NewPipelineError(types.KindConfiguration, "narration unavailable", nil), http.StatusServiceUnavailable},
		{"upstream", errors.New("status 500"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil, tt.err)
			rec := do(s, httptest.NewRequest(http.MethodPost, "/api/tts", bytes.NewBufferString(`{"text":"hi"}`)))
			assert.Equal(t, tt.want, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "narration unavailable", body.Error)
		})
	}
}

func TestImage(t *testing.T) {
	s := newTestServer(t, nil, nil)
	rec := do(s, httptest.NewRequest(http.MethodPost, "/api/images", bytes.NewBufferString(`{"subject":"Squat"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var img imagegen.Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &img))
	assert.True(t, img.Placeholder)
	assert.Equal(t, []byte("Squat"), img.Data)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/info", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = do(s, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := do(s, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/info", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = do(s, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusForKind(types.KindValidation))
	assert.Equal(t, http.StatusServiceUnavailable, StatusForKind(types.KindConfiguration))
	assert.Equal(t, http.StatusBadGateway, StatusForKind(types.KindTransport))
	assert.Equal(t, http.StatusInternalServerError, StatusForKind(""))
}
