/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/internal/narration"
	"github.com/josephgoksu/fitcoach/models"
)

type stubQuotes struct{ q models.Quote }

func (s stubQuotes) Daily(context.Context) models.Quote { return s.q }

type recordingNarrator struct {
	text string
	err  error
}

func (r *recordingNarrator) Narrate(_ context.Context, text string) ([]byte, error) {
	r.text = text
	if r.err != nil {
		return nil, r.err
	}
	return []byte("ID3"), nil
}

type stubImages struct{}

func (stubImages) Generate(_ context.Context, subject string) imagegen.Image {
	return imagegen.Image{MIMEType: "image/png", Data: []byte(subject), Placeholder: true}
}

func newTestMediaApp(n *recordingNarrator) (*MediaApp, *Context) {
	appCtx := NewContextWithStore(memory.NewMemStore(), llm.Config{})
	q := stubQuotes{q: models.Quote{Quote: "Keep going.", Author: "Anon", Source: models.QuoteSourceFallback}}
	return NewMediaAppWith(appCtx, q, n, stubImages{}), appCtx
}

func saveTestState(t *testing.T, appCtx *Context) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, appCtx.Repo.SavePlan(ctx, testPlan()))
	require.NoError(t, appCtx.Repo.SaveProfile(ctx, testProfile()))
}

func TestMediaApp_DailyQuote(t *testing.T) {
	m, _ := newTestMediaApp(&recordingNarrator{})
	q := m.DailyQuote(context.Background())
	assert.Equal(t, "Keep going.", q.Quote)
	assert.Equal(t, models.QuoteSourceFallback, q.Source)
}

func TestMediaApp_NarrateSection(t *testing.T) {
	n := &recordingNarrator{}
	m, appCtx := newTestMediaApp(n)
	ctx := context.Background()

	_, err := m.NarrateSection(ctx, narration.SectionWorkout)
	assert.ErrorIs(t, err, ErrNoSavedPlan)

	saveTestState(t, appCtx)
	audio, err := m.NarrateSection(ctx, narration.SectionWorkout)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3"), audio)
	assert.Contains(t, n.text, "Plank")
}

func TestMediaApp_NarrateFailure(t *testing.T) {
	n := &recordingNarrator{err: errors.New("status 401")}
	m, _ := newTestMediaApp(n)
	_, err := m.Narrate(context.Background(), "hello")
	assert.Error(t, err)
}

func TestMediaApp_Image(t *testing.T) {
	m, _ := newTestMediaApp(&recordingNarrator{})
	img := m.Image(context.Background(), "Plank")
	assert.True(t, img.Placeholder)
	assert.Equal(t, []byte("Plank"), img.Data)
}

func TestMediaApp_ExportPDF(t *testing.T) {
	m, appCtx := newTestMediaApp(&recordingNarrator{})
	ctx := context.Background()

	_, err := m.ExportPDF(ctx)
	assert.ErrorIs(t, err, ErrNoSavedPlan)

	saveTestState(t, appCtx)
	data, err := m.ExportPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestMediaApp_SavePDF(t *testing.T) {
	m, appCtx := newTestMediaApp(&recordingNarrator{})
	saveTestState(t, appCtx)

	path := filepath.Join(t.TempDir(), "plan.pdf")
	got, err := m.SavePDF(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.FileExists(t, path)
}
