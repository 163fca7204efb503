/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package app

import (
	"context"
	"log/slog"

	"github.com/josephgoksu/fitcoach/internal/export"
	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/internal/narration"
	"github.com/josephgoksu/fitcoach/internal/telemetry"
	"github.com/josephgoksu/fitcoach/models"
)

// Narrator converts text to audio.
type Narrator interface {
	Narrate(ctx context.Context, text string) ([]byte, error)
}

// ImageMaker renders an image for a subject. It never fails.
type ImageMaker interface {
	Generate(ctx context.Context, subject string) imagegen.Image
}

// QuoteSource returns the quote of the day. It never fails.
type QuoteSource interface {
	Daily(ctx context.Context) models.Quote
}

// MediaApp serves the side features: quote, narration, images and export.
type MediaApp struct {
	ctx      *Context
	quotes   QuoteSource
	narrator Narrator
	images   ImageMaker
}

// NewMediaApp wires the configured services.
func NewMediaApp(ctx context.Context, appCtx *Context) *MediaApp {
	return &MediaApp{
		ctx:      appCtx,
		quotes:   appCtx.NewQuoteService(),
		narrator: appCtx.NewNarrationClient(),
		images:   appCtx.NewImageGenerator(ctx),
	}
}

// NewMediaAppWith uses the given services.
func NewMediaAppWith(appCtx *Context, q QuoteSource, n Narrator, i ImageMaker) *MediaApp {
	return &MediaApp{ctx: appCtx, quotes: q, narrator: n, images: i}
}

// DailyQuote returns the quote of the day.
func (m *MediaApp) DailyQuote(ctx context.Context) models.Quote {
	q := m.quotes.Daily(ctx)
	m.ctx.Telemetry.Track(telemetry.EventQuoteServed, map[string]any{"source": string(q.Source)})
	return q
}

// Narrate returns audio for text. The error carries the advisory message.
func (m *MediaApp) Narrate(ctx context.Context, text string) ([]byte, error) {
	audio, err := m.narrator.Narrate(ctx, text)
	m.ctx.Telemetry.Track(telemetry.EventNarration, map[string]any{"ok": err == nil})
	if err != nil {
		slog.Warn("narration failed", "error", err)
		return nil, err
	}
	return audio, nil
}

// NarrateSection narrates one section of the saved plan.
func (m *MediaApp) NarrateSection(ctx context.Context, section narration.Section) ([]byte, error) {
	saved, err := NewPlanApp(m.ctx).Current(ctx)
	if err != nil {
		return nil, err
	}
	text, err := narration.Script(saved.Plan, section)
	if err != nil {
		return nil, err
	}
	return m.Narrate(ctx, text)
}

// Image renders an image for subject.
func (m *MediaApp) Image(ctx context.Context, subject string) imagegen.Image {
	img := m.images.Generate(ctx, subject)
	m.ctx.Telemetry.Track(telemetry.EventImageGenerated, map[string]any{"placeholder": img.Placeholder})
	return img
}

// ExportPDF renders the saved plan.
func (m *MediaApp) ExportPDF(ctx context.Context) ([]byte, error) {
	saved, err := NewPlanApp(m.ctx).Current(ctx)
	if err != nil {
		return nil, err
	}
	data, err := export.PDFBytes(saved.Plan)
	if err != nil {
		return nil, err
	}
	m.ctx.Telemetry.Track(telemetry.EventPlanExported, nil)
	return data, nil
}

// SavePDF renders the saved plan to path and returns the path written.
func (m *MediaApp) SavePDF(ctx context.Context, path string) (string, error) {
	saved, err := NewPlanApp(m.ctx).Current(ctx)
	if err != nil {
		return "", err
	}
	written, err := export.SavePDF(path, saved.Plan)
	if err != nil {
		return "", err
	}
	m.ctx.Telemetry.Track(telemetry.EventPlanExported, nil)
	return written, nil
}
