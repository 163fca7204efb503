/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package imagegen produces an illustrative image for an exercise or a meal.
// Generation never fails: without a usable model response a local placeholder
// is rendered instead.
package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"encoding/xml"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/image/font"
	"google.golang.org/genai"

	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/prompts"
)

// Image is a generated or placeholder image. Exactly one of Data or URL is set.
type Image struct {
	MIMEType    string `json:"mimeType"`
	Data        []byte `json:"data,omitempty"`
	URL         string `json:"url,omitempty"`
	Placeholder bool   `json:"placeholder"`
}

// ContentGenerator is the subset of genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator renders images through Gemini with a local fallback.
type Generator struct {
	models  ContentGenerator
	model   string
	prompts *prompts.PlanBuilder
	face    font.Face
}

// Config configures a Generator. Models may be nil to always render placeholders.
type Config struct {
	Models   ContentGenerator
	Model    string
	Prompts  *prompts.PlanBuilder
	FontPath string
}

// NewGenerator creates a Generator. A font that cannot be loaded falls back to
// the embedded one.
func NewGenerator(cfg Config) *Generator {
	g := &Generator{
		models:  cfg.Models,
		model:   cfg.Model,
		prompts: cfg.Prompts,
	}
	if g.model == "" {
		g.model = llm.DefaultImageModel
	}
	if g.prompts == nil {
		g.prompts = prompts.NewPlanBuilder(nil)
	}

	face, err := loadFontFace(cfg.FontPath, placeholderFontSz)
	if err != nil && cfg.FontPath != "" {
		slog.Warn("failed to load placeholder font, using default", "path", cfg.FontPath, "error", err)
		face, err = loadFontFace("", placeholderFontSz)
	}
	if err != nil {
		slog.Warn("failed to load placeholder font", "error", err)
	}
	g.face = face
	return g
}

// NewGeneratorFromLLM builds a Gemini-backed Generator when the credential is usable.
// Otherwise the returned Generator renders placeholders only.
func NewGeneratorFromLLM(ctx context.Context, cfg llm.Config, model, fontPath string, pb *prompts.PlanBuilder) *Generator {
	c := Config{Model: model, Prompts: pb, FontPath: fontPath}
	if cfg.Provider != llm.ProviderGemini {
		slog.Debug("image generation requires the gemini provider, using placeholders", "provider", cfg.Provider)
		return NewGenerator(c)
	}
	if err := llm.CheckCredential(cfg); err != nil {
		slog.Debug("image generation disabled", "error", err)
		return NewGenerator(c)
	}
	client, err := llm.NewGenAIClient(ctx, cfg)
	if err != nil {
		slog.Warn("failed to create genai client for images", "error", err)
		return NewGenerator(c)
	}
	c.Models = client.Models
	return NewGenerator(c)
}

// Generate returns an image for subject.
func (g *Generator) Generate(ctx context.Context, subject string) Image {
	subject = strings.TrimSpace(subject)
	if g.models != nil && subject != "" {
		img, err := g.generateRemote(ctx, subject)
		if err == nil {
			slog.Info("image generated", "model", g.model, "mime", img.MIMEType)
			return img
		}
		slog.Warn("image generation failed, using local placeholder", "error", err)
	}
	return g.Placeholder(subject)
}

// Placeholder renders the local fallback image for subject.
func (g *Generator) Placeholder(subject string) Image {
	data, err := RenderPlaceholder(subject, g.face)
	if err != nil {
		slog.Error("failed to render placeholder", "error", err)
		return Image{MIMEType: "image/svg+xml", Data: []byte(svgPlaceholder(subject)), Placeholder: true}
	}
	return Image{MIMEType: "image/png", Data: data, Placeholder: true}
}

var errNoImage = errors.New("response contained no image")

func (g *Generator) generateRemote(ctx context.Context, subject string) (Image, error) {
	prompt, err := g.prompts.Image(subject)
	if err != nil {
		return Image{}, err
	}
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return Image{}, err
	}
	return imageFromResponse(resp)
}

// imageFromResponse honours a JSON text body with an "image" field first,
// then the first inline image part.
func imageFromResponse(resp *genai.GenerateContentResponse) (Image, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Image{}, errNoImage
	}
	parts := resp.Candidates[0].Content.Parts

	var text strings.Builder
	for _, p := range parts {
		if p != nil && p.Text != "" {
			text.WriteString(p.Text)
		}
	}
	if img, ok := imageFromJSON(text.String()); ok {
		return img, nil
	}

	for _, p := range parts {
		if p == nil || p.InlineData == nil {
			continue
		}
		if strings.HasPrefix(p.InlineData.MIMEType, "image/") && len(p.InlineData.Data) > 0 {
			return Image{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}, nil
		}
	}
	return Image{}, errNoImage
}

func imageFromJSON(text string) (Image, bool) {
	var payload struct {
		Image string `json:"image"`
	}
	if json.Unmarshal([]byte(strings.TrimSpace(text)), &payload) != nil || payload.Image == "" {
		return Image{}, false
	}
	if strings.HasPrefix(payload.Image, "data:") {
		mime, data, ok := decodeDataURL(payload.Image)
		if !ok {
			return Image{}, false
		}
		return Image{MIMEType: mime, Data: data}, true
	}
	return Image{URL: payload.Image}, true
}

// decodeDataURL parses "data:image/<type>;base64,<payload>". Other media types are rejected.
func decodeDataURL(s string) (string, []byte, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, false
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok || !strings.HasPrefix(mime, "image/") {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return mime, data, true
}

func svgPlaceholder(text string) string {
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))
	return `<svg width="400" height="300" xmlns="http://www.w3.org/2000/svg">` +
		`<rect width="400" height="300" fill="#f0f0f0"/>` +
		`<text x="200" y="150" text-anchor="middle" font-family="Arial" font-size="16" fill="#666">` +
		esc.String() + `</text></svg>`
}
