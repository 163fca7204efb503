/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	prompt string
	cfg    *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.cfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func respWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func assertPlaceholderPNG(t *testing.T, img Image) {
	t.Helper()
	assert.True(t, img.Placeholder)
	assert.Equal(t, "image/png", img.MIMEType)
	decoded, err := png.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderWidth, decoded.Bounds().Dx())
	assert.Equal(t, PlaceholderHeight, decoded.Bounds().Dy())
}

func TestGenerate_InlineImage(t *testing.T) {
	fm := &fakeModels{resp: respWithParts(
		&genai.Part{Text: "Here is a squat."},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}},
	)}
	g := NewGenerator(Config{Models: fm})

	img := g.Generate(context.Background(), "Squats")
	assert.False(t, img.Placeholder)
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, img.Data)

	assert.Equal(t, 1, fm.calls)
	assert.Equal(t, "gemini-2.0-flash-preview-image-generation", fm.model)
	assert.Equal(t, []string{"TEXT", "IMAGE"}, fm.cfg.ResponseModalities)
	assert.Contains(t, fm.prompt, "realistic image of: Squats")
}

func TestGenerate_JSONImageFieldWins(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("pngbytes"))
	fm := &fakeModels{resp: respWithParts(&genai.Part{Text: `{"image":"data:image/png;base64,` + data + `"}`})}

	img := NewGenerator(Config{Models: fm}).Generate(context.Background(), "Oatmeal")
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, []byte("pngbytes"), img.Data)

	fm.resp = respWithParts(&genai.Part{Text: `{"image":"https://cdn.example.com/oats.png"}`})
	img = NewGenerator(Config{Models: fm}).Generate(context.Background(), "Oatmeal")
	assert.Equal(t, "https://cdn.example.com/oats.png", img.URL)
	assert.False(t, img.Placeholder)
}

func TestGenerate_FallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		fm   *fakeModels
	}{
		{"upstream error", &fakeModels{err: errors.New("quota exceeded")}},
		{"text only", &fakeModels{resp: respWithParts(&genai.Part{Text: "I cannot draw that."})}},
		{"no candidates", &fakeModels{resp: &genai.GenerateContentResponse{}}},
		{"non-image inline data", &fakeModels{resp: respWithParts(&genai.Part{InlineData: &genai.Blob{MIMEType: "audio/mpeg", Data: []byte{1}}})}},
		{"non-image data URL", &fakeModels{resp: respWithParts(&genai.Part{Text: `{"image":"data:text/plain;base64,aGVsbG8="}`})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewGenerator(Config{Models: tt.fm}).Generate(context.Background(), "Push-ups")
			assertPlaceholderPNG(t, img)
		})
	}
}

func TestDecodeDataURL(t *testing.T) {
	mime, data, ok := decodeDataURL("data:image/webp;base64,aGVsbG8=")
	require.True(t, ok)
	assert.Equal(t, "image/webp", mime)
	assert.Equal(t, []byte("hello"), data)

	for _, s := range []string{"data:text/plain;base64,aGVsbG8=", "data:image/png,raw", "data:image/png;base64,!!", "https://x/y.png"} {
		_, _, ok := decodeDataURL(s)
		assert.False(t, ok, s)
	}
}

func TestGenerate_NoBackend(t *testing.T) {
	assertPlaceholderPNG(t, NewGenerator(Config{}).Generate(context.Background(), "Grilled chicken with quinoa"))
}

func TestNewGenerator_BadFontFallsBack(t *testing.T) {
	g := NewGenerator(Config{FontPath: "/does/not/exist.ttf"})
	assert.NotNil(t, g.face)
	assertPlaceholderPNG(t, g.Placeholder("Plank"))
}

func TestWrapLines(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	lines := wrapLines("one two three four", 9, measure)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	lines = wrapLines("supercalifragilistic word", 5, measure)
	assert.Equal(t, []string{"supercalifragilistic", "word"}, lines)

	assert.Equal(t, []string{""}, wrapLines("   ", 10, measure))
}

func TestSVGPlaceholderEscapes(t *testing.T) {
	svg := svgPlaceholder("Eggs & <toast>")
	assert.True(t, strings.Contains(svg, "Eggs &amp; &lt;toast&gt;"))
}
