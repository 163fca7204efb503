/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package imagegen

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Placeholder geometry.
const (
	PlaceholderWidth  = 400
	PlaceholderHeight = 300
	placeholderFontSz = 16
	placeholderMaxW   = 360
	placeholderLineH  = 20
	placeholderBg     = "#f0f0f0"
	placeholderFg     = "#666666"
)

var (
	defaultFaceOnce sync.Once
	defaultFace     font.Face
	defaultFaceErr  error
)

// loadFontFace parses a TTF file, or the embedded Go Regular font when path is empty.
func loadFontFace(path string, size float64) (font.Face, error) {
	if path == "" {
		defaultFaceOnce.Do(func() {
			defaultFace, defaultFaceErr = parseFace(goregular.TTF, size)
		})
		return defaultFace, defaultFaceErr
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return parseFace(fontBytes, size)
}

func parseFace(fontBytes []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// wrapLines breaks text into lines no wider than maxWidth as measured by measure.
// A single word wider than maxWidth gets its own line.
func wrapLines(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// RenderPlaceholder draws text centered on a light grey 400x300 PNG.
// The first line sits on the vertical center; further lines follow below it.
func RenderPlaceholder(text string, face font.Face) ([]byte, error) {
	dc := gg.NewContext(PlaceholderWidth, PlaceholderHeight)
	dc.SetHexColor(placeholderBg)
	dc.Clear()

	if face != nil {
		dc.SetFontFace(face)
	}
	dc.SetHexColor(placeholderFg)

	measure := func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}
	x := float64(PlaceholderWidth) / 2
	y := float64(PlaceholderHeight) / 2
	for _, line := range wrapLines(text, placeholderMaxW, measure) {
		dc.DrawStringAnchored(line, x, y, 0.5, 0.5)
		y += placeholderLineH
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
