/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/josephgoksu/fitcoach/types"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, types.LogConfig{Level: "info", Format: "json"}, false))
	l.Info("plan generated", "model", "gemini-2.5-flash")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
	if rec["model"] != "gemini-2.5-flash" {
		t.Errorf("model = %v", rec["model"])
	}
}

func TestNewHandler_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, types.LogConfig{Level: "error"}, true)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose should enable debug")
	}

	h = NewHandler(&buf, types.LogConfig{Level: "error"}, false)
	slog.New(h).Warn("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("warn should be filtered at error level")
	}
}
