/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package narration converts plan text to speech through ElevenLabs.
package narration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/josephgoksu/fitcoach/internal/utils"
	"github.com/josephgoksu/fitcoach/types"
)

const (
	DefaultBaseURL = "https://api.elevenlabs.io/v1"
	DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
	DefaultModelID = "eleven_monolingual_v1"

	// AudioContentType is the MIME type of the returned audio.
	AudioContentType = "audio/mpeg"

	// UnavailableMessage is the one advisory shown when narration fails.
	UnavailableMessage = "narration unavailable"
)

// ErrNoAPIKey is returned when no ElevenLabs key is configured.
var ErrNoAPIKey = errors.New("ElevenLabs API key is not configured (set ELEVENLABS_API_KEY)")

// ErrEmptyText is returned for blank input.
var ErrEmptyText = errors.New("text is required")

// VoiceSettings tunes the synthesized voice.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// Client calls the text-to-speech endpoint.
type Client struct {
	apiKey   string
	baseURL  string
	voiceID  string
	modelID  string
	settings VoiceSettings
	http     *http.Client
}

// NewClient creates a Client from the narration config. Empty fields use the defaults.
func NewClient(cfg types.NarrationConfig) *Client {
	c := &Client{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		voiceID:  cfg.VoiceID,
		modelID:  cfg.ModelID,
		settings: VoiceSettings{Stability: 0.5, SimilarityBoost: 0.5},
		http:     &http.Client{Timeout: 60 * time.Second},
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.voiceID == "" {
		c.voiceID = DefaultVoiceID
	}
	if c.modelID == "" {
		c.modelID = DefaultModelID
	}
	return c
}

// WithHTTPClient replaces the HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Narrate returns MP3 audio for text.
func (c *Client) Narrate(ctx context.Context, text string) ([]byte, error) {
	if !c.Configured() {
		return nil, types.NewPipelineError(types.KindConfiguration, UnavailableMessage, ErrNoAPIKey)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, types.NewPipelineError(types.KindValidation, UnavailableMessage, ErrEmptyText)
	}

	body, err := json.Marshal(speechRequest{Text: text, ModelID: c.modelID, VoiceSettings: c.settings})
	if err != nil {
		return nil, fmt.Errorf("encode speech request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Accept", AudioContentType)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, types.NewPipelineError(types.KindTransport, UnavailableMessage, err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewPipelineError(types.KindTransport, UnavailableMessage, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, types.NewPipelineError(types.KindUpstreamFatal, UnavailableMessage,
			fmt.Errorf("status %d: %s", resp.StatusCode, utils.Truncate(string(audio), 200)))
	}
	if len(audio) == 0 {
		return nil, types.NewPipelineError(types.KindUpstreamFatal, UnavailableMessage, errors.New("empty audio response"))
	}
	return audio, nil
}
