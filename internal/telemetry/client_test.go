/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package telemetry

import (
	"sync"
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/types"
)

type recordingEnqueuer struct {
	mu       sync.Mutex
	messages []posthog.Message
	closed   int
}

func (r *recordingEnqueuer) Enqueue(msg posthog.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingEnqueuer) Close() error {
	r.closed++
	return nil
}

func TestNew_DisabledIsNoop(t *testing.T) {
	assert.IsType(t, NoopClient{}, New(types.TelemetryConfig{}, "1.0.0"))
	assert.IsType(t, NoopClient{}, New(types.TelemetryConfig{Enabled: true}, "1.0.0"), "no API key")
	assert.IsType(t, NoopClient{}, New(types.TelemetryConfig{APIKey: "phc_x"}, "1.0.0"), "not enabled")
}

func TestPostHogClient_Track(t *testing.T) {
	rec := &recordingEnqueuer{}
	c := newPostHogClient(rec, "anon-1", "1.2.3")

	c.Track(EventPlanGenerated, map[string]any{"model": "gemini-2.5-flash"})

	require.Len(t, rec.messages, 1)
	capture, ok := rec.messages[0].(posthog.Capture)
	require.True(t, ok)
	assert.Equal(t, "anon-1", capture.DistinctId)
	assert.Equal(t, EventPlanGenerated, capture.Event)
	assert.Equal(t, "gemini-2.5-flash", capture.Properties["model"])
	assert.Equal(t, "1.2.3", capture.Properties["app_version"])
	assert.Equal(t, false, capture.Properties["$process_person_profile"])
}

func TestPostHogClient_GeneratesAnonymousID(t *testing.T) {
	c := newPostHogClient(&recordingEnqueuer{}, "", "dev")
	assert.Len(t, c.distinctID, 36)
}

func TestPostHogClient_CloseOnce(t *testing.T) {
	rec := &recordingEnqueuer{}
	c := newPostHogClient(rec, "anon", "dev")

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, rec.closed)

	c.Track(EventQuoteServed, nil)
	assert.Empty(t, rec.messages, "events after Close are dropped")
}
