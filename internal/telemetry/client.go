/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package telemetry sends anonymous usage events to PostHog. It is off unless
// enabled with an API key, and never blocks or fails a command.
package telemetry

import (
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"

	"github.com/josephgoksu/fitcoach/types"
)

// Client is the interface for telemetry clients.
type Client interface {
	// Track sends an event asynchronously. If telemetry is disabled, this is a no-op.
	Track(event string, properties map[string]any)

	// Close flushes pending events and closes the client.
	Close() error
}

// enqueuer is the subset of the PostHog client used here.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// PostHogClient wraps the PostHog SDK for async telemetry.
type PostHogClient struct {
	client     enqueuer
	distinctID string
	version    string
	mu         sync.Mutex
	closed     bool
}

// New returns a PostHog client when cfg enables telemetry with an API key,
// and a NoopClient otherwise.
func New(cfg types.TelemetryConfig, version string) Client {
	if !cfg.Enabled || cfg.APIKey == "" {
		return NewNoopClient()
	}

	phConfig := posthog.Config{
		BatchSize: 10,
		Interval:  1 * time.Second,
		// Transport warnings must not reach CLI output.
		Logger: quietPostHogLogger{},
	}
	if cfg.Endpoint != "" {
		phConfig.Endpoint = cfg.Endpoint
	}

	client, err := posthog.NewWithConfig(cfg.APIKey, phConfig)
	if err != nil {
		return NewNoopClient()
	}
	return newPostHogClient(client, cfg.AnonymousID, version)
}

func newPostHogClient(enq enqueuer, distinctID, version string) *PostHogClient {
	if distinctID == "" {
		distinctID = uuid.NewString()
	}
	return &PostHogClient{client: enq, distinctID: distinctID, version: version}
}

// Track enqueues event with the standard properties added.
func (c *PostHogClient) Track(event string, properties map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("app_version", c.version)
	// No person profiles: events stay anonymous.
	props.Set("$process_person_profile", false)

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes the queue. Later Track calls are dropped.
func (c *PostHogClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// NoopClient is a telemetry client that does nothing.
type NoopClient struct{}

func (NoopClient) Track(string, map[string]any) {}

func (NoopClient) Close() error { return nil }

// NewNoopClient returns a client that does nothing.
func NewNoopClient() NoopClient {
	return NoopClient{}
}

type quietPostHogLogger struct{}

func (quietPostHogLogger) Debugf(string, ...interface{}) {}
func (quietPostHogLogger) Logf(string, ...interface{})   {}
func (quietPostHogLogger) Warnf(string, ...interface{})  {}
func (quietPostHogLogger) Errorf(string, ...interface{}) {}
