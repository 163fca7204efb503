/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import (
	"log/slog"
	"time"

	"github.com/josephgoksu/fitcoach/types"
)

// CallEvent records metadata about a single model attempt.
type CallEvent struct {
	Model     string
	Attempt   int
	Latency   time.Duration
	Success   bool
	ErrorKind types.ErrorKind
}

// Observer receives events about model attempts.
type Observer interface {
	OnAttempt(event CallEvent)
}

// SlogObserver logs attempts with the default slog logger.
type SlogObserver struct{}

func (SlogObserver) OnAttempt(e CallEvent) {
	if e.Success {
		slog.Debug("llm call ok", "model", e.Model, "attempt", e.Attempt, "latency_ms", e.Latency.Milliseconds())
		return
	}
	slog.Warn("llm call failed", "model", e.Model, "attempt", e.Attempt,
		"latency_ms", e.Latency.Milliseconds(), "kind", string(e.ErrorKind))
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnAttempt(CallEvent) {}
