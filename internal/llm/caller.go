/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/josephgoksu/fitcoach/internal/fallback"
	"github.com/josephgoksu/fitcoach/types"
)

var tracer = otel.Tracer("github.com/josephgoksu/fitcoach/internal/llm")

// Response is the raw text returned by the first model that answered.
type Response struct {
	Text     string
	Model    string
	Attempts int
}

// Caller sends a prompt through an ordered chain of model identifiers.
// A model that is unknown upstream is skipped; any other failure aborts the chain.
type Caller struct {
	cfg       Config
	generator Generator
	observer  Observer
}

// CallerOption customizes a Caller.
type CallerOption func(*Caller)

// WithObserver sets the attempt observer.
func WithObserver(o Observer) CallerOption {
	return func(c *Caller) { c.observer = o }
}

// NewCaller creates a Caller. When cfg.Models is empty the provider's
// default chain is used.
func NewCaller(cfg Config, gen Generator, opts ...CallerOption) *Caller {
	if len(cfg.Models) == 0 {
		cfg.Models = DefaultModelsForProvider(string(cfg.Provider))
	}
	c := &Caller{cfg: cfg, generator: gen, observer: SlogObserver{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCallerFromConfig checks the credential, then builds the provider
// generator and a Caller around it.
func NewCallerFromConfig(ctx context.Context, cfg Config, opts ...CallerOption) (*Caller, error) {
	gen, err := NewGenerator(ctx, cfg)
	if err != nil {
		if types.KindOf(err) != "" {
			return nil, err
		}
		return nil, types.NewPipelineError(types.KindConfiguration, "failed to initialize LLM client", err)
	}
	return NewCaller(cfg, gen, opts...), nil
}

// Models returns the configured fallback chain.
func (c *Caller) Models() []string {
	return append([]string(nil), c.cfg.Models...)
}

// Call returns the first successful response. Models are tried strictly in order.
func (c *Caller) Call(ctx context.Context, prompt string) (_ *Response, err error) {
	ctx, span := tracer.Start(ctx, "llm.call", trace.WithAttributes(
		attribute.String("llm.provider", string(c.cfg.Provider)),
		attribute.Int("llm.chain_length", len(c.cfg.Models)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(types.KindOf(err)))
		}
		span.End()
	}()

	if err := CheckCredential(c.cfg); err != nil {
		return nil, err
	}
	if c.generator == nil {
		return nil, types.NewPipelineError(types.KindConfiguration, "no LLM generator configured", nil)
	}

	attempts := 0
	attempt := func(ctx context.Context, model string) (*Response, error) {
		attempts++
		ctx, span := tracer.Start(ctx, "llm.attempt", trace.WithAttributes(
			attribute.String("llm.model", model),
			attribute.Int("llm.attempt", attempts),
		))
		defer span.End()

		start := time.Now()
		text, err := c.generator.Generate(ctx, model, prompt)
		if err != nil {
			span.SetStatus(codes.Error, string(ClassifyError(err)))
		}
		c.observer.OnAttempt(CallEvent{
			Model:     model,
			Attempt:   attempts,
			Latency:   time.Since(start),
			Success:   err == nil,
			ErrorKind: ClassifyError(err),
		})
		if err != nil {
			return nil, err
		}
		return &Response{Text: text, Model: model, Attempts: attempts}, nil
	}
	classify := func(_ string, err error) fallback.Decision {
		if IsModelNotFound(err) {
			return fallback.Continue
		}
		return fallback.Abort
	}

	resp, err := fallback.FirstSuccess(ctx, c.cfg.Models, attempt, classify)
	if err == nil {
		span.SetAttributes(attribute.String("llm.model", resp.Model), attribute.Int("llm.attempts", resp.Attempts))
		return resp, nil
	}

	var exhausted *fallback.ExhaustedError
	switch {
	case errors.Is(err, fallback.ErrNoCandidates):
		return nil, types.NewPipelineError(types.KindConfiguration, "no models configured", err)
	case errors.As(err, &exhausted):
		return nil, types.NewPipelineError(types.KindUpstreamNotFound,
			fmt.Sprintf("all %d models failed", exhausted.Attempts), exhausted)
	case errors.Is(err, context.Canceled):
		return nil, err
	default:
		kind := ClassifyError(err)
		return nil, types.NewPipelineError(kind, fmt.Sprintf("generation failed (%s)", kind), err)
	}
}
