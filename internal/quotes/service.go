/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package quotes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/josephgoksu/fitcoach/internal/fallback"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

// DefaultTimeout bounds one source request.
const DefaultTimeout = 10 * time.Second

// Cache persists the quote of the day.
type Cache interface {
	LoadQuoteCache(ctx context.Context) (*models.CachedQuote, error)
	SaveQuoteCache(ctx context.Context, q models.CachedQuote) error
}

// Service resolves the quote of the day. It never fails.
type Service struct {
	sources   []Source
	client    *http.Client
	cache     Cache
	now       func() time.Time
	fallbacks []Entry
}

// Option customizes a Service.
type Option func(*Service)

// WithSources replaces the source chain. An empty chain always uses the fallback list.
func WithSources(sources []Source) Option {
	return func(s *Service) { s.sources = sources }
}

// WithHTTPClient sets the client used for source requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.client = c }
}

// WithCache enables the daily cache.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithFallbackQuotes replaces the built-in list.
func WithFallbackQuotes(list []Entry) Option {
	return func(s *Service) { s.fallbacks = list }
}

// NewService creates a Service with the default sources and fallback list.
func NewService(opts ...Option) *Service {
	s := &Service{
		sources:   DefaultSources(),
		client:    &http.Client{Timeout: DefaultTimeout},
		now:       time.Now,
		fallbacks: DefaultFallbackQuotes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceFromConfig applies the quotes section of the app config.
func NewServiceFromConfig(cfg types.QuotesConfig, cache Cache) *Service {
	opts := []Option{WithCache(cache)}
	if len(cfg.Sources) > 0 {
		opts = append(opts, WithSources(SourcesFromURLs(cfg.Sources)))
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}))
	}
	return NewService(opts...)
}

// Fetch asks each source in order and returns the first complete quote.
// When every source fails the fallback entry for today is returned.
func (s *Service) Fetch(ctx context.Context) models.Quote {
	attempt := func(ctx context.Context, src Source) (Entry, error) {
		entry, err := src.fetch(ctx, s.client)
		if err != nil {
			slog.Debug("quote source failed", "source", src.Name, "error", err)
		}
		return entry, err
	}

	entry, err := fallback.FirstSuccess(ctx, s.sources, attempt, fallback.AlwaysContinue[Source])
	if err == nil {
		return models.Quote{Quote: entry.Quote, Author: entry.Author, Source: models.QuoteSourceExternal}
	}
	if !errors.Is(err, fallback.ErrNoCandidates) {
		slog.Warn("all quote sources failed, using fallback", "error", err)
	}

	entry = Select(DateKey(s.now()), s.fallbacks)
	return models.Quote{Quote: entry.Quote, Author: entry.Author, Source: models.QuoteSourceFallback}
}

// Daily returns today's cached quote, or fetches one and caches it.
// Cache errors are logged and otherwise ignored.
func (s *Service) Daily(ctx context.Context) models.Quote {
	today := DateKey(s.now())

	if s.cache != nil {
		cached, err := s.cache.LoadQuoteCache(ctx)
		switch {
		case err == nil && cached.Date == today:
			return models.Quote{Quote: cached.Quote, Author: cached.Author, Source: cached.Source}
		case err != nil && !errors.Is(err, memory.ErrNotFound):
			slog.Warn("failed to read quote cache", "error", err)
		}
	}

	q := s.Fetch(ctx)

	if s.cache != nil {
		entry := models.CachedQuote{Quote: q.Quote, Author: q.Author, Date: today, Source: q.Source}
		if err := s.cache.SaveQuoteCache(ctx, entry); err != nil {
			slog.Warn("failed to write quote cache", "error", err)
		}
	}
	return q
}
