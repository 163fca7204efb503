/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package quotes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/models"
)

var fixedDay = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func clock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

// stub serves body with status and counts hits.
func stub(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "FitnessCoachApp/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_FirstCompleteSourceWins(t *testing.T) {
	var h1, h2, h3 int32
	down := stub(t, http.StatusServiceUnavailable, `{}`, &h1)
	zen := stub(t, http.StatusOK, `[{"q":"Keep moving.","a":"Someone"}]`, &h2)
	last := stub(t, http.StatusOK, `{"content":"never reached","author":"x"}`, &h3)

	svc := NewService(clock(fixedDay), WithSources([]Source{
		{Name: "quotable", URL: down.URL, Decode: DecodeQuotable},
		{Name: "zenquotes", URL: zen.URL, Decode: DecodeZenQuotes},
		{Name: "quotable", URL: last.URL, Decode: DecodeQuotable},
	}))

	q := svc.Fetch(context.Background())
	assert.Equal(t, models.Quote{Quote: "Keep moving.", Author: "Someone", Source: models.QuoteSourceExternal}, q)
	assert.EqualValues(t, 1, h1)
	assert.EqualValues(t, 1, h2)
	assert.EqualValues(t, 0, h3)
}

func TestFetch_IncompleteQuoteIsSkipped(t *testing.T) {
	var h1, h2 int32
	noAuthor := stub(t, http.StatusOK, `{"content":"Orphan quote","author":""}`, &h1)
	good := stub(t, http.StatusOK, `{"content":"Lift heavy.","author":"Coach"}`, &h2)

	svc := NewService(clock(fixedDay), WithSources(SourcesFromURLs([]string{noAuthor.URL, good.URL})))
	q := svc.Fetch(context.Background())
	assert.Equal(t, "Lift heavy.", q.Quote)
	assert.Equal(t, models.QuoteSourceExternal, q.Source)
}

func TestFetch_AllSourcesFailUsesFallback(t *testing.T) {
	var hits int32
	bad := stub(t, http.StatusInternalServerError, `oops`, &hits)
	garbage := stub(t, http.StatusOK, `<html>`, &hits)

	svc := NewService(clock(fixedDay), WithSources(SourcesFromURLs([]string{bad.URL, garbage.URL})))
	q := svc.Fetch(context.Background())

	want := DefaultFallbackQuotes[9]
	assert.Equal(t, models.Quote{Quote: want.Quote, Author: want.Author, Source: models.QuoteSourceFallback}, q)
	assert.EqualValues(t, 2, hits)
}

func TestFetch_NoSources(t *testing.T) {
	svc := NewService(clock(fixedDay), WithSources(nil))
	assert.Equal(t, models.QuoteSourceFallback, svc.Fetch(context.Background()).Source)
}

func TestDaily_ServesCacheForSameDay(t *testing.T) {
	var hits int32
	src := stub(t, http.StatusOK, `{"content":"Fresh quote.","author":"New"}`, &hits)
	repo := memory.NewRepository(memory.NewMemStore())
	ctx := context.Background()

	svc := NewService(clock(fixedDay), WithCache(repo), WithSources(SourcesFromURLs([]string{src.URL})))

	first := svc.Daily(ctx)
	second := svc.Daily(ctx)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits, "second call of the day is served from cache")

	cached, err := repo.LoadQuoteCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fri Oct 16 2026", cached.Date)
	assert.Equal(t, models.QuoteSourceExternal, cached.Source)
}

func TestDaily_RefreshesOnNewDay(t *testing.T) {
	var hits int32
	src := stub(t, http.StatusOK, `{"content":"Fresh quote.","author":"New"}`, &hits)
	repo := memory.NewRepository(memory.NewMemStore())
	ctx := context.Background()
	require.NoError(t, repo.SaveQuoteCache(ctx, models.CachedQuote{
		Quote: "Old", Author: "Yesterday", Date: "Thu Oct 15 2026", Source: models.QuoteSourceExternal,
	}))

	svc := NewService(clock(fixedDay), WithCache(repo), WithSources(SourcesFromURLs([]string{src.URL})))
	q := svc.Daily(ctx)
	assert.Equal(t, "Fresh quote.", q.Quote)
	assert.EqualValues(t, 1, hits)

	cached, err := repo.LoadQuoteCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fri Oct 16 2026", cached.Date)
}

type brokenCache struct{}

func (brokenCache) LoadQuoteCache(context.Context) (*models.CachedQuote, error) {
	return nil, errors.New("disk on fire")
}

func (brokenCache) SaveQuoteCache(context.Context, models.CachedQuote) error {
	return errors.New("disk on fire")
}

func TestDaily_CacheErrorsAreNotFatal(t *testing.T) {
	svc := NewService(clock(fixedDay), WithCache(brokenCache{}), WithSources(nil))
	q := svc.Daily(context.Background())
	assert.Equal(t, DefaultFallbackQuotes[9].Quote, q.Quote)
	assert.Equal(t, models.QuoteSourceFallback, q.Source)
}

func TestDecodeZenQuotes_SingleObject(t *testing.T) {
	e, err := DecodeZenQuotes([]byte(`{"q":"One","a":"Two"}`))
	require.NoError(t, err)
	assert.Equal(t, Entry{Quote: "One", Author: "Two"}, e)

	_, err = DecodeZenQuotes([]byte(`[]`))
	assert.Error(t, err)
}

func TestSourcesFromURLs(t *testing.T) {
	srcs := DefaultSources()
	require.Len(t, srcs, 3)
	assert.Equal(t, "quotable", srcs[0].Name)
	assert.Equal(t, "zenquotes", srcs[1].Name)
	assert.Equal(t, "quotable", srcs[2].Name)
}
