/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/josephgoksu/fitcoach/internal/utils"
)

// Default source URLs, in the order they are tried.
const (
	QuotableMotivationalURL = "https://api.quotable.io/random?tags=motivational|inspirational|success|wisdom&minLength=30&maxLength=200"
	ZenQuotesURL            = "https://zenquotes.io/api/random"
	QuotablePlainURL        = "https://api.quotable.io/random?minLength=30&maxLength=150"
)

const userAgent = "FitnessCoachApp/1.0"

// maxBody caps how much of a source response is read.
const maxBody = 64 << 10

// Decoder turns a source response body into an Entry.
type Decoder func(body []byte) (Entry, error)

// Source is one external quote provider.
type Source struct {
	Name   string
	URL    string
	Decode Decoder
}

// DefaultSources returns the built-in source chain.
func DefaultSources() []Source {
	return SourcesFromURLs([]string{QuotableMotivationalURL, ZenQuotesURL, QuotablePlainURL})
}

// SourcesFromURLs builds sources for the given URLs. zenquotes hosts get the
// array decoder; everything else is read as a quotable-style object.
func SourcesFromURLs(urls []string) []Source {
	sources := make([]Source, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, "zenquotes") {
			sources = append(sources, Source{Name: "zenquotes", URL: u, Decode: DecodeZenQuotes})
			continue
		}
		sources = append(sources, Source{Name: "quotable", URL: u, Decode: DecodeQuotable})
	}
	return sources
}

// DecodeQuotable reads {"content": ..., "author": ...}.
func DecodeQuotable(body []byte) (Entry, error) {
	var payload struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Entry{}, fmt.Errorf("decode quotable response: %w", err)
	}
	return Entry{Quote: payload.Content, Author: payload.Author}, nil
}

// DecodeZenQuotes reads [{"q": ..., "a": ...}] or a single {"q": ..., "a": ...}.
func DecodeZenQuotes(body []byte) (Entry, error) {
	type zen struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	var list []zen
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return Entry{}, fmt.Errorf("empty zenquotes response")
		}
		return Entry{Quote: list[0].Q, Author: list[0].A}, nil
	}
	var single zen
	if err := json.Unmarshal(body, &single); err != nil {
		return Entry{}, fmt.Errorf("decode zenquotes response: %w", err)
	}
	return Entry{Quote: single.Q, Author: single.A}, nil
}

// fetch performs one GET and decodes it. Both fields must be non-empty.
func (s Source) fetch(ctx context.Context, client *http.Client) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Entry{}, fmt.Errorf("%s: read body: %w", s.Name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Entry{}, fmt.Errorf("%s: status %d: %s", s.Name, resp.StatusCode, utils.Truncate(string(body), 120))
	}

	entry, err := s.Decode(body)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	entry.Quote = strings.TrimSpace(entry.Quote)
	entry.Author = strings.TrimSpace(entry.Author)
	if entry.Quote == "" || entry.Author == "" {
		return Entry{}, fmt.Errorf("%s: response missing quote or author", s.Name)
	}
	return entry, nil
}
