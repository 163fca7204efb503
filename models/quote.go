/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package models

// QuoteSource records where a served quote came from.
type QuoteSource string

const (
	QuoteSourceExternal QuoteSource = "external"
	QuoteSourceFallback QuoteSource = "fallback"
)

// Quote is the payload of the daily-quote endpoint.
type Quote struct {
	Quote  string      `json:"quote"`
	Author string      `json:"author"`
	Source QuoteSource `json:"source"`
}

// CachedQuote is the persisted quote of the day. Date is a calendar-day
// string; the entry is overwritten by the first fetch of a new day.
type CachedQuote struct {
	Quote  string      `json:"quote"`
	Author string      `json:"author"`
	Date   string      `json:"date"`
	Source QuoteSource `json:"source"`
}
