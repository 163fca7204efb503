/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package quotes serves the motivational quote of the day. External sources are
// tried in order; when all fail a quote is picked deterministically from a
// built-in list keyed by the calendar day.
package quotes

import "time"

// DateLayout renders a calendar day as "Fri Oct 16 2026".
const DateLayout = "Mon Jan 02 2006"

// Entry is a quote and its author.
type Entry struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// DefaultFallbackQuotes is the built-in list used when no source answers.
var DefaultFallbackQuotes = []Entry{
	{"The only bad workout is the one that didn't happen.", "Unknown"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"Your body can stand almost anything. It's your mind you have to convince.", "Unknown"},
	{"The pain you feel today will be the strength you feel tomorrow.", "Unknown"},
	{"Don't wish for it, work for it.", "Unknown"},
	{"Fitness is not about being better than someone else. It's about being better than you used to be.", "Khloe Kardashian"},
	{"Take care of your body. It's the only place you have to live.", "Jim Rohn"},
	{"The difference between try and triumph is a little umph.", "Unknown"},
	{"Sweat is fat crying.", "Unknown"},
	{"You don't have to be extreme, just consistent.", "Unknown"},
	{"A healthy outside starts from the inside.", "Robert Urich"},
	{"Exercise is a celebration of what your body can do, not a punishment for what you ate.", "Unknown"},
	{"The groundwork for all happiness is good health.", "Leigh Hunt"},
	{"Strength doesn't come from what you can do. It comes from overcoming the things you once thought you couldn't.", "Rikki Rogers"},
	{"If you want something you've never had, you must be willing to do something you've never done.", "Thomas Jefferson"},
}

// DateKey returns the calendar-day key of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Select picks the entry at (sum of the bytes of date) mod len(list).
// The same date always yields the same entry. An empty list yields the zero Entry.
func Select(date string, list []Entry) Entry {
	if len(list) == 0 {
		return Entry{}
	}
	seed := 0
	for i := 0; i < len(date); i++ {
		seed += int(date[i])
	}
	return list[seed%len(list)]
}
