/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package fallback runs an ordered list of candidates until one succeeds.
// Attempts are strictly sequential: the outcome of one attempt decides
// whether the next is made at all.
package fallback

import (
	"context"
	"errors"
	"fmt"
)

// Decision tells FirstSuccess what to do after a failed attempt.
type Decision int

const (
	// Continue moves on to the next candidate.
	Continue Decision = iota
	// Abort stops immediately and returns the attempt's error unchanged.
	Abort
)

// ErrNoCandidates is returned when the candidate list is empty.
var ErrNoCandidates = errors.New("no candidates to try")

// Attempt tries a single candidate.
type Attempt[C, R any] func(ctx context.Context, candidate C) (R, error)

// Classifier decides whether a failure of candidate is worth continuing past.
type Classifier[C any] func(candidate C, err error) Decision

// ExhaustedError is returned when every candidate failed with a Continue decision.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d candidates failed, last error: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// FirstSuccess calls attempt for each candidate in order and returns the first
// successful result. A nil classify treats every failure as Continue.
// Context cancellation between attempts stops the loop with ctx.Err().
func FirstSuccess[C, R any](ctx context.Context, candidates []C, attempt Attempt[C, R], classify Classifier[C]) (R, error) {
	var zero R
	if len(candidates) == 0 {
		return zero, ErrNoCandidates
	}

	var last error
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := attempt(ctx, c)
		if err == nil {
			return result, nil
		}
		last = err

		if classify != nil && classify(c, err) == Abort {
			return zero, err
		}
	}

	return zero, &ExhaustedError{Attempts: len(candidates), Last: last}
}

// AlwaysContinue is a Classifier that never aborts.
func AlwaysContinue[C any](C, error) Decision {
	return Continue
}
