/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package app

import (
	"context"
	"errors"

	"github.com/josephgoksu/fitcoach/types"
)

// Failure is the user-facing form of a pipeline error.
type Failure struct {
	Kind    types.ErrorKind
	Message string
	Hint    string
}

// DescribeError turns err into one message and a hint keyed by its kind.
func DescribeError(err error) Failure {
	kind := types.KindOf(err)
	f := Failure{Kind: kind, Message: "Failed to generate fitness plan: " + err.Error()}

	switch {
	case errors.Is(err, context.Canceled):
		f.Message = "Plan generation was cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		f.Hint = "The model took too long to answer. Try again, or raise or unset llm.requestTimeoutSeconds."
	case kind == types.KindConfiguration:
		f.Hint = "Set GEMINI_API_KEY in .env (or llm.apiKeys.<provider> in ~/.fitcoach/config.yaml)."
	case kind == types.KindUpstreamNotFound:
		f.Hint = "None of the configured models are available. Check llm.models and that the Generative Language API is enabled."
	case kind == types.KindUpstreamFatal:
		f.Hint = "Check that your API key is valid and that you have quota remaining."
	case kind == types.KindParse:
		f.Hint = "The model answered without a usable plan. Try again."
	case kind == types.KindValidation:
		f.Hint = "Check the profile values, or try again if the model returned an incomplete plan."
	case kind == types.KindTransport:
		f.Hint = "Check your network connection and try again."
	}
	return f
}
