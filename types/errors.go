/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the plan pipeline and its side services.
type ErrorKind string

const (
	// KindConfiguration is a missing or placeholder credential. No network call was made.
	KindConfiguration ErrorKind = "configuration"
	// KindUpstreamNotFound means the model identifier is unknown upstream. Retryable with the next identifier.
	KindUpstreamNotFound ErrorKind = "upstream_not_found"
	// KindUpstreamFatal covers auth, quota and malformed-request failures.
	KindUpstreamFatal ErrorKind = "upstream_fatal"
	// KindParse means no decodable JSON was found in the response.
	KindParse ErrorKind = "parse"
	// KindValidation means decoded JSON is missing required structure.
	KindValidation ErrorKind = "validation"
	// KindTransport is a network-level failure.
	KindTransport ErrorKind = "transport"
)

// PipelineError provides structured error information for pipeline failures.
type PipelineError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError creates a new structured pipeline error.
func NewPipelineError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of the first PipelineError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsKind reports whether err carries a PipelineError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
