/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/genai"

	"github.com/josephgoksu/fitcoach/types"
)

// statusCoder is implemented by provider errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatusCode() int
}

// notFoundMarkers are substrings that identify an unknown or retired model.
var notFoundMarkers = []string{"not found", "does not exist", "404"}

// IsModelNotFound reports whether err means the model identifier itself is
// unavailable, as opposed to a problem with the request or the account.
func IsModelNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return true
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.HTTPStatusCode() == http.StatusNotFound {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, m := range notFoundMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// ClassifyError maps a raw provider error onto the pipeline error kinds.
func ClassifyError(err error) types.ErrorKind {
	switch {
	case err == nil:
		return ""
	case IsModelNotFound(err):
		return types.KindUpstreamNotFound
	case isTransportError(err):
		return types.KindTransport
	default:
		return types.KindUpstreamFatal
	}
}

func isTransportError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
