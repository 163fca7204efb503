/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package server

// NarrateRequest is the payload for /api/tts
type NarrateRequest struct {
	Text string `json:"text"`
}

// ImageRequest is the payload for /api/images
type ImageRequest struct {
	Subject string `json:"subject"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Hint      string `json:"hint,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
