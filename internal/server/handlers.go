/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/export"
	"github.com/josephgoksu/fitcoach/internal/narration"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

// handleInfo
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, http.StatusOK, map[string]string{
		"service": "fitcoach",
		"version": s.version,
	})
}

// handleGeneratePlan accepts a UserProfile and returns the GenerateResult.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := decodeBody(r, &profile); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", "", "")
		return
	}
	s.writeGenerateResult(w, s.plans.Generate(r.Context(), profile))
}

// handleRegeneratePlan reruns generation for the saved profile.
func (s *Server) handleRegeneratePlan(w http.ResponseWriter, r *http.Request) {
	s.writeGenerateResult(w, s.plans.Regenerate(r.Context()))
}

func (s *Server) writeGenerateResult(w http.ResponseWriter, res *app.GenerateResult) {
	status := http.StatusOK
	if !res.Success {
		status = StatusForKind(res.Kind)
	}
	writeAPIJSON(w, status, res)
}

// handleCurrentPlan
func (s *Server) handleCurrentPlan(w http.ResponseWriter, r *http.Request) {
	saved, err := s.plans.Current(r.Context())
	if errors.Is(err, app.ErrNoSavedPlan) {
		writeError(w, r, http.StatusNotFound, "no saved plan", "", "")
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), "", "")
		return
	}
	writeAPIJSON(w, http.StatusOK, saved)
}

// handleClearPlan
func (s *Server) handleClearPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.plans.Clear(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), "", "")
		return
	}
	writeAPIJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleExportPDF
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data, err := s.media.ExportPDF(r.Context())
	if errors.Is(err, app.ErrNoSavedPlan) {
		writeError(w, r, http.StatusNotFound, "no saved plan", "", "")
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), "", "")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	_, _ = w.Write(data)
}

// handleDailyQuote always answers 200; failures fall back to the built-in list.
func (s *Server) handleDailyQuote(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, http.StatusOK, s.media.DailyQuote(r.Context()))
}

// handleNarrate proxies text to speech and streams audio/mpeg back.
func (s *Server) handleNarrate(w http.ResponseWriter, r *http.Request) {
	var req NarrateRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, r, http.StatusBadRequest, "text is required", "", "")
		return
	}

	audio, err := s.media.Narrate(r.Context(), req.Text)
	if err != nil {
		kind := types.KindOf(err)
		status := http.StatusBadGateway
		if kind == types.KindConfiguration {
			status = http.StatusServiceUnavailable
		}
		writeError(w, r, status, narration.UnavailableMessage, string(kind), "")
		return
	}
	w.Header().Set("Content-Type", narration.AudioContentType)
	_, _ = w.Write(audio)
}

// handleImage returns a generated image or a placeholder; it never fails on upstream errors.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Subject) == "" {
		writeError(w, r, http.StatusBadRequest, "subject is required", "", "")
		return
	}
	writeAPIJSON(w, http.StatusOK, s.media.Image(r.Context(), req.Subject))
}

// StatusForKind maps a pipeline error kind to an HTTP status.
func StatusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindValidation:
		return http.StatusUnprocessableEntity
	case types.KindConfiguration:
		return http.StatusServiceUnavailable
	case types.KindUpstreamNotFound, types.KindUpstreamFatal, types.KindParse, types.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg, kind, hint string) {
	if status >= http.StatusInternalServerError {
		slog.Warn("api error", "path", r.URL.Path, "status", status, "error", msg, "request_id", RequestID(r.Context()))
	}
	writeAPIJSON(w, status, ErrorResponse{Error: msg, Kind: kind, Hint: hint, RequestID: RequestID(r.Context())})
}

func writeAPIJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
