/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package server

import "net/http"

// registerRoutes sets up all API endpoints
func (s *Server) registerRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/info", s.handleInfo)

	// Plans
	mux.HandleFunc("POST /api/plans", s.handleGeneratePlan)
	mux.HandleFunc("POST /api/plans/regenerate", s.handleRegeneratePlan)
	mux.HandleFunc("GET /api/plans/current", s.handleCurrentPlan)
	mux.HandleFunc("DELETE /api/plans/current", s.handleClearPlan)
	mux.HandleFunc("GET /api/plans/current/pdf", s.handleExportPDF)

	// Side features
	mux.HandleFunc("GET /api/daily-quote", s.handleDailyQuote)
	mux.HandleFunc("POST /api/tts", s.handleNarrate)
	mux.HandleFunc("POST /api/images", s.handleImage)

	return requestIDMiddleware(s.corsMiddleware(logMiddleware(mux)))
}
