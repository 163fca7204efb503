/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package server exposes plan generation and the side features over a JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/types"
)

const (
	// DefaultPort is used when server.port is unset.
	DefaultPort = 8080

	readTimeout = 15 * time.Second
	// Plan generation walks a model chain, so writes get a long deadline.
	writeTimeout = 3 * time.Minute
	maxBodyBytes = 64 << 10
)

// DefaultAllowedOrigins are the local front-end dev servers.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Server serves the fitness API.
type Server struct {
	plans   *app.PlanApp
	media   *app.MediaApp
	version string
	origins []string
	port    int
	server  *http.Server
}

// New creates a Server. The handler is built once so Handler and Start agree.
func New(cfg types.ServerConfig, plans *app.PlanApp, media *app.MediaApp, version string) *Server {
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	s := &Server{
		plans:   plans,
		media:   media,
		version: version,
		origins: origins,
		port:    port,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.registerRoutes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start runs the server in a goroutine. Listen failures are sent to errChan.
func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
