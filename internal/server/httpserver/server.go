// Package httpserver provides the HTTP API server for VidGate.
package httpserver

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the standard library HTTP server.
type Server struct {
	httpServer *http.Server
}

// Options configures listener timeouts.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New creates an HTTP server bound to addr.
func New(addr string, handler http.Handler, opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
		},
	}
}

// ListenAndServe starts the server and blocks.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
