// Package server wires the HTTP transport around the response engine and
// the conversation store.
package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/raphaelgruber/hotelbot-go/internal/bot"
	"github.com/raphaelgruber/hotelbot-go/internal/db"
	"github.com/raphaelgruber/hotelbot-go/web"
)

// Default result bounds for the read endpoints.
const (
	defaultHistoryLimit = 50
	defaultSearchLimit  = 20
	defaultPurgeDays    = 30
)

// Server holds the transport dependencies.
type Server struct {
	engine *bot.Engine
	store  *db.Client
	logger *slog.Logger
}

// New creates a server over an engine and a store.
func New(engine *bot.Engine, store *db.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, store: store, logger: logger}
}

// Handler builds the route table. All routes are wrapped in the logging
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("POST /api/purge", s.handlePurge)
	mux.HandleFunc("GET /ws", s.handleWS)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	// Embedded chat page at the root.
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		// The embed is part of the binary; a bad sub path is a build defect.
		panic(err)
	}
	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))

	return LoggingMiddleware(s.logger)(mux)
}
