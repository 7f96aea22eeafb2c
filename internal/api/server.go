// ABOUTME: HTTP surface of the relay: /ping, /send-message and /analyze-mental-state
// ABOUTME: Routes with gorilla/mux and wraps the router in CORS, request-id and access-log middleware
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/harper/bezzie/internal/models"
)

// Relay is the service behind the HTTP handlers
type Relay interface {
	SendMessage(ctx context.Context, query string) (string, error)
	AnalyzeMentalState(ctx context.Context, id, chatHistory string) (models.AnalysisResult, error)
}

// Server holds the HTTP handlers for a Relay
type Server struct {
	relay Relay
}

// NewServer creates a Server for the given relay
func NewServer(relay Relay) *Server {
	return &Server{relay: relay}
}

// Router returns the bare route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	r.HandleFunc("/send-message", s.handleSendMessage).Methods(http.MethodPost)
	r.HandleFunc("/analyze-mental-state", s.handleAnalyzeMentalState).Methods(http.MethodPost)
	return r
}

// Handler returns the router with all middleware applied.
// CORS sits outside the router so preflight requests never reach a 405.
func (s *Server) Handler() http.Handler {
	return withRequestID(withCORS(withAccessLog(s.Router())))
}
