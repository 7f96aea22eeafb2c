// ABOUTME: Handlers for the relay endpoints and the JSON response helpers
// ABOUTME: Validation failures answer 422, upstream failures answer 500 with the error as detail
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/harper/bezzie/internal/logger"
)

type sendMessageRequest struct {
	Query *string `json:"query"`
}

type sendMessageResponse struct {
	Response string `json:"response"`
}

type analyzeRequest struct {
	ID          *string `json:"id"`
	ChatHistory *string `json:"chat_history"`
}

type pingResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, pingResponse{Message: "pong"})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if req.Query == nil {
		respondWithError(w, "field required: query", http.StatusUnprocessableEntity)
		return
	}

	reply, err := s.relay.SendMessage(r.Context(), *req.Query)
	if err != nil {
		logger.With("request_id", requestIDFrom(r.Context())).Errorf("send-message failed: %v", err)
		respondWithError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, http.StatusOK, sendMessageResponse{Response: reply})
}

func (s *Server) handleAnalyzeMentalState(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if req.ID == nil {
		respondWithError(w, "field required: id", http.StatusUnprocessableEntity)
		return
	}
	if req.ChatHistory == nil {
		respondWithError(w, "field required: chat_history", http.StatusUnprocessableEntity)
		return
	}

	result, err := s.relay.AnalyzeMentalState(r.Context(), *req.ID, *req.ChatHistory)
	if err != nil {
		logger.With("request_id", requestIDFrom(r.Context()), "user", *req.ID).Errorf("analyze-mental-state failed: %v", err)
		respondWithError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// decodeJSON reads a single JSON object from the request body
func decodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: unexpected data after the JSON object")
	}
	return nil
}

func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to write response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, message string, statusCode int) {
	respondWithJSON(w, statusCode, errorResponse{Detail: message})
}
