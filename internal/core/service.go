// ABOUTME: Service implements the relay's two operations on top of the LLM and vector index
// ABOUTME: SendMessage answers in the companion persona; AnalyzeMentalState finds a similar user
package core

import (
	"context"
	"fmt"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/models"
	"github.com/harper/bezzie/internal/prompt"
	"github.com/harper/bezzie/internal/storage"
)

// LLM is the provider surface the service needs
type LLM interface {
	Completer
	Embedder
}

// Service relays requests to the completion and embedding providers
type Service struct {
	client  Completer
	scribe  *Scribe
	matcher *Matcher
}

// NewService wires a Service from an LLM client and a provisioned index
func NewService(client LLM, index storage.VectorIndex, opts AnalysisOptions) *Service {
	return &Service{
		client:  client,
		scribe:  NewScribe(client, opts),
		matcher: NewMatcher(client, index),
	}
}

// SendMessage completes query under the persona system prompt
func (s *Service) SendMessage(ctx context.Context, query string) (string, error) {
	reply, err := s.client.Complete(ctx, prompt.PersonaMessages(query), models.CompletionOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return reply, nil
}

// AnalyzeMentalState summarizes chatHistory, indexes the summary under id
// and reports the most similar other user. The summary itself is not returned.
func (s *Service) AnalyzeMentalState(ctx context.Context, id, chatHistory string) (models.AnalysisResult, error) {
	summary, err := s.scribe.Summarize(ctx, chatHistory)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	similar, err := s.matcher.Match(ctx, id, summary)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	if similar != nil {
		logger.With("user", id, "most_similar_user", *similar).Debug("analysis matched")
	}
	return models.AnalysisResult{MostSimilarID: similar}, nil
}
