// ABOUTME: Scribe condenses a chat transcript into a mental-state summary
// ABOUTME: The summary is the text that gets embedded for similarity matching
package core

import (
	"context"
	"fmt"

	"github.com/harper/bezzie/internal/models"
	"github.com/harper/bezzie/internal/prompt"
)

// Completer is anything that can answer a chat completion
type Completer interface {
	Complete(ctx context.Context, messages []models.ChatMessage, opts models.CompletionOptions) (string, error)
}

// AnalysisOptions controls the analysis completion
type AnalysisOptions struct {
	Temperature float32
	MaxTokens   int
}

// DefaultAnalysisOptions returns the limits the analysis prompt was tuned with
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Temperature: 0.5,
		MaxTokens:   1024,
	}
}

// Scribe summarizes transcripts using the analysis prompt
type Scribe struct {
	client Completer
	opts   AnalysisOptions
}

// NewScribe creates a new Scribe
func NewScribe(client Completer, opts AnalysisOptions) *Scribe {
	return &Scribe{
		client: client,
		opts:   opts,
	}
}

// Summarize returns the bullet-point analysis of chatHistory.
// The transcript is passed through untouched; an empty one is still sent.
func (s *Scribe) Summarize(ctx context.Context, chatHistory string) (string, error) {
	summary, err := s.client.Complete(ctx, prompt.AnalysisMessages(chatHistory), models.CompletionOptions{
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to analyze chat history: %w", err)
	}
	return summary, nil
}
