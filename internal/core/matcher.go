// ABOUTME: Matcher stores a user's summary embedding and finds the closest other user
// ABOUTME: Wraps the embedding client and a VectorIndex for upsert-then-query lookups
package core

import (
	"context"
	"fmt"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/models"
	"github.com/harper/bezzie/internal/storage"
)

// neighborCount is how many matches are requested; the caller's own vector takes one slot
const neighborCount = 2

// Embedder turns text into a vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Matcher finds similar users by summary embedding
type Matcher struct {
	embedder Embedder
	index    storage.VectorIndex
}

// NewMatcher creates a new Matcher over the given index
func NewMatcher(embedder Embedder, index storage.VectorIndex) *Matcher {
	return &Matcher{
		embedder: embedder,
		index:    index,
	}
}

// Match embeds summary, stores it under id (replacing any earlier vector for id)
// and returns the most similar other id, or nil when there is none.
// A failed query after a successful upsert leaves the new vector stored.
func (m *Matcher) Match(ctx context.Context, id, summary string) (*string, error) {
	vector, err := m.embedder.Embed(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to embed summary: %w", err)
	}

	if err := m.index.Upsert(ctx, models.SimilarityRecord{ID: id, Embedding: vector}); err != nil {
		return nil, fmt.Errorf("failed to upsert vector for %s: %w", id, err)
	}

	matches, err := m.index.Query(ctx, vector, neighborCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar users: %w", err)
	}

	logger.Debug("similarity query for %s returned %d matches", id, len(matches))
	return MostSimilar(matches, id), nil
}

// MostSimilar returns the id of the best-ranked match that is not selfID
func MostSimilar(matches []models.SimilarityMatch, selfID string) *string {
	for _, match := range matches {
		if match.ID != selfID {
			id := match.ID
			return &id
		}
	}
	return nil
}
