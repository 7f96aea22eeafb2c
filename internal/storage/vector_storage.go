// ABOUTME: Vector index abstraction for the similarity lookup
// ABOUTME: Shared cosine ranking used by the Charm KV and in-process backends
package storage

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/harper/bezzie/internal/models"
)

// VectorIndex stores id -> vector pairs and answers top-k nearest-neighbor queries by cosine similarity
type VectorIndex interface {
	// Provision creates the index if it is absent. Safe to call from several instances at once.
	Provision(ctx context.Context) error
	// Upsert stores the record, replacing any previous vector under the same id
	Upsert(ctx context.Context, record models.SimilarityRecord) error
	// Query returns up to topK matches, best first
	Query(ctx context.Context, vector []float32, topK int) ([]models.SimilarityMatch, error)
	// Count returns how many vectors are stored under id
	Count(ctx context.Context, id string) (int, error)
	Close() error
}

// isAlreadyExists reports whether a provider rejected a create because the target exists.
// Concurrent provisioning treats that answer as success.
func isAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exist") || strings.Contains(msg, "duplicate")
}

func validateQuery(vector []float32, topK, dimension int) error {
	if topK <= 0 {
		return fmt.Errorf("topK must be positive, got %d", topK)
	}
	if len(vector) != dimension {
		return fmt.Errorf("invalid query dimension: expected %d, got %d", dimension, len(vector))
	}
	return nil
}

// rankByCosine scores every candidate against query and keeps the best topK
func rankByCosine(query []float32, candidates map[string][]float32, topK int) []models.SimilarityMatch {
	results := make([]models.SimilarityMatch, 0, len(candidates))
	for id, vec := range candidates {
		results = append(results, models.SimilarityMatch{
			ID:    id,
			Score: float32(cosineSimilarity(query, vec)),
		})
	}

	// Sort by similarity score (descending), id breaks ties so results are stable
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
