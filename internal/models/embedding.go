// ABOUTME: Embedding models for the similarity lookup
// ABOUTME: Defines SimilarityRecord, SimilarityMatch and AnalysisResult
package models

import "fmt"

// DefaultEmbeddingDimension is the vector length of text-embedding-3-small
const DefaultEmbeddingDimension = 1536

// SimilarityRecord is one id -> vector pair stored in the external index
type SimilarityRecord struct {
	ID        string    `json:"id"`
	Embedding []float32 `json:"embedding"`
}

// ValidateDimension checks the record carries an id and a vector of the expected length
func (r SimilarityRecord) ValidateDimension(expected int) error {
	if r.ID == "" {
		return fmt.Errorf("similarity record id cannot be empty")
	}
	if len(r.Embedding) == 0 {
		return fmt.Errorf("embedding vector cannot be empty")
	}
	if len(r.Embedding) != expected {
		return fmt.Errorf("embedding dimension mismatch: expected %d, got %d", expected, len(r.Embedding))
	}
	return nil
}

// SimilarityMatch is a single ranked neighbor returned by an index query
type SimilarityMatch struct {
	ID    string  `json:"id"`
	Score float32 `json:"score"`
}

// AnalysisResult is the outcome of one analyze-mental-state call.
// MostSimilarID is nil when no other id is stored in the index.
type AnalysisResult struct {
	MostSimilarID *string `json:"most_similar_user"`
}
