// ABOUTME: Unit tests for cosine ranking and the in-process vector index
// ABOUTME: Covers upsert-replaces semantics, top-k ordering and dimension checks
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/harper/bezzie/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
		delta    float64
	}{
		{"identical vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0, 0.001},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0, 0.001},
		{"opposite vectors", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1.0, 0.001},
		{"similar vectors", []float32{1, 0, 0}, []float32{0.9, 0.1, 0}, 0.994, 0.01},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0.0, 0.0},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 0, 0}, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cosineSimilarity(tt.a, tt.b), tt.delta)
		})
	}
}

func TestRankByCosine(t *testing.T) {
	candidates := map[string][]float32{
		"far":   {0, 1, 0},
		"near":  {0.9, 0.1, 0},
		"exact": {1, 0, 0},
	}

	got := rankByCosine([]float32{1, 0, 0}, candidates, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "exact", got[0].ID)
	assert.Equal(t, "near", got[1].ID)
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
}

func TestRankByCosine_TiesAreStable(t *testing.T) {
	candidates := map[string][]float32{
		"b": {1, 0, 0},
		"a": {1, 0, 0},
		"c": {1, 0, 0},
	}
	got := rankByCosine([]float32{1, 0, 0}, candidates, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestIsAlreadyExists(t *testing.T) {
	assert.False(t, isAlreadyExists(nil))
	assert.True(t, isAlreadyExists(errors.New("collection already exists: users")))
	assert.True(t, isAlreadyExists(errors.New("Index ALREADY EXISTS")))
	assert.True(t, isAlreadyExists(errors.New("duplicate index name")))
	assert.False(t, isAlreadyExists(errors.New("connection refused")))
}

func TestMemoryIndex_UpsertAndQuery(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex(3)
	require.NoError(t, idx.Provision(ctx))

	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "a", Embedding: []float32{1, 0, 0}}))
	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "b", Embedding: []float32{0, 1, 0}}))
	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "c", Embedding: []float32{0.9, 0.1, 0}}))

	results, err := idx.Query(ctx, []float32{0.95, 0.05, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Verify scores are in descending order
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
	}
	assert.Equal(t, "b", results[2].ID)
}

func TestMemoryIndex_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex(3)

	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "a", Embedding: []float32{1, 0, 0}}))
	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "a", Embedding: []float32{0, 1, 0}}))

	n, err := idx.Count(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, idx.Len())

	results, err := idx.Query(ctx, []float32{0, 1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Score, 0.001, "last write should win")
}

func TestMemoryIndex_CopiesInput(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex(3)

	vec := []float32{1, 0, 0}
	require.NoError(t, idx.Upsert(ctx, models.SimilarityRecord{ID: "a", Embedding: vec}))
	vec[0], vec[1] = 0, 1

	results, err := idx.Query(ctx, []float32{1, 0, 0}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, results[0].Score, 0.001)
}

func TestMemoryIndex_EmptyQuery(t *testing.T) {
	idx := NewMemoryIndex(3)
	results, err := idx.Query(context.Background(), []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	assert.Empty(t, results)

	n, err := idx.Count(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryIndex_Validation(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex(3)

	err := idx.Upsert(ctx, models.SimilarityRecord{ID: "a", Embedding: []float32{1, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")

	_, err = idx.Query(ctx, []float32{1, 0}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query dimension")

	_, err = idx.Query(ctx, []float32{1, 0, 0}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topK must be positive")
}
