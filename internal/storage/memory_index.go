// ABOUTME: In-process vector index for local development and tests
// ABOUTME: Holds vectors in a map and ranks them with a cosine scan
package storage

import (
	"context"
	"sync"

	"github.com/harper/bezzie/internal/models"
)

// MemoryIndex is a VectorIndex that lives only as long as the process
type MemoryIndex struct {
	dimension int

	mu      sync.RWMutex
	vectors map[string][]float32
}

// NewMemoryIndex creates an empty in-process index for vectors of the given dimension
func NewMemoryIndex(dimension int) *MemoryIndex {
	return &MemoryIndex{
		dimension: dimension,
		vectors:   make(map[string][]float32),
	}
}

// Provision is a no-op; the map exists from construction
func (m *MemoryIndex) Provision(ctx context.Context) error {
	return nil
}

func (m *MemoryIndex) Upsert(ctx context.Context, record models.SimilarityRecord) error {
	if err := record.ValidateDimension(m.dimension); err != nil {
		return err
	}

	vec := make([]float32, len(record.Embedding))
	copy(vec, record.Embedding)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.vectors[record.ID] = vec
	return nil
}

func (m *MemoryIndex) Query(ctx context.Context, vector []float32, topK int) ([]models.SimilarityMatch, error) {
	if err := validateQuery(vector, topK, m.dimension); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return rankByCosine(vector, m.vectors, topK), nil
}

func (m *MemoryIndex) Count(ctx context.Context, id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.vectors[id]; ok {
		return 1, nil
	}
	return 0, nil
}

// Len returns the total number of stored vectors
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vectors)
}

func (m *MemoryIndex) Close() error {
	return nil
}
