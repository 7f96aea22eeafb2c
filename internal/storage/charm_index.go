// ABOUTME: Vector index backed by Charm Cloud KV
// ABOUTME: Stores one JSON record per id and ranks with a cosine scan over the index's keys
package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harper/bezzie/internal/charm"
	"github.com/harper/bezzie/internal/models"
)

// KeyValueStore is the subset of the Charm client the index needs
type KeyValueStore interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
	Sync() error
	Close() error
}

// indexMarker records the parameters an index was created with
type indexMarker struct {
	Name      string    `json:"name"`
	Dimension int       `json:"dimension"`
	Metric    string    `json:"metric"`
	CreatedAt time.Time `json:"created_at"`
}

// storedVector is the JSON document kept under each vector key
type storedVector struct {
	ID        string    `json:"id"`
	Vector    []float32 `json:"vector"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharmIndex manages embedding storage and similarity search using Charm KV
type CharmIndex struct {
	kv        KeyValueStore
	name      string
	dimension int
	mu        sync.Mutex
}

// NewCharmIndex creates a CharmIndex over the given store
func NewCharmIndex(store KeyValueStore, name string, dimension int) *CharmIndex {
	return &CharmIndex{
		kv:        store,
		name:      name,
		dimension: dimension,
	}
}

// Provision pulls remote state and writes the index marker if it is missing.
// Two instances racing here write identical markers, so the race is harmless.
func (ci *CharmIndex) Provision(ctx context.Context) error {
	ci.mu.Lock()
	defer ci.mu.Unlock()

	if err := ci.kv.Sync(); err != nil {
		return fmt.Errorf("failed to sync charm kv: %w", err)
	}

	keys, err := ci.kv.ListKeys(charm.IndexKey(ci.name))
	if err != nil {
		return fmt.Errorf("failed to describe index %s: %w", ci.name, err)
	}

	for _, key := range keys {
		if key != charm.IndexKey(ci.name) {
			continue
		}
		var marker indexMarker
		if err := ci.kv.GetJSON(key, &marker); err != nil {
			return fmt.Errorf("failed to read index marker %s: %w", key, err)
		}
		if marker.Dimension != ci.dimension {
			return fmt.Errorf("index %s exists with dimension %d, expected %d", ci.name, marker.Dimension, ci.dimension)
		}
		return nil
	}

	marker := indexMarker{
		Name:      ci.name,
		Dimension: ci.dimension,
		Metric:    "cosine",
		CreatedAt: time.Now().UTC(),
	}
	if err := ci.kv.SetJSON(charm.IndexKey(ci.name), marker); err != nil {
		return fmt.Errorf("failed to create index %s: %w", ci.name, err)
	}
	return nil
}

// Upsert saves an embedding vector to Charm KV, replacing the previous one for the same id
func (ci *CharmIndex) Upsert(ctx context.Context, record models.SimilarityRecord) error {
	if err := record.ValidateDimension(ci.dimension); err != nil {
		return err
	}

	doc := storedVector{
		ID:        record.ID,
		Vector:    record.Embedding,
		UpdatedAt: time.Now().UTC(),
	}
	return ci.kv.SetJSON(charm.VectorKey(ci.name, record.ID), doc)
}

// Query performs cosine similarity search across all vectors of the index
func (ci *CharmIndex) Query(ctx context.Context, vector []float32, topK int) ([]models.SimilarityMatch, error) {
	if err := validateQuery(vector, topK, ci.dimension); err != nil {
		return nil, err
	}

	keys, err := ci.kv.ListKeys(charm.VectorKeyPrefix(ci.name))
	if err != nil {
		return nil, fmt.Errorf("failed to list vector keys: %w", err)
	}

	candidates := make(map[string][]float32, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var doc storedVector
		if err := ci.kv.GetJSON(key, &doc); err != nil {
			return nil, fmt.Errorf("failed to read vector %s: %w", key, err)
		}
		candidates[doc.ID] = doc.Vector
	}

	return rankByCosine(vector, candidates, topK), nil
}

func (ci *CharmIndex) Count(ctx context.Context, id string) (int, error) {
	want := charm.VectorKey(ci.name, id)
	keys, err := ci.kv.ListKeys(want)
	if err != nil {
		return 0, fmt.Errorf("failed to list vector keys: %w", err)
	}

	n := 0
	for _, key := range keys {
		if key == want {
			n++
		}
	}
	return n, nil
}

func (ci *CharmIndex) Close() error {
	return ci.kv.Close()
}
