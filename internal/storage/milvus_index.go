// ABOUTME: Vector index backed by Milvus / Zilliz Cloud
// ABOUTME: One collection (VarChar id primary key, float vector) with a cosine AUTOINDEX
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/models"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
)

// Field names for the Milvus collection
const (
	MilvusFieldID     = "id"
	MilvusFieldVector = "vector"

	milvusIDMaxLength = 512
)

// MilvusConfig holds connection settings for the managed index
type MilvusConfig struct {
	Address    string
	APIKey     string
	Collection string
	Dimension  int
}

// MilvusIndex is a VectorIndex over a single Milvus collection
type MilvusIndex struct {
	client     *milvusclient.Client
	collection string
	dimension  int
}

// NewMilvusIndex connects to Milvus. The collection is not touched until Provision.
func NewMilvusIndex(ctx context.Context, cfg MilvusConfig) (*MilvusIndex, error) {
	if cfg.Dimension <= 0 {
		cfg.Dimension = models.DefaultEmbeddingDimension
	}

	logger.Info("Connecting to Milvus at %s (collection %s, dimension %d)", cfg.Address, cfg.Collection, cfg.Dimension)

	c, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: cfg.Address,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Milvus: %w", err)
	}

	return &MilvusIndex{
		client:     c,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
	}, nil
}

// Provision creates the collection, its vector index, and loads it.
// Another instance may create the collection between our check and create; an
// "already exists" answer from Milvus counts as success.
func (m *MilvusIndex) Provision(ctx context.Context) error {
	exists, err := m.client.HasCollection(ctx, milvusclient.NewHasCollectionOption(m.collection))
	if err != nil {
		return fmt.Errorf("failed to check if collection exists: %w", err)
	}

	if !exists {
		schema := entity.NewSchema().
			WithName(m.collection).
			WithDescription("Per-user analysis embeddings for similarity lookup").
			WithField(entity.NewField().
				WithName(MilvusFieldID).
				WithDataType(entity.FieldTypeVarChar).
				WithIsPrimaryKey(true).
				WithMaxLength(milvusIDMaxLength)).
			WithField(entity.NewField().
				WithName(MilvusFieldVector).
				WithDataType(entity.FieldTypeFloatVector).
				WithDim(int64(m.dimension)))

		created, err := createOutcome(m.client.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(m.collection, schema)))
		if err != nil {
			return fmt.Errorf("failed to create collection %s: %w", m.collection, err)
		}
		if created {
			logger.Info("Created Milvus collection %s", m.collection)
		} else {
			logger.Info("Milvus collection %s was created concurrently", m.collection)
		}
	}

	// Identical index definitions are accepted by Milvus, so this is safe on every start
	idxTask, err := m.client.CreateIndex(ctx, milvusclient.NewCreateIndexOption(m.collection, MilvusFieldVector, index.NewAutoIndex(entity.COSINE)))
	created, err := createOutcome(err)
	if err != nil {
		return fmt.Errorf("failed to create index on vector field: %w", err)
	}
	if created {
		if err := idxTask.Await(ctx); err != nil {
			return fmt.Errorf("failed waiting for vector index: %w", err)
		}
	}

	loadTask, err := m.client.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(m.collection))
	if err != nil {
		return fmt.Errorf("failed to load collection %s: %w", m.collection, err)
	}
	if err := loadTask.Await(ctx); err != nil {
		return fmt.Errorf("failed waiting for collection %s to load: %w", m.collection, err)
	}

	logger.Info("Milvus collection %s ready", m.collection)
	return nil
}

// Upsert writes the vector under its id; Milvus replaces any previous row with the same primary key
func (m *MilvusIndex) Upsert(ctx context.Context, record models.SimilarityRecord) error {
	if err := record.ValidateDimension(m.dimension); err != nil {
		return err
	}

	opt := milvusclient.NewColumnBasedInsertOption(m.collection).
		WithVarcharColumn(MilvusFieldID, []string{record.ID}).
		WithFloatVectorColumn(MilvusFieldVector, m.dimension, [][]float32{record.Embedding})

	if _, err := m.client.Upsert(ctx, opt); err != nil {
		return fmt.Errorf("failed to upsert vector %s: %w", record.ID, err)
	}
	return nil
}

// Query searches with strong consistency so a vector upserted by the same request is visible
func (m *MilvusIndex) Query(ctx context.Context, vector []float32, topK int) ([]models.SimilarityMatch, error) {
	if err := validateQuery(vector, topK, m.dimension); err != nil {
		return nil, err
	}

	opt := milvusclient.NewSearchOption(m.collection, topK, []entity.Vector{entity.FloatVector(vector)}).
		WithANNSField(MilvusFieldVector).
		WithConsistencyLevel(entity.ClStrong)

	resultSets, err := m.client.Search(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	if len(resultSets) == 0 {
		return []models.SimilarityMatch{}, nil
	}
	rs := resultSets[0]
	return toMatches(rs.IDs, rs.Scores, rs.ResultCount)
}

// createOutcome interprets the error from a create call. A target that already
// exists (another instance won the race) is reported as not created, without error.
func createOutcome(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case isAlreadyExists(err):
		return false, nil
	default:
		return false, err
	}
}

// toMatches converts one search result set into ranked matches, best first as Milvus returns them
func toMatches(ids column.Column, scores []float32, count int) ([]models.SimilarityMatch, error) {
	if count == 0 || ids == nil {
		return []models.SimilarityMatch{}, nil
	}
	if len(scores) < count || ids.Len() < count {
		return nil, fmt.Errorf("malformed search result: %d results, %d ids, %d scores", count, ids.Len(), len(scores))
	}

	matches := make([]models.SimilarityMatch, 0, count)
	for i := 0; i < count; i++ {
		id, err := ids.GetAsString(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read result id %d: %w", i, err)
		}
		matches = append(matches, models.SimilarityMatch{ID: id, Score: scores[i]})
	}
	return matches, nil
}

func (m *MilvusIndex) Count(ctx context.Context, id string) (int, error) {
	opt := milvusclient.NewQueryOption(m.collection).
		WithFilter(fmt.Sprintf("%s == %s", MilvusFieldID, strconv.Quote(id))).
		WithOutputFields("count(*)").
		WithConsistencyLevel(entity.ClStrong)

	rs, err := m.client.Query(ctx, opt)
	if err != nil {
		return 0, fmt.Errorf("failed to count vectors for %s: %w", id, err)
	}

	col := rs.GetColumn("count(*)")
	if col == nil || col.Len() == 0 {
		return 0, nil
	}
	n, err := col.GetAsInt64(0)
	if err != nil {
		return 0, fmt.Errorf("failed to read count for %s: %w", id, err)
	}
	return int(n), nil
}

func (m *MilvusIndex) Close() error {
	return m.client.Close(context.Background())
}
