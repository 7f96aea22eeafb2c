// ABOUTME: Builds the relay's process-wide clients from configuration
// ABOUTME: Opens and provisions the configured vector index before any request is served
package app

import (
	"context"
	"fmt"

	"github.com/harper/bezzie/internal/charm"
	"github.com/harper/bezzie/internal/config"
	"github.com/harper/bezzie/internal/core"
	"github.com/harper/bezzie/internal/llm"
	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/storage"
	openai "github.com/sashabaranov/go-openai"
)

// App holds the singletons shared by every request
type App struct {
	Config  *config.Config
	LLM     *llm.OpenAIClient
	Index   storage.VectorIndex
	Service *core.Service
}

// New creates the LLM client, opens and provisions the index, and wires the service
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.RequireOpenAI(); err != nil {
		return nil, err
	}

	client, err := llm.NewOpenAIClientWithConfig(llmConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	index, err := OpenIndex(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := index.Provision(ctx); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to provision index %s: %w", cfg.IndexName, err)
	}
	logger.Info("index %s ready (backend=%s, dimension=%d)", cfg.IndexName, cfg.IndexBackend, cfg.VectorDimension)

	return &App{
		Config: cfg,
		LLM:    client,
		Index:  index,
		Service: core.NewService(client, index, core.AnalysisOptions{
			Temperature: float32(cfg.AnalysisTemperature),
			MaxTokens:   cfg.AnalysisMaxTokens,
		}),
	}, nil
}

// OpenIndex connects to the configured backend without provisioning it
func OpenIndex(ctx context.Context, cfg *config.Config) (storage.VectorIndex, error) {
	switch cfg.IndexBackend {
	case config.BackendMilvus:
		idx, err := storage.NewMilvusIndex(ctx, storage.MilvusConfig{
			Address:    cfg.MilvusAddress,
			APIKey:     cfg.MilvusAPIKey,
			Collection: cfg.IndexName,
			Dimension:  cfg.VectorDimension,
		})
		if err != nil {
			return nil, err
		}
		return idx, nil
	case config.BackendCharm:
		kv, err := charm.NewClient(charmConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to open charm kv: %w", err)
		}
		return storage.NewCharmIndex(kv, cfg.IndexName, cfg.VectorDimension), nil
	case config.BackendMemory:
		logger.Warn("using in-process vector index; vectors are lost on restart")
		return storage.NewMemoryIndex(cfg.VectorDimension), nil
	default:
		return nil, fmt.Errorf("unknown index backend %q", cfg.IndexBackend)
	}
}

// llmConfig starts from the client defaults and applies the configured overrides
func llmConfig(cfg *config.Config) *llm.ClientConfig {
	lc := llm.DefaultConfig(cfg.OpenAIKey)
	lc.BaseURL = cfg.OpenAIBaseURL
	if cfg.ChatModel != "" {
		lc.ChatModel = cfg.ChatModel
	}
	if cfg.EmbeddingModel != "" {
		lc.EmbeddingModel = openai.EmbeddingModel(cfg.EmbeddingModel)
	}
	if cfg.VectorDimension > 0 {
		lc.Dimension = cfg.VectorDimension
	}
	return lc
}

// charmConfig starts from the charm defaults and applies the configured host and database
func charmConfig(cfg *config.Config) *charm.Config {
	cc := charm.DefaultConfig()
	if cfg.CharmHost != "" {
		cc.Host = cfg.CharmHost
	}
	if cfg.CharmDBName != "" {
		cc.DBName = cfg.CharmDBName
	}
	return cc
}

// Close releases the index connection
func (a *App) Close() error {
	if a.Index == nil {
		return nil
	}
	return a.Index.Close()
}
