// ABOUTME: Tests for application wiring from configuration
// ABOUTME: Uses the in-process index so no external service is contacted
package app

import (
	"context"
	"testing"

	"github.com/harper/bezzie/internal/charm"
	"github.com/harper/bezzie/internal/config"
	"github.com/harper/bezzie/internal/llm"
	"github.com/harper/bezzie/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		OpenAIKey:           "sk-test",
		OpenAIBaseURL:       "http://127.0.0.1:1/v1",
		ChatModel:           "gpt-4o-mini",
		EmbeddingModel:      "text-embedding-3-small",
		AnalysisTemperature: 0.5,
		AnalysisMaxTokens:   1024,
		IndexBackend:        config.BackendMemory,
		IndexName:           "test_users",
		VectorDimension:     1536,
	}
}

func TestNew_MemoryBackend(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.LLM)
	assert.NotNil(t, a.Service)
	assert.IsType(t, &storage.MemoryIndex{}, a.Index)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := memoryConfig()
	cfg.OpenAIKey = ""

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestOpenIndex_UnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.IndexBackend = "pinecone"

	_, err := OpenIndex(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown index backend")
}

func TestClose_NilIndex(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}

func TestLLMConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.EmbeddingModel = "text-embedding-3-large"
	cfg.VectorDimension = 3072

	lc := llmConfig(cfg)
	assert.Equal(t, "sk-test", lc.APIKey)
	assert.Equal(t, "http://127.0.0.1:1/v1", lc.BaseURL)
	assert.Equal(t, "gpt-4o-mini", lc.ChatModel)
	assert.Equal(t, "text-embedding-3-large", string(lc.EmbeddingModel))
	assert.Equal(t, 3072, lc.Dimension)

	lc = llmConfig(&config.Config{OpenAIKey: "sk-test"})
	assert.Equal(t, llm.DefaultChatModel, lc.ChatModel)
	assert.Equal(t, llm.DefaultEmbeddingModel, lc.EmbeddingModel)
	assert.Equal(t, 1536, lc.Dimension)
}

func TestCharmConfig(t *testing.T) {
	cc := charmConfig(&config.Config{CharmHost: "charm.example.com", CharmDBName: "staging"})
	assert.Equal(t, "charm.example.com", cc.Host)
	assert.Equal(t, "staging", cc.DBName)
	assert.True(t, cc.AutoSync)

	cc = charmConfig(&config.Config{})
	assert.Equal(t, charm.DefaultHost, cc.Host)
	assert.Equal(t, charm.DefaultDBName, cc.DBName)
}
