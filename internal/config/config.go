// ABOUTME: Centralized configuration for the bezzie relay
// ABOUTME: Loads from environment variables (and .env) with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/harper/bezzie/internal/charm"
	"github.com/joho/godotenv"
)

// Supported vector index backends
const (
	BackendMilvus = "milvus"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Config holds all configuration for the relay
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	OpenAIBaseURL  string
	ChatModel      string
	EmbeddingModel string

	// Analysis completion limits
	AnalysisTemperature float64
	AnalysisMaxTokens   int

	// Vector index settings
	IndexBackend    string
	IndexName       string
	VectorDimension int
	MilvusAddress   string
	MilvusAPIKey    string

	// Charm settings (charm backend only)
	CharmHost   string
	CharmDBName string

	// HTTP settings
	ListenAddr string
}

// Load reads .env (if present) and then configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is normal in production
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		ChatModel:           getEnv("BEZZIE_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("BEZZIE_EMBEDDING_MODEL", "text-embedding-3-small"),
		AnalysisTemperature: getEnvFloat("ANALYSIS_TEMPERATURE", 0.5),
		AnalysisMaxTokens:   getEnvInt("ANALYSIS_MAX_TOKENS", 1024),
		IndexBackend:        getEnv("INDEX_BACKEND", BackendMilvus),
		IndexName:           getEnv("INDEX_NAME", "bezzie_users"),
		VectorDimension:     getEnvInt("VECTOR_DIMENSION", 1536),
		MilvusAddress:       getEnv("MILVUS_ADDRESS", "localhost:19530"),
		MilvusAPIKey:        os.Getenv("MILVUS_API_KEY"),
		CharmHost:           getEnv("CHARM_HOST", charm.DefaultHost),
		CharmDBName:         getEnv("CHARM_DB", charm.DefaultDBName),
		ListenAddr:          getEnv("LISTEN_ADDR", "0.0.0.0:8000"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.IndexBackend {
	case BackendMilvus, BackendCharm, BackendMemory:
	default:
		return fmt.Errorf("INDEX_BACKEND must be one of milvus, charm, memory, got %q", c.IndexBackend)
	}
	if c.IndexName == "" {
		return fmt.Errorf("INDEX_NAME must not be empty")
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.AnalysisTemperature < 0 || c.AnalysisTemperature > 2 {
		return fmt.Errorf("ANALYSIS_TEMPERATURE must be 0-2, got %f", c.AnalysisTemperature)
	}
	if c.AnalysisMaxTokens <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_TOKENS must be positive, got %d", c.AnalysisMaxTokens)
	}
	return nil
}

// RequireOpenAI reports a missing completion-provider key.
// Commands that never call the provider (provision, version) skip this check.
func (c *Config) RequireOpenAI() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
