// ABOUTME: OpenAI client for chat completions and embeddings
// ABOUTME: Uses gpt-4o-mini for completions and text-embedding-3-small for 1536-dim embeddings (configurable)
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel openai.EmbeddingModel
	Dimension      int
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Dimension:      models.DefaultEmbeddingDimension,
	}
}

// OpenAIClient wraps the OpenAI API client.
// There is no retry loop: every provider failure is returned to the caller as-is.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	dimension      int
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	oc := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		oc.BaseURL = config.BaseURL
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := config.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	dimension := config.Dimension
	if dimension <= 0 {
		dimension = models.DefaultEmbeddingDimension
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(oc),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		dimension:      dimension,
	}, nil
}

// Complete sends the messages to the chat completion endpoint and returns the first choice's text
func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage, opts models.CompletionOptions) (string, error) {
	model := opts.Model
	if model == "" {
		model = c.chatModel
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(messages),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	logger.Debug("chat completion: model=%s messages=%d max_tokens=%d", model, len(messages), opts.MaxTokens)

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no completion choices returned")
	}

	logger.Debug("chat completion usage: prompt=%d completion=%d finish=%s",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

// Embed returns the embedding vector for text, checked against the configured dimension
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	req := openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: c.embeddingModel,
	}
	// Only the text-embedding-3 family accepts a requested output size
	if strings.HasPrefix(string(c.embeddingModel), "text-embedding-3") {
		req.Dimensions = c.dimension
	}

	resp, err := c.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("create embedding: no embeddings returned")
	}

	vector := resp.Data[0].Embedding
	if len(vector) != c.dimension {
		return nil, fmt.Errorf("create embedding: expected %d dimensions, got %d", c.dimension, len(vector))
	}
	return vector, nil
}

func toOpenAIMessages(messages []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == models.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out[i] = openai.ChatCompletionMessage{Role: role, Content: m.Content}
	}
	return out
}
