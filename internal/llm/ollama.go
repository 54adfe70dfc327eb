package llm

import (
	"context"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// DefaultOllamaBaseURL is where a locally installed Ollama server listens.
const DefaultOllamaBaseURL = "http://localhost:11434"

// ollamaClient talks to a local Ollama server through its OpenAI-compatible
// /v1 endpoint, so the same chat model plumbing serves both variants.
type ollamaClient struct {
	cfg ClientConfig
}

func (c *ollamaClient) baseURL() string {
	if c.cfg.BaseURL == "" {
		return DefaultOllamaBaseURL
	}
	return strings.TrimSuffix(c.cfg.BaseURL, "/")
}

func (c *ollamaClient) ChatModel(ctx context.Context) (model.BaseChatModel, error) {
	maxTokens := c.cfg.maxTokens()
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: c.baseURL() + "/v1",
		// Ollama ignores the key but the OpenAI client requires one.
		APIKey:    "ollama",
		Model:     c.cfg.Model,
		MaxTokens: &maxTokens,
	})
}

func (c *ollamaClient) Validate() bool {
	if c.cfg.Model == "" {
		return false
	}
	healthy, _ := CheckServerHealth(c.baseURL())
	if !healthy {
		return false
	}
	return CheckServerModel(c.cfg.Model, c.baseURL())
}
