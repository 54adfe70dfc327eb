package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// remoteClient talks to a hosted chat completion API.
type remoteClient struct {
	cfg ClientConfig
}

func (c *remoteClient) ChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if c.cfg.Provider == ProviderDeepSeek {
		return deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			BaseURL:   c.cfg.BaseURL,
			APIKey:    c.cfg.APIKey,
			Model:     c.cfg.Model,
			MaxTokens: c.cfg.maxTokens(),
		})
	}
	maxTokens := c.cfg.maxTokens()
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:   c.cfg.BaseURL,
		APIKey:    c.cfg.APIKey,
		Model:     c.cfg.Model,
		MaxTokens: &maxTokens,
	})
}

func (c *remoteClient) Validate() bool {
	return c.cfg.Model != "" && c.cfg.APIKey != ""
}
