// Package llm provides a uniform abstraction over interchangeable chat
// inference backends: remote APIs (OpenAI, DeepSeek), a local Ollama server,
// in-process GGUF model files via llama.cpp, and a deterministic mock used
// to run the whole pipeline without a real model.
package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// Client is one inference backend variant behind a single capability
// contract. Clients are constructed once per run and never mutated.
type Client interface {
	// ChatModel returns the chat-capable handle stage runners use for a
	// single request/response exchange.
	ChatModel(ctx context.Context) (model.BaseChatModel, error)

	// Validate reports whether the configuration is usable without issuing
	// a real inference call (file exists, server reachable, and so on).
	Validate() bool
}

// ClientConfig selects a backend variant and carries its options.
type ClientConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string

	// llama.cpp options. Zero values fall back to the defaults below,
	// matching the behavior when the option is omitted entirely.
	ModelPath   string
	GPULayers   *int
	ContextSize int
	BatchSize   int

	MaxTokens int
}

const (
	defaultGPULayers   = -1
	defaultContextSize = 4096
	defaultBatchSize   = 512
	defaultMaxTokens   = 8192
)

func (c ClientConfig) gpuLayers() int {
	if c.GPULayers == nil {
		return defaultGPULayers
	}
	return *c.GPULayers
}

func (c ClientConfig) contextSize() int {
	if c.ContextSize <= 0 {
		return defaultContextSize
	}
	return c.ContextSize
}

func (c ClientConfig) batchSize() int {
	if c.BatchSize <= 0 {
		return defaultBatchSize
	}
	return c.BatchSize
}

func (c ClientConfig) maxTokens() int {
	if c.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return c.MaxTokens
}
