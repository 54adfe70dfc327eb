package llm

import (
	"fmt"
	"os/exec"
	"strings"
)

// Recognized provider names. The variant set is closed: new backends are
// added here, never discovered at runtime.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderOllama   = "ollama"
	ProviderLlamaCpp = "llamacpp"
	ProviderMock     = "mock"
)

// llamaBinary is the llama.cpp CLI used for in-process GGUF inference.
// Package variable so tests can point it at a nonexistent tool.
var llamaBinary = "llama-cli"

// NewClient constructs the client for the configured provider. Misconfigured
// or unavailable backends fail here with a named error; the pipeline cannot
// start without a usable client.
func NewClient(cfg ClientConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, ProviderDeepSeek:
		if cfg.Model == "" {
			return nil, fmt.Errorf("%w: model id for provider %q", ErrConfig, cfg.Provider)
		}
		return &remoteClient{cfg: cfg}, nil

	case ProviderOllama:
		if cfg.Model == "" {
			return nil, fmt.Errorf("%w: model id for provider %q", ErrConfig, cfg.Provider)
		}
		return &ollamaClient{cfg: cfg}, nil

	case ProviderLlamaCpp:
		if cfg.ModelPath == "" {
			return nil, fmt.Errorf("%w: model path for llamacpp provider (set local_model_path_quick / local_model_path_deep)", ErrConfig)
		}
		bin, err := exec.LookPath(llamaBinary)
		if err != nil {
			return nil, fmt.Errorf("%w: %s not found in PATH, install llama.cpp from https://github.com/ggml-org/llama.cpp", ErrDependencyMissing, llamaBinary)
		}
		return &llamaCppClient{cfg: cfg, bin: bin}, nil

	case ProviderMock:
		return &MockClient{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
