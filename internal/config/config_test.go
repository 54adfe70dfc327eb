package config

import (
	"path/filepath"
	"testing"

	"github.com/airquant/tradingflow/internal/llm"
)

func TestDefaultConfigWithRoot(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfigWithRoot(root)

	if cfg.ProjectDir != root {
		t.Errorf("project dir = %q", cfg.ProjectDir)
	}
	if cfg.ResultsDir != filepath.Join(root, "results") {
		t.Errorf("results dir = %q", cfg.ResultsDir)
	}
	if cfg.MaxDebateRounds < 1 || cfg.MaxRiskDiscussRounds < 1 {
		t.Error("round defaults must be at least 1")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "deepseek")
	t.Setenv("MAX_DEBATE_ROUNDS", "3")
	t.Setenv("N_GPU_LAYERS", "16")
	t.Setenv("TRADINGFLOW_DEBUG", "true")

	cfg := DefaultConfigWithRoot(t.TempDir())
	if cfg.LLMProvider != "deepseek" {
		t.Errorf("provider = %q", cfg.LLMProvider)
	}
	if cfg.MaxDebateRounds != 3 {
		t.Errorf("debate rounds = %d", cfg.MaxDebateRounds)
	}
	if cfg.GPULayers == nil || *cfg.GPULayers != 16 {
		t.Errorf("gpu layers = %v", cfg.GPULayers)
	}
	if !cfg.Debug {
		t.Error("debug flag not applied")
	}
}

func TestConfigEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_DEBATE_ROUNDS", "lots")

	cfg := DefaultConfigWithRoot(t.TempDir())
	if cfg.MaxDebateRounds != 1 {
		t.Errorf("malformed env should keep default, got %d", cfg.MaxDebateRounds)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfigWithRoot(t.TempDir())

	cfg.MaxDebateRounds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero debate rounds should fail validation")
	}

	cfg = DefaultConfigWithRoot(t.TempDir())
	cfg.LLMProvider = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("blank provider should fail validation")
	}
}

func TestClientConfigsCarryTierSettings(t *testing.T) {
	cfg := DefaultConfigWithRoot(t.TempDir())
	cfg.LLMProvider = llm.ProviderLlamaCpp
	cfg.QuickThinkLLM = "quick-model"
	cfg.DeepThinkLLM = "deep-model"
	cfg.LocalModelPathQuick = "/models/quick.gguf"
	cfg.LocalModelPathDeep = "/models/deep.gguf"
	gpuLayers := 8
	cfg.GPULayers = &gpuLayers

	quick := cfg.QuickThinkClient()
	deep := cfg.DeepThinkClient()

	if quick.Model != "quick-model" || deep.Model != "deep-model" {
		t.Error("model ids not split by tier")
	}
	if quick.ModelPath != "/models/quick.gguf" || deep.ModelPath != "/models/deep.gguf" {
		t.Error("model paths not split by tier")
	}
	if quick.GPULayers == nil || *quick.GPULayers != 8 {
		t.Error("gpu layers not carried through")
	}
}

func TestGPULayersOmittedVersusExplicitZero(t *testing.T) {
	t.Setenv("N_GPU_LAYERS", "")
	cfg := DefaultConfigWithRoot(t.TempDir())
	if cfg.GPULayers != nil {
		t.Fatalf("omitted gpu layers should stay unset, got %d", *cfg.GPULayers)
	}
	if cfg.QuickThinkClient().GPULayers != nil {
		t.Fatal("omitted gpu layers must reach the client config as unset")
	}

	t.Setenv("N_GPU_LAYERS", "0")
	cfg = DefaultConfigWithRoot(t.TempDir())
	got := cfg.QuickThinkClient().GPULayers
	if got == nil || *got != 0 {
		t.Fatalf("explicit 0 lost: %v", got)
	}
}

func TestAPIKeySelection(t *testing.T) {
	cfg := DefaultConfigWithRoot(t.TempDir())
	cfg.OpenAIAPIKey = "sk-openai"
	cfg.DeepSeekAPIKey = "sk-deepseek"

	cfg.LLMProvider = llm.ProviderOpenAI
	if cfg.QuickThinkClient().APIKey != "sk-openai" {
		t.Error("openai provider should use the openai key")
	}

	cfg.LLMProvider = llm.ProviderDeepSeek
	if cfg.QuickThinkClient().APIKey != "sk-deepseek" {
		t.Error("deepseek provider should use the deepseek key")
	}
}
