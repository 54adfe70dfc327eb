package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/airquant/tradingflow/internal/llm"
)

// Config holds everything a single pipeline run needs. It is created once
// per run and never mutated afterwards.
type Config struct {
	ProjectDir string `json:"project_dir"`
	ResultsDir string `json:"results_dir"`

	LLMProvider   string `json:"llm_provider"`
	DeepThinkLLM  string `json:"deep_think_llm"`
	QuickThinkLLM string `json:"quick_think_llm"`
	BackendURL    string `json:"backend_url"`

	MaxDebateRounds      int `json:"max_debate_rounds"`
	MaxRiskDiscussRounds int `json:"max_risk_discuss_rounds"`

	// llama.cpp provider options. GPULayers stays a pointer so an explicit 0
	// (CPU only) is distinguishable from omitted (full offload).
	LocalModelPathQuick string `json:"local_model_path_quick"`
	LocalModelPathDeep  string `json:"local_model_path_deep"`
	GPULayers           *int   `json:"n_gpu_layers,omitempty"`
	ContextSize         int    `json:"n_ctx"`
	BatchSize           int    `json:"n_batch"`

	Debug bool `json:"debug"`

	OpenAIAPIKey   string `json:"openai_api_key"`
	DeepSeekAPIKey string `json:"deepseek_api_key"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()
	return DefaultConfigWithRoot(currentDir)
}

func DefaultConfigWithRoot(root string) *Config {
	cfg := &Config{
		ProjectDir: root,
		ResultsDir: filepath.Join(root, "results"),

		LLMProvider:   "openai",
		DeepThinkLLM:  "o4-mini",
		QuickThinkLLM: "gpt-4o-mini",
		BackendURL:    "https://api.openai.com/v1",

		MaxDebateRounds:      1,
		MaxRiskDiscussRounds: 1,

		ContextSize: 4096,
		BatchSize:   512,
	}

	_ = godotenv.Load()
	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("RESULTS_DIR"); val != "" {
		c.ResultsDir = val
	}

	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("DEEP_THINK_LLM"); val != "" {
		c.DeepThinkLLM = val
	}
	if val := os.Getenv("QUICK_THINK_LLM"); val != "" {
		c.QuickThinkLLM = val
	}
	if val := os.Getenv("BACKEND_URL"); val != "" {
		c.BackendURL = val
	}

	if val := os.Getenv("MAX_DEBATE_ROUNDS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxDebateRounds = v
		}
	}
	if val := os.Getenv("MAX_RISK_DISCUSS_ROUNDS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxRiskDiscussRounds = v
		}
	}

	if val := os.Getenv("LOCAL_MODEL_PATH_QUICK"); val != "" {
		c.LocalModelPathQuick = val
	}
	if val := os.Getenv("LOCAL_MODEL_PATH_DEEP"); val != "" {
		c.LocalModelPathDeep = val
	}
	if val := os.Getenv("N_GPU_LAYERS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.GPULayers = &v
		}
	}
	if val := os.Getenv("N_CTX"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.ContextSize = v
		}
	}
	if val := os.Getenv("N_BATCH"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.BatchSize = v
		}
	}

	if val := os.Getenv("TRADINGFLOW_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}

	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLMProvider) == "" {
		return fmt.Errorf("llm_provider must be set")
	}
	if c.MaxDebateRounds < 1 {
		return fmt.Errorf("max_debate_rounds must be at least 1, got %d", c.MaxDebateRounds)
	}
	if c.MaxRiskDiscussRounds < 1 {
		return fmt.Errorf("max_risk_discuss_rounds must be at least 1, got %d", c.MaxRiskDiscussRounds)
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.ProjectDir, c.ResultsDir} {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) apiKey() string {
	if strings.ToLower(c.LLMProvider) == llm.ProviderDeepSeek {
		return c.DeepSeekAPIKey
	}
	return c.OpenAIAPIKey
}

func (c *Config) clientConfig(model, modelPath string) llm.ClientConfig {
	return llm.ClientConfig{
		Provider:    c.LLMProvider,
		Model:       model,
		BaseURL:     c.BackendURL,
		APIKey:      c.apiKey(),
		ModelPath:   modelPath,
		GPULayers:   c.GPULayers,
		ContextSize: c.ContextSize,
		BatchSize:   c.BatchSize,
	}
}

// QuickThinkClient is the client configuration for the fast tier used by
// analysts, researchers, and the trader.
func (c *Config) QuickThinkClient() llm.ClientConfig {
	return c.clientConfig(c.QuickThinkLLM, c.LocalModelPathQuick)
}

// DeepThinkClient is the client configuration for the reasoning tier used by
// the research manager and the risk judge.
func (c *Config) DeepThinkClient() llm.ClientConfig {
	return c.clientConfig(c.DeepThinkLLM, c.LocalModelPathDeep)
}
