package llm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// llamaCppClient runs inference directly from a GGUF model file by invoking
// the llama.cpp CLI. No server process is required.
type llamaCppClient struct {
	cfg ClientConfig
	bin string
}

func (c *llamaCppClient) ChatModel(ctx context.Context) (model.BaseChatModel, error) {
	path := c.cfg.ModelPath
	if path == "" {
		return nil, fmt.Errorf("%w: model path for llamacpp provider", ErrConfig)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gguf") {
		return nil, fmt.Errorf("%w: %s is not a .gguf file", ErrInvalidPath, path)
	}
	return &llamaCppChatModel{
		bin:         c.bin,
		modelPath:   path,
		gpuLayers:   c.cfg.gpuLayers(),
		contextSize: c.cfg.contextSize(),
		batchSize:   c.cfg.batchSize(),
		maxTokens:   c.cfg.maxTokens(),
	}, nil
}

func (c *llamaCppClient) Validate() bool {
	ok, _ := ValidateModelPath(c.cfg.ModelPath)
	return ok
}

// llamaCppChatModel shells out to llama-cli per exchange. Calls block for the
// duration of the subprocess; cancellation comes from ctx.
type llamaCppChatModel struct {
	bin         string
	modelPath   string
	gpuLayers   int
	contextSize int
	batchSize   int
	maxTokens   int
}

func (m *llamaCppChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	cmd := exec.CommandContext(ctx, m.bin,
		"-m", m.modelPath,
		"-p", renderPrompt(input),
		"-n", strconv.Itoa(m.maxTokens),
		"--n-gpu-layers", strconv.Itoa(m.gpuLayers),
		"-c", strconv.Itoa(m.contextSize),
		"-b", strconv.Itoa(m.batchSize),
		"--no-display-prompt",
		"--simple-io",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("llama.cpp inference failed: %w", err)
	}
	return schema.AssistantMessage(strings.TrimSpace(string(out)), nil), nil
}

func (m *llamaCppChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func renderPrompt(input []*schema.Message) string {
	var b strings.Builder
	for _, msg := range input {
		if msg == nil {
			continue
		}
		b.WriteString(string(msg.Role))
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}
	b.WriteString("assistant: ")
	return b.String()
}
