package llm

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// MockClient backs the whole pipeline with canned responses so integration
// runs are deterministic and need no model or network at all.
type MockClient struct{}

func (MockClient) ChatModel(ctx context.Context) (model.BaseChatModel, error) {
	return &MockChatModel{}, nil
}

func (MockClient) Validate() bool { return true }

// MockChatModel detects the agent role from the prompt text and replies with
// the matching canned analysis. It never returns tool calls, so agents
// proceed straight to their report output.
type MockChatModel struct{}

func (m *MockChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	return schema.AssistantMessage(Route(promptText(input)), nil), nil
}

func (m *MockChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// promptText flattens every message's content into the single string the
// router matches against.
func promptText(input []*schema.Message) string {
	parts := make([]string, 0, len(input))
	for _, msg := range input {
		if msg == nil {
			continue
		}
		if msg.Content != "" {
			parts = append(parts, msg.Content)
		}
		for _, part := range msg.MultiContent {
			if part.Type == schema.ChatMessagePartTypeText && part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}
