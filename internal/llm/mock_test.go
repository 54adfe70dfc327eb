package llm

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestMockChatModelGenerate(t *testing.T) {
	cm := &MockChatModel{}
	msgs := []*schema.Message{
		schema.SystemMessage("You are a bull analyst building the investment case."),
		schema.UserMessage("Make your argument."),
	}

	out, err := cm.Generate(context.Background(), msgs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Role != schema.Assistant {
		t.Fatalf("role = %v, want assistant", out.Role)
	}
	if out.Content != mockBullArgument {
		t.Fatalf("content routed incorrectly")
	}
	if len(out.ToolCalls) != 0 {
		t.Fatal("mock model must not emit tool calls")
	}
}

func TestMockChatModelStream(t *testing.T) {
	cm := &MockChatModel{}
	reader, err := cm.Stream(context.Background(), []*schema.Message{
		schema.SystemMessage("extract the investment decision from this text"),
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	defer reader.Close()

	msg, err := reader.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if msg.Content != "BUY" {
		t.Fatalf("streamed content = %q, want BUY", msg.Content)
	}
}

func TestPromptTextJoinsRoles(t *testing.T) {
	got := promptText([]*schema.Message{
		nil,
		schema.SystemMessage("first"),
		schema.UserMessage("second"),
	})
	if got != "first second" {
		t.Fatalf("promptText = %q", got)
	}
}
