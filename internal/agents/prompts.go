package agents

import (
	"context"
	"embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed prompts
var promptFiles embed.FS

func loadPrompt(name string) (string, error) {
	content, err := promptFiles.ReadFile(fmt.Sprintf("prompts/%s.md", name))
	if err != nil {
		return "", fmt.Errorf("load prompt %s: %w", name, err)
	}
	return string(content), nil
}

// formatMessages renders an embedded prompt template into the system message
// for one exchange.
func formatMessages(ctx context.Context, name string, vars map[string]any) ([]*schema.Message, error) {
	tpl, err := loadPrompt(name)
	if err != nil {
		return nil, err
	}
	template := prompt.FromMessages(schema.FString, schema.SystemMessage(tpl))
	return template.Format(ctx, vars)
}
