package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/airquant/tradingflow/internal/models"
)

const extractSystemPrompt = "You are an efficient assistant designed to analyze paragraphs or financial reports provided by a group of analysts. Your task is to extract the investment decision: SELL, BUY, or HOLD. Provide only the extracted decision (SELL, BUY, or HOLD) as your output, without adding any additional text or information."

// SignalExtractor classifies free-form decision text into BUY/SELL/HOLD with
// one dedicated exchange.
type SignalExtractor struct {
	cm model.BaseChatModel
}

func NewSignalExtractor(cm model.BaseChatModel) *SignalExtractor {
	return &SignalExtractor{cm: cm}
}

// Extract returns the classified signal along with the raw model reply. ok is
// false when the reply matches none of the three tokens; the caller records
// that as a defect rather than failing the run.
func (s *SignalExtractor) Extract(ctx context.Context, fullSignal string) (sig models.Signal, raw string, ok bool, err error) {
	msgs := []*schema.Message{
		schema.SystemMessage(extractSystemPrompt),
		schema.UserMessage(fullSignal),
	}
	out, err := s.cm.Generate(ctx, msgs)
	if err != nil {
		return "", "", false, fmt.Errorf("signal extraction: %w", err)
	}
	raw = strings.TrimSpace(out.Content)
	sig, ok = models.ParseSignal(raw)
	return sig, raw, ok, nil
}
