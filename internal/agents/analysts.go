package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/airquant/tradingflow/internal/models"
)

// Analyst identifiers as selected in configuration.
const (
	AnalystMarket       = "market"
	AnalystSocial       = "social"
	AnalystNews         = "news"
	AnalystFundamentals = "fundamentals"
)

// AllAnalysts is the full analyst set in canonical order.
var AllAnalysts = []string{AnalystMarket, AnalystSocial, AnalystNews, AnalystFundamentals}

// analystAgent produces exactly one report field from one independent
// exchange. Analysts never read each other's output, so any subset of them
// may run concurrently.
type analystAgent struct {
	name       string
	promptName string
	report     func(*models.TradingState) *string
	cm         model.BaseChatModel
}

// NewAnalyst builds the agent for one member of the analyst set.
func NewAnalyst(kind string, cm model.BaseChatModel) (Agent, error) {
	switch kind {
	case AnalystMarket:
		return &analystAgent{
			name:       "Market Analyst",
			promptName: "analysts/market",
			report:     func(s *models.TradingState) *string { return &s.MarketReport },
			cm:         cm,
		}, nil
	case AnalystSocial:
		return &analystAgent{
			name:       "Social Media Analyst",
			promptName: "analysts/social",
			report:     func(s *models.TradingState) *string { return &s.SentimentReport },
			cm:         cm,
		}, nil
	case AnalystNews:
		return &analystAgent{
			name:       "News Analyst",
			promptName: "analysts/news",
			report:     func(s *models.TradingState) *string { return &s.NewsReport },
			cm:         cm,
		}, nil
	case AnalystFundamentals:
		return &analystAgent{
			name:       "Fundamentals Analyst",
			promptName: "analysts/fundamentals",
			report:     func(s *models.TradingState) *string { return &s.FundamentalsReport },
			cm:         cm,
		}, nil
	}
	return nil, fmt.Errorf("unknown analyst type %q", kind)
}

func (a *analystAgent) Name() string { return a.name }

func (a *analystAgent) Process(ctx context.Context, state *models.TradingState) error {
	msgs, err := formatMessages(ctx, a.promptName, map[string]any{
		"company":    state.CompanyOfInterest,
		"trade_date": state.TradeDate,
	})
	if err != nil {
		return err
	}
	out, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.name, err)
	}
	*a.report(state) = strings.TrimSpace(out.Content)
	return nil
}
