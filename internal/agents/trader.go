package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/airquant/tradingflow/internal/models"
)

// traderAgent turns the investment plan into a concrete trade proposal.
type traderAgent struct {
	cm model.BaseChatModel
}

func NewTrader(cm model.BaseChatModel) Agent {
	return &traderAgent{cm: cm}
}

func (a *traderAgent) Name() string { return "Trader" }

func (a *traderAgent) Process(ctx context.Context, state *models.TradingState) error {
	msgs, err := formatMessages(ctx, "trader", map[string]any{
		"company":         state.CompanyOfInterest,
		"investment_plan": state.InvestmentPlan,
	})
	if err != nil {
		return err
	}
	out, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name(), err)
	}

	plan := strings.TrimSpace(out.Content)
	state.TraderInvestmentPlan = plan
	state.InvestmentDebateState.TraderInvestmentDecision = plan
	return nil
}
