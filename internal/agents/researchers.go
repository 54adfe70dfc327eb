package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/airquant/tradingflow/internal/models"
)

// researcherAgent argues one side of the investment debate. Each turn
// appends to its own history and replaces current_response, which the
// opposing side reads on its next turn.
type researcherAgent struct {
	name       string
	label      string
	promptName string
	history    func(*models.InvestDebateState) *string
	cm         model.BaseChatModel
}

func NewBullResearcher(cm model.BaseChatModel) Agent {
	return &researcherAgent{
		name:       "Bull Researcher",
		label:      "Bull Analyst",
		promptName: "researchers/bull",
		history:    func(d *models.InvestDebateState) *string { return &d.BullHistory },
		cm:         cm,
	}
}

func NewBearResearcher(cm model.BaseChatModel) Agent {
	return &researcherAgent{
		name:       "Bear Researcher",
		label:      "Bear Analyst",
		promptName: "researchers/bear",
		history:    func(d *models.InvestDebateState) *string { return &d.BearHistory },
		cm:         cm,
	}
}

func (a *researcherAgent) Name() string { return a.name }

func (a *researcherAgent) Process(ctx context.Context, state *models.TradingState) error {
	debate := state.InvestmentDebateState
	msgs, err := formatMessages(ctx, a.promptName, map[string]any{
		"market_report":       state.MarketReport,
		"sentiment_report":    state.SentimentReport,
		"news_report":         state.NewsReport,
		"fundamentals_report": state.FundamentalsReport,
		"history":             debate.History,
		"current_response":    debate.CurrentResponse,
	})
	if err != nil {
		return err
	}
	out, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.name, err)
	}

	argument := strings.TrimSpace(out.Content)
	if argument == "" {
		argument = "(no argument provided)"
	}
	labeled := a.label + ": " + argument

	*a.history(debate) = appendTurn(*a.history(debate), labeled)
	debate.History = appendTurn(debate.History, labeled)
	debate.CurrentResponse = labeled
	debate.Count++
	return nil
}

// researchManagerAgent weighs both debate histories and emits the judge
// decision, which doubles as the investment plan handed to the trader.
type researchManagerAgent struct {
	cm model.BaseChatModel
}

func NewResearchManager(cm model.BaseChatModel) Agent {
	return &researchManagerAgent{cm: cm}
}

func (a *researchManagerAgent) Name() string { return "Research Manager" }

func (a *researchManagerAgent) Process(ctx context.Context, state *models.TradingState) error {
	debate := state.InvestmentDebateState
	msgs, err := formatMessages(ctx, "managers/research_manager", map[string]any{
		"company":      state.CompanyOfInterest,
		"bull_history": debate.BullHistory,
		"bear_history": debate.BearHistory,
		"history":      debate.History,
	})
	if err != nil {
		return err
	}
	out, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name(), err)
	}

	decision := strings.TrimSpace(out.Content)
	debate.JudgeDecision = decision
	state.InvestmentPlan = decision
	return nil
}
