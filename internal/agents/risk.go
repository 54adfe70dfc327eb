package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/airquant/tradingflow/internal/models"
)

// riskDebaterAgent argues one stance in the three-way risk rotation.
type riskDebaterAgent struct {
	name       string
	label      string
	promptName string
	history    func(*models.RiskDebateState) *string
	cm         model.BaseChatModel
}

func NewAggressiveRiskAnalyst(cm model.BaseChatModel) Agent {
	return &riskDebaterAgent{
		name:       "Aggressive Risk Analyst",
		label:      "Aggressive Analyst",
		promptName: "risk/aggressive",
		history:    func(d *models.RiskDebateState) *string { return &d.AggressiveHistory },
		cm:         cm,
	}
}

func NewConservativeRiskAnalyst(cm model.BaseChatModel) Agent {
	return &riskDebaterAgent{
		name:       "Conservative Risk Analyst",
		label:      "Conservative Analyst",
		promptName: "risk/conservative",
		history:    func(d *models.RiskDebateState) *string { return &d.ConservativeHistory },
		cm:         cm,
	}
}

func NewNeutralRiskAnalyst(cm model.BaseChatModel) Agent {
	return &riskDebaterAgent{
		name:       "Neutral Risk Analyst",
		label:      "Neutral Analyst",
		promptName: "risk/neutral",
		history:    func(d *models.RiskDebateState) *string { return &d.NeutralHistory },
		cm:         cm,
	}
}

func (a *riskDebaterAgent) Name() string { return a.name }

func (a *riskDebaterAgent) Process(ctx context.Context, state *models.TradingState) error {
	risk := state.RiskDebateState
	msgs, err := formatMessages(ctx, a.promptName, map[string]any{
		"company":     state.CompanyOfInterest,
		"trader_plan": state.TraderInvestmentPlan,
		"history":     risk.History,
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

	*a.history(risk) = appendTurn(*a.history(risk), labeled)
	risk.History = appendTurn(risk.History, labeled)
	risk.LatestSpeaker = a.name
	risk.Count++
	return nil
}

// riskJudgeAgent reads all three histories plus the trader's plan and emits
// the final trade decision.
type riskJudgeAgent struct {
	cm model.BaseChatModel
}

func NewRiskJudge(cm model.BaseChatModel) Agent {
	return &riskJudgeAgent{cm: cm}
}

func (a *riskJudgeAgent) Name() string { return "Risk Judge" }

func (a *riskJudgeAgent) Process(ctx context.Context, state *models.TradingState) error {
	risk := state.RiskDebateState
	msgs, err := formatMessages(ctx, "managers/risk_judge", map[string]any{
		"company":              state.CompanyOfInterest,
		"aggressive_history":   risk.AggressiveHistory,
		"conservative_history": risk.ConservativeHistory,
		"neutral_history":      risk.NeutralHistory,
		"trader_plan":          state.TraderInvestmentPlan,
	})
	if err != nil {
		return err
	}
	out, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name(), err)
	}

	decision := strings.TrimSpace(out.Content)
	risk.JudgeDecision = decision
	state.FinalTradeDecision = decision
	return nil
}
