package graph

import (
	"strings"

	"github.com/airquant/tradingflow/internal/agents"
	"github.com/airquant/tradingflow/internal/models"
)

// Stage marks a boundary in the linear pipeline sequence.
type Stage int

const (
	StageInit Stage = iota
	StageAnalystsDone
	StageDebateDone
	StagePlanDone
	StageTradeDone
	StageRiskDone
	StageDecided
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "INIT"
	case StageAnalystsDone:
		return "ANALYSTS_DONE"
	case StageDebateDone:
		return "DEBATE_DONE"
	case StagePlanDone:
		return "PLAN_DONE"
	case StageTradeDone:
		return "TRADE_DONE"
	case StageRiskDone:
		return "RISK_DONE"
	case StageDecided:
		return "DECIDED"
	}
	return "UNKNOWN"
}

// reportMinLen is the sanity threshold below which an analyst report counts
// as missing.
const reportMinLen = 10

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// validateStage runs the schema checks for one stage boundary and records a
// defect for every required field the prior stage left empty.
func validateStage(s Stage, state *models.TradingState, selected []string, rep *RunReport) {
	stage := s.String()
	switch s {
	case StageAnalystsDone:
		labels := map[string]struct {
			name  string
			value string
		}{
			agents.AnalystMarket:       {"Market Analyst", state.MarketReport},
			agents.AnalystSocial:       {"Social Media Analyst", state.SentimentReport},
			agents.AnalystNews:         {"News Analyst", state.NewsReport},
			agents.AnalystFundamentals: {"Fundamentals Analyst", state.FundamentalsReport},
		}
		for _, kind := range selected {
			report, ok := labels[kind]
			if !ok {
				continue
			}
			if len(strings.TrimSpace(report.value)) <= reportMinLen {
				rep.add(stage, "%s report is empty or too short", report.name)
			}
		}

	case StageDebateDone:
		debate := state.InvestmentDebateState
		if debate == nil || !present(debate.BullHistory) {
			rep.add(stage, "Bull Researcher history is empty")
		}
		if debate == nil || !present(debate.BearHistory) {
			rep.add(stage, "Bear Researcher history is empty")
		}
		if debate == nil || !present(debate.JudgeDecision) {
			rep.add(stage, "Research Manager judge decision is empty")
		}

	case StagePlanDone:
		if !present(state.InvestmentPlan) {
			rep.add(stage, "Investment plan is empty")
		}

	case StageTradeDone:
		if !present(state.TraderInvestmentPlan) {
			rep.add(stage, "Trader investment plan is empty")
		}

	case StageRiskDone:
		risk := state.RiskDebateState
		if risk == nil || !present(risk.AggressiveHistory) {
			rep.add(stage, "Aggressive risk history is empty")
		}
		if risk == nil || !present(risk.ConservativeHistory) {
			rep.add(stage, "Conservative risk history is empty")
		}
		if risk == nil || !present(risk.NeutralHistory) {
			rep.add(stage, "Neutral risk history is empty")
		}
		if risk == nil || !present(risk.JudgeDecision) {
			rep.add(stage, "Risk judge decision is empty")
		}
		if !present(state.FinalTradeDecision) {
			rep.add(stage, "Final trade decision is empty")
		}
	}
}
