package models

import "time"

// InvestDebateState accumulates the bull/bear research debate. Histories are
// append-only: turns are concatenated, never rewritten.
type InvestDebateState struct {
	BullHistory              string `json:"bull_history,omitempty"`
	BearHistory              string `json:"bear_history,omitempty"`
	History                  string `json:"history,omitempty"`
	CurrentResponse          string `json:"current_response,omitempty"`
	JudgeDecision            string `json:"judge_decision,omitempty"`
	TraderInvestmentDecision string `json:"trader_investment_decision,omitempty"`
	Count                    int    `json:"count,omitempty"`
}

// RiskDebateState accumulates the three-way risk discussion.
type RiskDebateState struct {
	AggressiveHistory   string `json:"aggressive_history,omitempty"`
	ConservativeHistory string `json:"conservative_history,omitempty"`
	NeutralHistory      string `json:"neutral_history,omitempty"`
	History             string `json:"history,omitempty"`
	LatestSpeaker       string `json:"latest_speaker,omitempty"`
	JudgeDecision       string `json:"judge_decision,omitempty"`
	Count               int    `json:"count,omitempty"`
}

// TradingState is the single shared record threaded through every pipeline
// stage for one run. Each stage appends only to the fields it owns; once a
// field holds a non-empty value it is never cleared or shortened.
type TradingState struct {
	CompanyOfInterest string `json:"company_of_interest"`
	TradeDate         string `json:"trade_date"`

	MarketReport       string `json:"market_report,omitempty"`
	SentimentReport    string `json:"sentiment_report,omitempty"`
	NewsReport         string `json:"news_report,omitempty"`
	FundamentalsReport string `json:"fundamentals_report,omitempty"`

	InvestmentDebateState *InvestDebateState `json:"investment_debate_state,omitempty"`
	InvestmentPlan        string             `json:"investment_plan,omitempty"`
	TraderInvestmentPlan  string             `json:"trader_investment_plan,omitempty"`

	RiskDebateState    *RiskDebateState `json:"risk_debate_state,omitempty"`
	FinalTradeDecision string           `json:"final_trade_decision,omitempty"`
}

func NewTradingState(symbol string, date time.Time) *TradingState {
	return &TradingState{
		CompanyOfInterest:     symbol,
		TradeDate:             date.Format("2006-01-02"),
		InvestmentDebateState: &InvestDebateState{},
		RiskDebateState:       &RiskDebateState{},
	}
}
