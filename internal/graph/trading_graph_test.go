package graph

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/airquant/tradingflow/internal/agents"
	"github.com/airquant/tradingflow/internal/config"
	"github.com/airquant/tradingflow/internal/export"
	"github.com/airquant/tradingflow/internal/llm"
	"github.com/airquant/tradingflow/internal/models"
)

// fixedReplyModel answers every exchange with the same text, regardless of
// role, so stage-boundary checks can be driven into their failure branches.
type fixedReplyModel struct {
	reply string
}

func (m fixedReplyModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m fixedReplyModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func fixedReplyGraph(t *testing.T, reply string) *TradingAgentsGraph {
	t.Helper()
	cm := fixedReplyModel{reply: reply}
	return &TradingAgentsGraph{
		cfg:              mockConfig(t),
		selectedAnalysts: agents.AllAnalysts,
		quick:            cm,
		deep:             cm,
		logStates:        make(map[string]*models.TradingState),
	}
}

func mockConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfigWithRoot(t.TempDir())
	cfg.LLMProvider = llm.ProviderMock
	cfg.MaxDebateRounds = 1
	cfg.MaxRiskDiscussRounds = 1
	return cfg
}

func TestPropagateFullPipeline(t *testing.T) {
	g, err := NewTradingAgentsGraph(nil, false, mockConfig(t))
	if err != nil {
		t.Fatalf("NewTradingAgentsGraph: %v", err)
	}

	res, err := g.Propagate(context.Background(), "NVDA", "2024-05-10")
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	state := res.State
	for name, report := range map[string]string{
		"market":       state.MarketReport,
		"sentiment":    state.SentimentReport,
		"news":         state.NewsReport,
		"fundamentals": state.FundamentalsReport,
	} {
		if len(strings.TrimSpace(report)) <= 10 {
			t.Errorf("%s report missing or too short", name)
		}
	}

	debate := state.InvestmentDebateState
	if !strings.Contains(debate.BullHistory, "Bull Analyst: ") {
		t.Error("bull history missing labeled turn")
	}
	if !strings.Contains(debate.BearHistory, "Bear Analyst: ") {
		t.Error("bear history missing labeled turn")
	}
	if debate.Count != 2 {
		t.Errorf("debate count = %d, want 2", debate.Count)
	}
	if debate.JudgeDecision == "" || state.InvestmentPlan == "" {
		t.Error("research manager produced no ruling")
	}
	if state.InvestmentPlan != debate.JudgeDecision {
		t.Error("investment plan should mirror the judge decision")
	}

	if state.TraderInvestmentPlan == "" {
		t.Error("trader produced no plan")
	}
	if debate.TraderInvestmentDecision != state.TraderInvestmentPlan {
		t.Error("trader decision not recorded on debate state")
	}

	risk := state.RiskDebateState
	for name, history := range map[string]string{
		"aggressive":   risk.AggressiveHistory,
		"conservative": risk.ConservativeHistory,
		"neutral":      risk.NeutralHistory,
	} {
		if strings.TrimSpace(history) == "" {
			t.Errorf("%s risk history empty", name)
		}
	}
	if risk.Count != 3 {
		t.Errorf("risk count = %d, want 3", risk.Count)
	}
	if risk.LatestSpeaker != "Neutral Risk Analyst" {
		t.Errorf("latest speaker = %q", risk.LatestSpeaker)
	}
	if state.FinalTradeDecision == "" {
		t.Error("no final trade decision")
	}

	if res.Decision != models.SignalBuy {
		t.Errorf("decision = %q, want BUY", res.Decision)
	}
	if !res.Report.Clean() {
		t.Fatalf("stage checks failed:\n%s", res.Report.Summary())
	}
}

func TestPropagateDebateRounds(t *testing.T) {
	cfg := mockConfig(t)
	cfg.MaxDebateRounds = 2
	cfg.MaxRiskDiscussRounds = 2

	g, err := NewTradingAgentsGraph(nil, false, cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Propagate(context.Background(), "AAPL", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}

	debate := res.State.InvestmentDebateState
	if got := strings.Count(debate.BullHistory, "Bull Analyst: "); got != 2 {
		t.Errorf("bull turns = %d, want 2", got)
	}
	if got := strings.Count(debate.BearHistory, "Bear Analyst: "); got != 2 {
		t.Errorf("bear turns = %d, want 2", got)
	}
	if debate.Count != 4 {
		t.Errorf("debate count = %d, want 4", debate.Count)
	}

	risk := res.State.RiskDebateState
	if got := strings.Count(risk.History, "Aggressive Analyst: "); got != 2 {
		t.Errorf("aggressive turns = %d, want 2", got)
	}
	if risk.Count != 6 {
		t.Errorf("risk count = %d, want 6", risk.Count)
	}
}

func TestPropagateAnalystSubset(t *testing.T) {
	g, err := NewTradingAgentsGraph([]string{agents.AnalystMarket}, false, mockConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Propagate(context.Background(), "MSFT", "2024-02-15")
	if err != nil {
		t.Fatal(err)
	}

	if res.State.MarketReport == "" {
		t.Error("selected analyst produced no report")
	}
	if res.State.SentimentReport != "" || res.State.NewsReport != "" {
		t.Error("unselected analysts should not run")
	}
	if !res.Report.Clean() {
		t.Fatalf("subset run should pass stage checks:\n%s", res.Report.Summary())
	}
}

func TestPropagateCollectsAmbiguousSignal(t *testing.T) {
	// "ambiguous" is under the report sanity threshold and is not a valid
	// decision token, so both defect kinds fire while the run still finishes.
	g := fixedReplyGraph(t, "ambiguous")

	res, err := g.Propagate(context.Background(), "NVDA", "2024-05-10")
	if err != nil {
		t.Fatalf("defective run must not error: %v", err)
	}
	if res.State == nil {
		t.Fatal("defective run must still return its state")
	}
	if res.Report.Clean() {
		t.Fatal("expected defects to be collected")
	}
	if res.Decision.Valid() {
		t.Fatalf("ambiguous reply produced a valid decision: %q", res.Decision)
	}

	var sawReport, sawExtraction bool
	for _, d := range res.Report.Defects {
		if d.Message == "Market Analyst report is empty or too short" {
			sawReport = true
		}
		if d.Stage == StageDecided.String() && strings.Contains(d.Message, `Signal extraction returned unexpected: "ambiguous"`) {
			sawExtraction = true
		}
	}
	if !sawReport {
		t.Error("short analyst report not itemized")
	}
	if !sawExtraction {
		t.Errorf("ambiguous extraction not itemized: %v", res.Report.Defects)
	}
	if !strings.HasPrefix(res.Report.Summary(), "FAILED:") {
		t.Errorf("summary should report failure: %q", res.Report.Summary())
	}
}

func TestPropagateCollectsEmptyStageFields(t *testing.T) {
	g := fixedReplyGraph(t, "")

	res, err := g.Propagate(context.Background(), "NVDA", "2024-05-10")
	if err != nil {
		t.Fatalf("defective run must not error: %v", err)
	}

	got := make(map[string]bool)
	for _, d := range res.Report.Defects {
		got[d.Message] = true
	}
	for _, want := range []string{
		"Research Manager judge decision is empty",
		"Investment plan is empty",
		"Trader investment plan is empty",
		"Risk judge decision is empty",
		"Final trade decision is empty",
	} {
		if !got[want] {
			t.Errorf("missing defect %q in:\n%s", want, res.Report.Summary())
		}
	}
	if res.State.FinalTradeDecision != "" {
		t.Error("empty replies should leave the final decision empty")
	}
}

func TestPropagateInvalidDate(t *testing.T) {
	g, err := NewTradingAgentsGraph(nil, false, mockConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Propagate(context.Background(), "NVDA", "05/10/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestNewTradingAgentsGraphRejectsBadConfig(t *testing.T) {
	cfg := mockConfig(t)
	cfg.MaxDebateRounds = 0
	if _, err := NewTradingAgentsGraph(nil, false, cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestSaveLogRoundTrip(t *testing.T) {
	g, err := NewTradingAgentsGraph(nil, false, mockConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Propagate(context.Background(), "NVDA", "2024-05-10"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "log.json")
	if err := g.SaveLog(path); err != nil {
		t.Fatalf("SaveLog: %v", err)
	}

	states, err := export.LoadStateLog(path)
	if err != nil {
		t.Fatalf("LoadStateLog: %v", err)
	}
	state, ok := states["2024-05-10"]
	if !ok {
		t.Fatalf("log missing trade date key: %v", states)
	}
	if state.CompanyOfInterest != "NVDA" {
		t.Errorf("company = %q", state.CompanyOfInterest)
	}
	if state.FinalTradeDecision == "" {
		t.Error("final decision lost in round trip")
	}
}
