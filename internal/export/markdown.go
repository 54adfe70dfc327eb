package export

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/airquant/tradingflow/internal/models"
)

type section struct {
	title string
	body  string
}

// StateToMarkdown renders one trading state as a markdown document. Sections
// whose state field is empty are omitted entirely.
func StateToMarkdown(state *models.TradingState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Company:** %s | **Trade Date:** %s\n",
		state.CompanyOfInterest, state.TradeDate)

	sections := []section{
		{"Market Report", state.MarketReport},
		{"Sentiment Report", state.SentimentReport},
		{"News Report", state.NewsReport},
		{"Fundamentals Report", state.FundamentalsReport},
	}
	for _, s := range sections {
		writeSection(&b, s.title, s.body)
	}

	if debate := state.InvestmentDebateState; debate != nil && hasDebateContent(debate) {
		b.WriteString("\n---\n\n## Investment Debate\n")
		writeSubsection(&b, "Bull History", debate.BullHistory)
		writeSubsection(&b, "Bear History", debate.BearHistory)
		writeSubsection(&b, "Current Response", debate.CurrentResponse)
		writeSubsection(&b, "Judge Decision", debate.JudgeDecision)
		writeSubsection(&b, "Trader Decision", debate.TraderInvestmentDecision)
	}

	if risk := state.RiskDebateState; risk != nil && hasRiskContent(risk) {
		b.WriteString("\n---\n\n## Risk Debate\n")
		writeSubsection(&b, "Aggressive History", risk.AggressiveHistory)
		writeSubsection(&b, "Conservative History", risk.ConservativeHistory)
		writeSubsection(&b, "Neutral History", risk.NeutralHistory)
		writeSubsection(&b, "Judge Decision", risk.JudgeDecision)
	}

	writeSection(&b, "Investment Plan", state.InvestmentPlan)
	writeSection(&b, "Final Trade Decision", state.FinalTradeDecision)
	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "\n---\n\n## %s\n\n%s\n", title, strings.TrimSpace(body))
}

func writeSubsection(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n%s\n", title, strings.TrimSpace(body))
}

func hasDebateContent(d *models.InvestDebateState) bool {
	return strings.TrimSpace(d.BullHistory) != "" ||
		strings.TrimSpace(d.BearHistory) != "" ||
		strings.TrimSpace(d.CurrentResponse) != "" ||
		strings.TrimSpace(d.JudgeDecision) != "" ||
		strings.TrimSpace(d.TraderInvestmentDecision) != ""
}

func hasRiskContent(r *models.RiskDebateState) bool {
	return strings.TrimSpace(r.AggressiveHistory) != "" ||
		strings.TrimSpace(r.ConservativeHistory) != "" ||
		strings.TrimSpace(r.NeutralHistory) != "" ||
		strings.TrimSpace(r.JudgeDecision) != ""
}

// LogToMarkdown renders a whole state log, one document per trade date in
// ascending date order.
func LogToMarkdown(states map[string]*models.TradingState) string {
	dates := make([]string, 0, len(states))
	for date := range states {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var b strings.Builder
	for i, date := range dates {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "# Full State Log: %s\n\n", date)
		b.WriteString(StateToMarkdown(states[date]))
	}
	return b.String()
}

// ExportMarkdown converts a JSON state log on disk into a markdown file.
// An empty mdPath derives the output name from jsonPath.
func ExportMarkdown(jsonPath, mdPath string) error {
	states, err := LoadStateLog(jsonPath)
	if err != nil {
		return err
	}
	if mdPath == "" {
		mdPath = strings.TrimSuffix(jsonPath, ".json") + ".md"
	}
	if err := os.WriteFile(mdPath, []byte(LogToMarkdown(states)), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
