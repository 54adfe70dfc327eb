// Package cli is the interactive command surface: cobra commands, survey
// prompts, and lipgloss rendering of run results.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/airquant/tradingflow/internal/graph"
	"github.com/airquant/tradingflow/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2).
			Width(72)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func renderBanner() string {
	return titleStyle.Render("TradingFlow") + dimStyle.Render("  multi-agent trading analysis")
}

func renderRunHeader(symbol, date string, analysts []string) string {
	return headerStyle.Render(fmt.Sprintf(
		"Analyzing %s for %s\nAnalysts: %s",
		symbol, date, strings.Join(analysts, ", ")))
}

func decisionStyle(sig models.Signal) lipgloss.Style {
	switch sig {
	case models.SignalBuy:
		return okStyle
	case models.SignalSell:
		return errStyle
	default:
		return warnStyle
	}
}

// renderResult prints the decision, the stage report, and a short excerpt of
// the final ruling.
func renderResult(res *graph.RunResult) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Decision"))
	b.WriteString("\n")
	if res.Decision.Valid() {
		b.WriteString(decisionStyle(res.Decision).Render(string(res.Decision)))
	} else {
		b.WriteString(warnStyle.Render("UNDETERMINED"))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Stage checks"))
	b.WriteString("\n")
	if res.Report.Clean() {
		b.WriteString(okStyle.Render(res.Report.Summary()))
	} else {
		b.WriteString(errStyle.Render(res.Report.Summary()))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Final ruling"))
	b.WriteString("\n")
	b.WriteString(excerpt(res.State.FinalTradeDecision, 600))
	b.WriteString("\n")

	return b.String()
}

func excerpt(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + dimStyle.Render(" [truncated]")
}
