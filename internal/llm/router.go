package llm

import "strings"

// routeRule pairs a predicate over the lowercased prompt text with a canned
// response. Rules are evaluated top to bottom and the first match wins.
type routeRule struct {
	match    func(t string) bool
	response string
}

func contains(subs ...string) func(string) bool {
	return func(t string) bool {
		for _, s := range subs {
			if !strings.Contains(t, s) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(t string) bool {
		for _, p := range preds {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// routeRules is an ordered contract: broader predicates sit below narrower
// ones (the generic analyst checks come before the researcher checks, and
// "bull analyst" / "bear analyst" before the manager roles) so no role is
// shadowed. Reordering changes which response a borderline prompt receives,
// which is why the order is locked by tests.
var routeRules = []routeRule{
	// Signal extraction gets a bare token, not a narrative block.
	{contains("extract the investment decision"), "BUY"},

	{anyOf(contains("analyzing financial markets"), contains("technical indicator")), mockMarketReport},
	{func(t string) bool {
		return strings.Contains(t, "social media") && strings.Contains(t, "sentiment") && !strings.Contains(t, "analyst")
	}, mockSentimentReport},
	{contains("news", "researcher", "world affairs"), mockNewsReport},
	{anyOf(contains("fundamental information"), contains("financial documents")), mockFundamentalsReport},

	{contains("bull analyst"), mockBullArgument},
	{contains("bear analyst"), mockBearArgument},

	{contains("portfolio manager and debate facilitator"), mockResearchManagerDecision},
	{contains("risk management judge"), mockRiskJudgeDecision},

	{contains("trading agent", "investment decision"), mockTraderDecision},

	{contains("aggressive risk analyst"), mockAggressiveRisk},
	{contains("conservative risk analyst"), mockConservativeRisk},
	{contains("neutral risk analyst"), mockNeutralRisk},

	{contains("expert financial analyst", "reviewing trading"), "Reflection: The analysis was thorough and well-supported by data."},
}

// mockFallback still carries the sentinel phrase so signal extraction never
// fails on unmatched input.
const mockFallback = "Analysis complete. FINAL TRANSACTION PROPOSAL: **BUY**"

// Route maps the full prompt text of one inference call to a fixed,
// role-appropriate response. Pure function: no state, no randomness.
func Route(prompt string) string {
	t := strings.ToLower(prompt)
	for _, rule := range routeRules {
		if rule.match(t) {
			return rule.response
		}
	}
	return mockFallback
}
