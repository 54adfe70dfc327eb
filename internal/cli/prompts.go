package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/airquant/tradingflow/internal/agents"
	"github.com/airquant/tradingflow/internal/llm"
)

var tickerRe = regexp.MustCompile(`^[A-Z0-9.-]+$`)

var analystDisplayNames = map[string]string{
	agents.AnalystMarket:       "Market Analyst",
	agents.AnalystSocial:       "Social Media Analyst",
	agents.AnalystNews:         "News Analyst",
	agents.AnalystFundamentals: "Fundamentals Analyst",
}

// promptForTicker asks for a stock ticker symbol and normalizes it to upper
// case.
func promptForTicker() (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Enter the stock ticker symbol (e.g., AAPL, NVDA):",
		Help:    "Letters, numbers, dots, and hyphens only",
	}

	err := survey.AskOne(prompt, &ticker, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(strings.ToUpper(val.(string)))
		if str == "" {
			return fmt.Errorf("ticker symbol cannot be empty")
		}
		if len(str) > 10 {
			return fmt.Errorf("ticker symbol too long (max 10 characters)")
		}
		if !tickerRe.MatchString(str) {
			return fmt.Errorf("invalid ticker format")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToUpper(ticker)), nil
}

// promptForDate asks for a trade date, defaulting to today.
func promptForDate() (string, error) {
	var dateStr string
	prompt := &survey.Input{
		Message: "Enter the trade date (YYYY-MM-DD):",
		Default: time.Now().Format("2006-01-02"),
	}

	err := survey.AskOne(prompt, &dateStr, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if str == "" {
			return nil
		}
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dateStr) == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	return strings.TrimSpace(dateStr), nil
}

// promptForAnalysts asks which analysts to run, defaulting to all of them.
func promptForAnalysts() ([]string, error) {
	options := make([]string, 0, len(agents.AllAnalysts))
	for _, kind := range agents.AllAnalysts {
		options = append(options, analystDisplayNames[kind])
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select analyst team members:",
		Options: options,
		Default: options,
		Help:    "Use space to toggle, enter to confirm",
	}

	err := survey.AskOne(prompt, &selected, survey.WithValidator(func(val interface{}) error {
		answers, ok := val.([]survey.OptionAnswer)
		if !ok {
			return fmt.Errorf("invalid selection type")
		}
		if len(answers) == 0 {
			return fmt.Errorf("you must select at least one analyst")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	var result []string
	for _, kind := range agents.AllAnalysts {
		for _, name := range selected {
			if name == analystDisplayNames[kind] {
				result = append(result, kind)
			}
		}
	}
	return result, nil
}

// promptForProvider asks which LLM provider backs the run, preselecting the
// configured one.
func promptForProvider(current string) (string, error) {
	options := []string{
		llm.ProviderOpenAI,
		llm.ProviderDeepSeek,
		llm.ProviderOllama,
		llm.ProviderLlamaCpp,
		llm.ProviderMock,
	}
	def := llm.ProviderOpenAI
	for _, opt := range options {
		if opt == current {
			def = current
			break
		}
	}

	var provider string
	prompt := &survey.Select{
		Message: "Select the LLM provider:",
		Options: options,
		Default: def,
	}
	if err := survey.AskOne(prompt, &provider); err != nil {
		return "", err
	}
	return provider, nil
}

// parsePositiveInt accepts integers of at least 1.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", n)
	}
	return n, nil
}

// promptForRounds asks for a debate depth, defaulting to the configured value.
func promptForRounds(message string, def int) (int, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: strconv.Itoa(def),
	}

	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(val interface{}) error {
		_, err := parsePositiveInt(val.(string))
		return err
	}))
	if err != nil {
		return 0, err
	}
	return parsePositiveInt(answer)
}
