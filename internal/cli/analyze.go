package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airquant/tradingflow/internal/export"
	"github.com/airquant/tradingflow/internal/graph"
)

type analyzeOptions struct {
	ticker       string
	date         string
	analysts     []string
	provider     string
	debateRounds int
	riskRounds   int
	debug        bool
	noSave       bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full pipeline for one ticker and date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ticker, "ticker", "t", "", "stock ticker symbol")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "trade date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&opts.analysts, "analysts", "a", nil,
		"analysts to run (market,social,news,fundamentals)")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "LLM provider override")
	cmd.Flags().IntVar(&opts.debateRounds, "debate-rounds", 0, "research debate rounds override")
	cmd.Flags().IntVar(&opts.riskRounds, "risk-rounds", 0, "risk discussion rounds override")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "verbose stage logging")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "skip writing result files")
	return cmd
}

// runAnalyze fills any missing options interactively, runs one propagation,
// and writes the JSON log plus a markdown report under the results directory.
func runAnalyze(ctx context.Context, opts *analyzeOptions) error {
	fmt.Println(renderBanner())

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	if opts.ticker == "" {
		if opts.ticker, err = promptForTicker(); err != nil {
			return err
		}
	} else {
		opts.ticker = strings.ToUpper(strings.TrimSpace(opts.ticker))
	}
	if opts.date == "" {
		if opts.date, err = promptForDate(); err != nil {
			return err
		}
	}
	if len(opts.analysts) == 0 {
		if opts.analysts, err = promptForAnalysts(); err != nil {
			return err
		}
	}
	if opts.provider == "" {
		if opts.provider, err = promptForProvider(cfg.LLMProvider); err != nil {
			return err
		}
	}
	if opts.debateRounds == 0 {
		if opts.debateRounds, err = promptForRounds("Research debate rounds:", cfg.MaxDebateRounds); err != nil {
			return err
		}
	}
	if opts.riskRounds == 0 {
		if opts.riskRounds, err = promptForRounds("Risk discussion rounds:", cfg.MaxRiskDiscussRounds); err != nil {
			return err
		}
	}

	cfg.LLMProvider = opts.provider
	cfg.MaxDebateRounds = opts.debateRounds
	cfg.MaxRiskDiscussRounds = opts.riskRounds
	if opts.debug {
		cfg.Debug = true
	}

	g, err := graph.NewTradingAgentsGraph(opts.analysts, cfg.Debug, cfg)
	if err != nil {
		return err
	}

	fmt.Println(renderRunHeader(opts.ticker, opts.date, opts.analysts))

	res, err := g.Propagate(ctx, opts.ticker, opts.date)
	if err != nil {
		return err
	}

	fmt.Println(renderResult(res))

	if opts.noSave {
		return nil
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	base := fmt.Sprintf("%s_%s", opts.ticker, opts.date)
	jsonPath := filepath.Join(cfg.ResultsDir, base+".json")
	mdPath := filepath.Join(cfg.ResultsDir, base+".md")

	if err := g.SaveLog(jsonPath); err != nil {
		return err
	}
	if err := export.ExportMarkdown(jsonPath, mdPath); err != nil {
		return err
	}

	fmt.Println(dimStyle.Render("Saved " + jsonPath + " and " + mdPath))
	return nil
}
