// Package graph drives the staged trading pipeline: analyst fan-out,
// research debate, trading, risk debate, and signal extraction, accumulating
// every stage's output into one TradingState.
package graph

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"golang.org/x/sync/errgroup"

	"github.com/airquant/tradingflow/internal/agents"
	"github.com/airquant/tradingflow/internal/config"
	"github.com/airquant/tradingflow/internal/export"
	"github.com/airquant/tradingflow/internal/llm"
	"github.com/airquant/tradingflow/internal/models"
)

// TradingAgentsGraph owns the stage sequence for one configured pipeline.
// The TradingState of a run is exclusively owned by the graph; agents only
// append to the fields they are given.
type TradingAgentsGraph struct {
	cfg              *config.Config
	selectedAnalysts []string
	quick            model.BaseChatModel
	deep             model.BaseChatModel
	debug            bool

	mu        sync.Mutex
	logStates map[string]*models.TradingState
}

// RunResult is everything one completed propagation produced.
type RunResult struct {
	State    *models.TradingState
	Decision models.Signal
	Report   *RunReport
}

// NewTradingAgentsGraph constructs both chat clients up front so that
// configuration, missing-model, and missing-dependency errors surface before
// any stage runs.
func NewTradingAgentsGraph(selectedAnalysts []string, debug bool, cfg *config.Config) (*TradingAgentsGraph, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(selectedAnalysts) == 0 {
		selectedAnalysts = agents.AllAnalysts
	}

	ctx := context.Background()

	quickClient, err := llm.NewClient(cfg.QuickThinkClient())
	if err != nil {
		return nil, fmt.Errorf("quick-think client: %w", err)
	}
	deepClient, err := llm.NewClient(cfg.DeepThinkClient())
	if err != nil {
		return nil, fmt.Errorf("deep-think client: %w", err)
	}

	quick, err := quickClient.ChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("quick-think model: %w", err)
	}
	deep, err := deepClient.ChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("deep-think model: %w", err)
	}

	return &TradingAgentsGraph{
		cfg:              cfg,
		selectedAnalysts: selectedAnalysts,
		quick:            quick,
		deep:             deep,
		debug:            debug,
		logStates:        make(map[string]*models.TradingState),
	}, nil
}

// Propagate runs the full pipeline for one ticker and date. Missing stage
// outputs are recorded in the result's report instead of aborting the run;
// only transport-level failures return an error.
func (g *TradingAgentsGraph) Propagate(ctx context.Context, symbol, date string) (*RunResult, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q: %w", date, err)
	}

	state := models.NewTradingState(symbol, parsedDate)
	report := &RunReport{}

	if g.debug {
		log.Printf("[TradingGraph] processing %s for %s with analysts %v", symbol, date, g.selectedAnalysts)
	}

	if err := g.runAnalysts(ctx, state); err != nil {
		return nil, err
	}
	validateStage(StageAnalystsDone, state, g.selectedAnalysts, report)

	if err := g.runResearchDebate(ctx, state); err != nil {
		return nil, err
	}
	validateStage(StageDebateDone, state, g.selectedAnalysts, report)
	validateStage(StagePlanDone, state, g.selectedAnalysts, report)

	if err := agents.NewTrader(g.quick).Process(ctx, state); err != nil {
		return nil, err
	}
	validateStage(StageTradeDone, state, g.selectedAnalysts, report)

	if err := g.runRiskDebate(ctx, state); err != nil {
		return nil, err
	}
	validateStage(StageRiskDone, state, g.selectedAnalysts, report)

	decision, raw, ok, err := agents.NewSignalExtractor(g.quick).Extract(ctx, state.FinalTradeDecision)
	if err != nil {
		return nil, err
	}
	if !ok {
		report.add(StageDecided.String(), "Signal extraction returned unexpected: %q", raw)
	}

	g.mu.Lock()
	g.logStates[state.TradeDate] = state
	g.mu.Unlock()

	if g.debug {
		log.Printf("[TradingGraph] completed %s for %s: decision=%s defects=%d",
			symbol, date, decision, len(report.Defects))
	}

	return &RunResult{State: state, Decision: decision, Report: report}, nil
}

// runAnalysts dispatches the selected analysts concurrently. Their report
// fields are disjoint, so the fan-out needs no locking.
func (g *TradingAgentsGraph) runAnalysts(ctx context.Context, state *models.TradingState) error {
	eg, gctx := errgroup.WithContext(ctx)
	for _, kind := range g.selectedAnalysts {
		analyst, err := agents.NewAnalyst(kind, g.quick)
		if err != nil {
			return err
		}
		eg.Go(func() error {
			if g.debug {
				log.Printf("[TradingGraph] running %s", analyst.Name())
			}
			return analyst.Process(gctx, state)
		})
	}
	return eg.Wait()
}

// runResearchDebate alternates bull and bear for exactly MaxDebateRounds
// completed exchanges, then lets the research manager rule on the transcript.
func (g *TradingAgentsGraph) runResearchDebate(ctx context.Context, state *models.TradingState) error {
	bull := agents.NewBullResearcher(g.quick)
	bear := agents.NewBearResearcher(g.quick)

	for round := 0; round < g.cfg.MaxDebateRounds; round++ {
		if err := bull.Process(ctx, state); err != nil {
			return err
		}
		if err := bear.Process(ctx, state); err != nil {
			return err
		}
	}
	return agents.NewResearchManager(g.deep).Process(ctx, state)
}

// runRiskDebate rotates the three risk stances for MaxRiskDiscussRounds full
// rotations, then lets the risk judge emit the final trade decision.
func (g *TradingAgentsGraph) runRiskDebate(ctx context.Context, state *models.TradingState) error {
	rotation := []agents.Agent{
		agents.NewAggressiveRiskAnalyst(g.quick),
		agents.NewConservativeRiskAnalyst(g.quick),
		agents.NewNeutralRiskAnalyst(g.quick),
	}

	for round := 0; round < g.cfg.MaxRiskDiscussRounds; round++ {
		for _, analyst := range rotation {
			if err := analyst.Process(ctx, state); err != nil {
				return err
			}
		}
	}
	return agents.NewRiskJudge(g.deep).Process(ctx, state)
}

// SaveLog persists every propagated state, keyed by trade date.
func (g *TradingAgentsGraph) SaveLog(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return export.WriteStateLog(path, g.logStates)
}
