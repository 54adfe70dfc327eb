// Package agents implements the stage runners of the trading pipeline. Each
// agent issues one chat exchange per turn and appends its output to the
// fields of the shared state it owns.
package agents

import (
	"context"
	"strings"

	"github.com/airquant/tradingflow/internal/models"
)

type Agent interface {
	Name() string
	Process(ctx context.Context, state *models.TradingState) error
}

// appendTurn grows a history string without ever shortening it.
func appendTurn(history, turn string) string {
	return strings.TrimSpace(history + "\n" + turn)
}
