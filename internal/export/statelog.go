// Package export persists propagated trading states as JSON logs and renders
// them to human-readable markdown.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/airquant/tradingflow/internal/models"
)

// WriteStateLog writes the per-date state map as indented JSON.
func WriteStateLog(path string, states map[string]*models.TradingState) error {
	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state log: %w", err)
	}
	return nil
}

// LoadStateLog reads a state log previously written by WriteStateLog.
func LoadStateLog(path string) (map[string]*models.TradingState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state log: %w", err)
	}
	states := make(map[string]*models.TradingState)
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("parse state log %s: %w", path, err)
	}
	return states, nil
}
