package models

import (
	"regexp"
	"strings"
)

// Signal is the categorical trade decision derived from the final decision
// text at the end of a run. It is never stored on TradingState.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

var proposalRe = regexp.MustCompile(`FINAL TRANSACTION PROPOSAL:\s*\*\*(BUY|SELL|HOLD)\*\*`)

// ParseSignal classifies free-form decision text into BUY/SELL/HOLD.
// The sentinel phrase takes precedence; otherwise a bare token is accepted.
// ok is false when the text matches neither.
func ParseSignal(text string) (Signal, bool) {
	if m := proposalRe.FindStringSubmatch(strings.ToUpper(text)); m != nil {
		return Signal(m[1]), true
	}
	switch token := strings.ToUpper(strings.TrimSpace(text)); token {
	case "BUY", "SELL", "HOLD":
		return Signal(token), true
	}
	return "", false
}

func (s Signal) Valid() bool {
	return s == SignalBuy || s == SignalSell || s == SignalHold
}
