package graph

import (
	"fmt"
	"strings"
)

// Defect is one named precondition violation found at a stage boundary.
// Defects are collected, not raised, so an incomplete run still finishes and
// stays diagnosable end-to-end.
type Defect struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// RunReport enumerates every defect found during one run. An empty report
// signals a clean pass.
type RunReport struct {
	Defects []Defect `json:"defects"`
}

func (r *RunReport) add(stage, format string, args ...any) {
	r.Defects = append(r.Defects, Defect{Stage: stage, Message: fmt.Sprintf(format, args...)})
}

func (r *RunReport) Clean() bool {
	return len(r.Defects) == 0
}

func (r *RunReport) Summary() string {
	if r.Clean() {
		return "PASSED: all stage checks passed"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "FAILED: %d defect(s)\n", len(r.Defects))
	for _, d := range r.Defects {
		fmt.Fprintf(&b, "  - [%s] %s\n", d.Stage, d.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}
