package llm

import "errors"

// Construction and validation failures are fatal to a run and are surfaced
// as named errors so callers can tell a misconfiguration from a missing
// model file or an uninstalled backend. Check with errors.Is.
var (
	ErrConfig            = errors.New("required configuration missing")
	ErrModelNotFound     = errors.New("model file not found")
	ErrInvalidPath       = errors.New("invalid model path")
	ErrDependencyMissing = errors.New("backend runtime not installed")
	ErrUnknownProvider   = errors.New("unknown provider")
)
