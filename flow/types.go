package flow

import (
	"context"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures Dinic.
//   - Ctx: cancellation/timeout; nil means context.Background().
//   - Epsilon: treat capacities <= Epsilon as zero (default 1e-9).
//   - LevelRebuildInterval: rebuild the level graph every N augmentations
//     (0 disables early rebuilding, running each level graph to exhaustion).
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: Background context and
// an epsilon of 1e-9, matching the numeric contract's canonical tolerance.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Epsilon: 1e-9}
}

// normalize fills in zero-valued fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}
