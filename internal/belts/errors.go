package belts

import "errors"

var (
	// ErrNoSink is returned when the sink id is empty or unknown.
	ErrNoSink = errors.New("belts: sink node is unknown or unspecified")
	// ErrSinkHasOutgoing is returned when the sink has an outgoing original
	// edge, which is never allowed.
	ErrSinkHasOutgoing = errors.New("belts: sink must not have outgoing edges")
	// ErrSourceHasNoEdge is returned when a declared source has no outgoing
	// original edge.
	ErrSourceHasNoEdge = errors.New("belts: source has no outgoing edge")
	// ErrUnknownNode is returned when an edge or source references a node id
	// that was not declared.
	ErrUnknownNode = errors.New("belts: edge or source references unknown node")
	// ErrLowerExceedsCap is returned when a node's incoming lower bounds
	// exceed its own throughput cap.
	ErrLowerExceedsCap = errors.New("belts: lower bound exceeds node cap")
	// ErrNegativeBound is returned when a lower bound is negative or an
	// upper bound is below its lower bound.
	ErrNegativeBound = errors.New("belts: edge bounds are invalid")
	// ErrMaxFlowUnbounded surfaces when the oracle finds an uncapped
	// augmenting path, which the two synthetic super-nodes should prevent.
	ErrMaxFlowUnbounded = errors.New("belts: max-flow oracle found an unbounded path")
)
