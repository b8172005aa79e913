// Package core defines the directed, weighted Graph used internally by the
// belts package to represent the transformed flow network: node-split
// interior vertices, residual-capacity edges, and the super-source/
// super-sink wiring produced by the lower-bound feasibility reduction.
//
// Unlike a general-purpose graph library, this Graph is built once per
// invocation and consumed by a single max-flow pass (see the flow package);
// per the single-threaded, non-suspending invocation model, it carries no
// internal locking.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	AddEdge(from, to string, capacity float64) (string, error) // O(1)
//	Neighbors(id string) ([]*Edge, error)                    // O(d log d), sorted by edge ID
//	Vertices() []string                                      // O(V log V), sorted
//	Edges() []*Edge                                          // O(E log E), sorted by edge ID
//	CloneEmpty() *Graph                                      // O(V): copy vertices only
//
// Edge struct fields:
//
//	ID       string  // "e1", "e2", ...
//	From     string  // source vertex ID
//	To       string  // destination vertex ID
//	Capacity float64 // residual capacity, always >= 0
//
// Errors:
//
//	ErrEmptyVertexID   - zero-length vertex ID
//	ErrVertexNotFound  - missing vertex
//	ErrEdgeNotFound    - missing edge
//	ErrNegativeCapacity - AddEdge called with a negative capacity
package core
