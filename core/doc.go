// Package core defines the immutable Graph consumed by the distance oracle
// and the reward optimisers.
//
// A Graph has N nodes with dense identifiers 0..N-1. Each node carries a
// non-negative reward weight and a list of neighbours reachable at unit cost.
// Edges are expected to be bidirectional; WithSymmetricEdges enforces it.
//
// Two constructors are provided:
//
//	NewGraph(weights, adj, opts...)   // ids already dense
//	NewBuilder().AddNode(...).Build() // named nodes, ids assigned by sorted name
//
// Once built, a Graph is read-only and may be shared between goroutines
// without synchronisation.
//
// Errors:
//
//	ErrEmptyGraph, ErrShapeMismatch, ErrNegativeWeight, ErrNodeNotFound,
//	ErrAsymmetricEdge, ErrEmptyName, ErrDuplicateNode, ErrUnknownNode.
package core
