// Package coloring owns the per-node colour assignment and the local agent
// rule that repairs it.
//
// A Coloring stores, for every node, the index of its colour in the fixed
// palette order (see package palette). The active palette at size k is the
// index range [0, k).
//
// Per round, Sweep visits nodes in increasing id order over one shared
// Coloring. A node that shares a colour with any neighbour draws
// rng.Float64(); below the change probability it takes the first index in
// [0, k) no neighbour holds. Writes are visible to every later node of the
// same pass; there is no snapshot.
//
// Colours outside the active range are never reset by this package. A node
// keeps such a colour until it is itself in conflict and recolours.
//
// Errors:
//
//	ErrSizeMismatch       - the colouring does not cover every graph node.
//	ErrEmptyActivePalette - active size k < 1.
//	ErrInvalidProbability - change probability outside [0, 1].
//	ErrNodeOutOfRange     - a node id outside the colouring.
package coloring
