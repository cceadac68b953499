// Package builder produces the topologies the colouring agents run on.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:    creates a core.Graph and applies Constructors in order.
//     – Constructor:   a closure that mutates a graph using the resolved builderConfig.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the random source for stochastic constructors.
//   - Topologies:
//     – RandomSparse(n, p): Erdős–Rényi sampler, one Bernoulli trial per unordered pair.
//     – Empty(n), Path(n), Cycle(n), Star(n), Complete(n): deterministic fixtures.
//     – EdgeList(n, pairs): an explicit edge set.
//
// Guarantees:
//
//   - Every constructor emits a simple undirected graph; symmetry is enforced
//     by core.Graph itself.
//   - Node ids are the dense range [0, n); constructors grow the graph as needed,
//     so composing Empty(10) with Cycle(4) yields ten nodes with a 4-cycle on 0..3.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Deterministic for a fixed seed and constructor order.
package builder
