// SPDX-License-Identifier: MIT
// Package search drives the decentralised colouring heuristic: repeated
// attempts of in-order agent rounds at a fixed palette size, and a palette
// controller that shrinks or grows that size between attempts.
//
// Attempt state machine:
//
//	Init ─▶ Round ─┬─▶ Round ...
//	               ├─▶ Converged  (conflicts reached 0)
//	               └─▶ Exhausted  (round budget spent)
//
// Every attempt starts from a fresh uniform colouring over the active
// palette and runs at least one round. An attempt's round budget is the
// per-attempt budget, truncated by whatever is left of the global budget.
//
// Controller policies:
//   - Monotone: start at the full palette; after every Converged attempt try
//     one colour fewer; stop at the first Exhausted attempt or when the next
//     size would fall below MinPaletteSize. The last Converged attempt is the
//     best result.
//   - Adaptive: start at the full palette; one colour fewer after Converged,
//     one more after Exhausted (bounded by MinPaletteSize and the palette
//     size) until MaxTotalRounds global rounds have run. The perturbation
//     schedule fires on the global round counter in this mode only.
//
// After each round the history tracker observes the live colouring, the
// recorder receives the round, and (adaptive) the schedule may toggle edges;
// convergence is judged on the topology as it stands after that.
//
// The Engine owns a private clone of the input graph and is single-use.
// Everything handed out in a Result is a copy.
package search
