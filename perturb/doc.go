// Package perturb toggles graph edges on a schedule to model topology drift.
//
// Two variants are provided:
//
//   - Approximate (default): repeatedly scan every unordered pair and toggle
//     each with probability count/maxEdges until at least count toggles have
//     happened. A scan is always finished once started, so the total can
//     overshoot count; it never undershoots.
//   - Exact: toggle exactly min(count, maxEdges) distinct pairs chosen
//     uniformly at random.
//
// count == 0 and graphs with fewer than two nodes (maxEdges == 0) are no-ops.
package perturb
