// Package expander computes a potential field over a costmap with an
// A*-style best-first search bounded by a cycle budget.
//
// The field holds, for each settled cell, its accumulated traversal cost
// from the start. Following its gradient downhill from the goal yields a
// path back to the start (see package gridpath).
//
// Algorithm:
//
//  1. Set every cell to potential.PotHigh and quantize start/goal by truncation.
//  2. Seed the frontier with the start cell at cost 0.
//  3. Each cycle pops the candidate with the lowest cost+heuristic.
//     A candidate whose cell is already settled is discarded.
//     Otherwise its cost is written to the field; the cell is now settled
//     and is never revisited. If it is the goal, stop.
//  4. Every in-bounds, passable, unsettled neighbor gets a tentative cost
//     from the potential.Calculator and is pushed. There is no
//     decrease-key: duplicates coexist and stale ones are skipped at pop.
//
// Termination:
//
//   - Goal settled:            Found, ReasonGoalReached.
//   - Frontier empty:          ReasonUnreachable.
//   - Cycle budget exhausted:  ReasonBudgetExhausted. Each pop, stale or not,
//     consumes one cycle; maxCycles == 0 fails before settling anything.
//
// Only invalid input (nil costmap, out-of-bounds coordinates, negative
// budget) is reported as an error.
//
// Complexity:
//
//   - Time:  O(C·d·log P) for C cycles, d neighbors, P pushed candidates.
//   - Space: O(W×H + P); frontier storage is reserved to W×H up front.
//
// Concurrency:
//
//	An Expander is immutable after New. Concurrent calls are safe as long as
//	each has its own field; a costmap may be shared read-only.
package expander
