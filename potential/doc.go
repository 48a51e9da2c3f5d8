// Package potential defines how a tentative potential is propagated into a
// candidate cell from its already-settled neighborhood.
//
// What:
//
//   - Calculator is the single-method contract consumed by the expander.
//   - Additive: prev + step·(neutral + factor·cost), a local Bellman update.
//   - Quadratic: interpolates over the four orthogonal neighbor potentials,
//     which rounds off the 8-direction artifacts of a pure additive field.
//
// Invariants:
//
//   - The result is never below the minimum settled neighbor potential.
//   - The cell's own cost enters as an additive penalty, so Inscribed margins
//     push the gradient away from obstacles.
//   - Lethal cells never reach a Calculator; the expander filters them.
//
// The field is initialized to PotHigh; any value below it is settled.
package potential
