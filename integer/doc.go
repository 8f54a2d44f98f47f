// Package integer provides the arbitrary-precision signed integer used
// throughout PPLite: linear expression coefficients, constraint and
// generator inhomogeneous terms, and the scratch arithmetic of the
// double-description conversion.
//
// What
//
//   - Integer wraps math/big.Int and never represents ±∞; the zero value
//     is a valid, unique representation of zero.
//   - Arithmetic (Add, Sub, Mul, Neg, Abs, Sign, Cmp) follows the usual
//     ring laws; Gcd, Lcm and ExactDiv implement the number-theoretic
//     primitives the conversion/simplification algorithms need.
//   - Mul switches to github.com/remyoudompheng/bigfft once both operands
//     exceed bigfftThreshold bits, matching the crossover point where
//     Schönhage–Strassen multiplication starts to outperform the
//     schoolbook/Karatsuba paths math/big uses internally.
//
// Why
//
//   - The DD engine is exact: every row combination (linear.Combine) and
//     every normalization (strong_normalize) must be performed without
//     rounding. Floating point is never used for coefficients.
//
// Determinism
//
//	All operations are pure functions of their operands; Integer carries
//	no hidden global state. Hash is consistent with Equal.
//
// Complexity
//
//   - Add/Sub/Cmp/Sign: O(n) in the number of machine words.
//   - Mul: O(n^1.585) (Karatsuba) below bigfftThreshold, O(n log n log log n)
//     (Schönhage–Strassen via bigfft) above it.
//   - Gcd/Lcm: O(n^2) via math/big's binary GCD.
package integer
