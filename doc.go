// Package polyroots computes real roots of univariate polynomials with
// float64 coefficients using closed-form and structural reductions, backed
// by exact polynomial arithmetic (division, GCD, square-free decomposition).
//
// Design goals:
//   - Pure value semantics: every operation is a function over immutable inputs
//   - Exact rational bridge (bounded 32-bit fractions) so Euclidean-style
//     algorithms terminate despite floating-point coefficients
//   - Typed outcomes: a tagged RootReport instead of sentinel values
//   - No numeric iteration: unrecognized high-degree structure is reported
//     as Unsupported, never guessed at
//
// The intended production follow-up for the Unsupported case is root
// isolation via Sturm sequences plus bisection, seeded from RootBound.
package polyroots
