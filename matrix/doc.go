// SPDX-License-Identifier: MIT

// Package matrix provides an immutable dense-matrix value type and a small
// set of pure linear-algebra functions over it: multiplication, identity
// construction, determinant (recursive cofactor expansion) and trace.
//
// Design:
//   - Matrix is a value: all fields are unexported, there is no setter, and
//     every operation allocates and returns a fresh result. Operands are
//     never mutated and results never alias operand storage.
//   - Storage is row-major in a single flat slice (index formula i*cols+j)
//     for cache friendliness and a trivial equality walk.
//   - All loops run in a fixed order (i→j, or i→k→j for multiplication);
//     behavior is fully deterministic.
//
// Error policy:
//   - Public entry points never panic on user input; they return sentinel
//     errors (see errors.go) matched with errors.Is. Contextual wrapping
//     uses fmt.Errorf("Op: %w", ErrX) so the sentinel stays matchable.
//   - Panics are reserved for programmer errors (e.g. a nonsensical option
//     parameter, see options.go).
//
// Numeric policy:
//   - Equal is exact element-wise comparison; EqualApprox compares within
//     a non-negative epsilon (DefaultEpsilon unless overridden via
//     WithEpsilon).
//   - Det intentionally uses first-row Laplace (cofactor) expansion with no
//     pivoting. The method is O(n!) and suited to small matrices only; it
//     returns the exact algebraic result for integer-valued inputs (e.g. a
//     singular integer matrix yields exactly 0, not a rounding artifact).
//
// AI-Hints:
//   - Build matrices once via New and share them freely across goroutines;
//     immutability makes concurrent reads safe without locks.
//   - Prefer errors.Is against the package sentinels over string matching.
package matrix
