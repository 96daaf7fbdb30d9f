// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values; invalid parameters are programmer errors, not user input).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume
//     ...Option.

package matrix

import "math"

// DefaultEpsilon defines the non-negative tolerance used by EqualApprox.
// Exact comparisons (Equal) ignore it.
const DefaultEpsilon = 1e-9

// Option mutates the internal options state. Apply via EqualApprox.
type Option func(*options)

// options holds the gathered numeric policy. Unexported by design.
type options struct {
	eps float64 // non-negative comparison tolerance
}

// defaultOptions reflects the documented default constants above.
func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the comparison tolerance for EqualApprox.
// Panics if eps is negative or NaN: such a tolerance is nonsensical and
// indicates a programmer error at the call site.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("matrix: WithEpsilon requires a non-negative, non-NaN epsilon")
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// EqualApprox reports element-wise equality within the configured epsilon:
// |a-b| <= eps for every element. A nil argument or a shape mismatch is
// unequal, never an error. NaN elements compare unequal (NaN != NaN under
// any tolerance).
// Complexity: O(r*c).
func (m *Matrix) EqualApprox(o *Matrix, opts ...Option) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	cfg := gatherOptions(opts...)
	for i, v := range m.data {
		if !(math.Abs(v-o.data[i]) <= cfg.eps) { // NaN-safe: comparison is false for NaN
			return false
		}
	}

	return true
}
