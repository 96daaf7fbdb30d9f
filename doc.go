// Package typedstart is a small starter/template module demonstrating
// typed, immutable data models and pure utility functions in idiomatic Go.
//
// 🚀 What is typedstart?
//
//	A dependency-light playground that brings together:
//		• Immutable values: every record is set once and never mutated
//		• Dense matrices: construction, addition, scaling, transpose
//		• Linear algebra: multiplication, identity, determinant, trace
//		• Typed identifiers: an ID newtype that cannot mix with plain ints
//		• A demo binary wiring everything together with structured logging
//
// ✨ Why start here?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Thread-safe by construction: immutable values need no locks
//   - Fail-fast errors: sentinel errors matched with errors.Is
//
// The module is organized under four packages:
//
//	matrix/  — immutable dense Matrix value + linear-algebra functions
//	user/    — immutable User record with a distinct ID newtype
//	pricing/ — price summation utility
//	cmd/     — typedstart-demo, a run-to-completion showcase binary
//
// Quick example:
//
//	m, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(m) // -2
//
// Dive into each package's doc.go for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/typedlabs/typedstart
package typedstart
