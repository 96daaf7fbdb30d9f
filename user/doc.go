// SPDX-License-Identifier: MIT

// Package user defines the immutable User record and its distinct ID
// newtype. Values are set once at construction and never mutated, so they
// are safe to share across goroutines without locking.
package user
