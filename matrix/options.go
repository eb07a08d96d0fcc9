// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The numeric policy is carried per instance and preserved by Clone,
//     Move, Transpose and every copy-returning operation (the result inherits
//     the policy of the left operand).
//   - Integer element types can never produce NaN/Inf, so the policy only
//     matters for float32/float64 matrices.
package matrix

import "math"

// DefaultValidateNaNInf toggles strict finite-value validation on Set, Apply
// and arithmetic results. Off by default: a generic container stores what the
// caller gives it.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, writes and arithmetic results that are NaN or ±Inf are
// rejected with ErrNaNInf and the target is left unchanged.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf. Always false for integers.
func isNonFinite[T Element](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
