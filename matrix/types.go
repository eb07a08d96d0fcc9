// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and its operations.
// This file intentionally contains ONLY type declarations (element constraint,
// vector capability, slice-backed vector). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Element is the set of value types a Matrix can hold.
// Every member supports +, -, * and == so the arithmetic kernels stay generic.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is the minimal capability of an indexed, mutable sequence of T.
// It owns no storage contract and no fixed size; implementers decide the
// valid index range and MUST report ErrOutOfRange outside of it.
//
// Complexity notes: all methods are expected O(1).
type Vector[T any] interface {
	// Len returns the number of addressable elements.
	Len() int

	// At returns the element at index i.
	// Returns ErrOutOfRange if i<0 or i>=Len().
	At(i int) (T, error)

	// Set assigns v at index i.
	// Returns ErrOutOfRange if i<0 or i>=Len().
	Set(i int, v T) error
}

// Vec is a slice-backed Vector. Row and Column return freshly allocated Vecs;
// RowView returns a Vec sharing the matrix storage.
type Vec[T Element] []T
