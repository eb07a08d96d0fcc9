// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Enforce the optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - New/NewFilled: O(r*c); At/Set/RowView: O(1); Row/Column/Clone: O(r) .. O(r*c);
//     Move: O(1); AddRow: amortized O(c); AddColumn: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxRowView   = "RowView"
	ctxColumn    = "Column"
	ctxAddRow    = "AddRow"
	ctxAddColumn = "AddColumn"
	ctxApply     = "Apply"
	ctxNew       = "New"
	ctxFromRows  = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense M×N container of T in row-major order.
//   - r,c hold dimensions (rows=M, cols=N); both are zero only after Move.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection (see options.go).
//
// A Matrix owns its storage exclusively. It is not safe for concurrent
// mutation; callers synchronize externally.
type Matrix[T Element] struct {
	r, c           int
	data           []T
	validateNaNInf bool
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Default construction with strict shape validation.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0, cols<=0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	n, ok := area(rows, cols)
	if !ok {
		return nil, denseErrorf(ctxNew, rows, cols, fmt.Errorf("size overflows int: %w", ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	// make() zero-fills deterministically.
	return &Matrix[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// area returns rows*cols for positive dimensions, or false on int overflow.
func area(rows, cols int) (int, bool) {
	if rows > math.MaxInt/cols {
		return 0, false
	}

	return rows * cols, true
}

// NewFilled creates a rows×cols matrix with every element equal to value.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrNaNInf when value is non-finite and the numeric policy is enabled.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Element](rows, cols int, value T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(value) {
		return nil, denseErrorf(ctxNew, rows, cols, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// FromRows builds a matrix from a row-major literal. The input is copied.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or its first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf under the numeric policy.
func FromRows[T Element](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	m, err := New[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Identity returns the n×n matrix with ones on the diagonal and zeros elsewhere.
func Identity[T Element](n int, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// newMatrixZeroOK allocates a rows×cols matrix allowing a zero shape.
// Used by operations whose operands may have been emptied by Move.
func newMatrixZeroOK[T Element](rows, cols int, validateNaNInf bool) *Matrix[T] {
	return &Matrix[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// Rows returns M, the row count. Zero for a nil or moved-from matrix.
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns N, the column count. Zero for a nil or moved-from matrix.
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Height is an alias for Rows.
func (m *Matrix[T]) Height() int { return m.Rows() }

// Width is an alias for Cols.
func (m *Matrix[T]) Width() int { return m.Cols() }

// Size returns M*N.
func (m *Matrix[T]) Size() int { return m.Rows() * m.Cols() }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrOutOfRange for invalid indices.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange; ErrNaNInf under the numeric policy.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a Vec sharing the matrix storage: writes through
// the returned Vec are visible in m. The view is capacity-limited, so append
// on it never clobbers the next row.
//
// The view is invalidated by AddRow, AddColumn and Move: growth may
// reallocate storage, after which the view silently detaches from m.
// Writes through the view bypass the numeric policy.
func (m *Matrix[T]) RowView(i int) (Vec[T], error) {
	if m == nil {
		return nil, denseErrorf(ctxRowView, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return Vec[T](m.data[lo:hi:hi]), nil
}

// Row returns a freshly allocated copy of row i.
func (m *Matrix[T]) Row(i int) (Vec[T], error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vec[T], m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a freshly allocated copy of column j, in row order.
func (m *Matrix[T]) Column(j int) (Vec[T], error) {
	if m == nil {
		return nil, denseErrorf(ctxColumn, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make(Vec[T], m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// AddRow appends row as a new last row, growing M by one.
// A moved-from (0×0) matrix accepts any non-empty row and becomes 1×len(row).
//
// Errors:
//   - ErrDimensionMismatch when len(row) != N (or row is empty).
//   - ErrNaNInf under the numeric policy; m is left unchanged.
func (m *Matrix[T]) AddRow(row []T) error {
	if m == nil {
		return denseErrorf(ctxAddRow, 0, len(row), ErrNilMatrix)
	}
	empty := m.r == 0 && m.c == 0
	if len(row) == 0 || (!empty && len(row) != m.c) {
		return fmt.Errorf("Matrix.%s: got %d values, want %d: %w", ctxAddRow, len(row), m.c, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, v := range row {
			if isNonFinite(v) {
				return denseErrorf(ctxAddRow, m.r, j, ErrNaNInf)
			}
		}
	}
	if empty {
		m.c = len(row)
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// AddColumn appends col as a new last column, growing N by one.
// A moved-from (0×0) matrix accepts any non-empty column and becomes len(col)×1.
//
// Errors:
//   - ErrDimensionMismatch when len(col) != M (or col is empty).
//   - ErrNaNInf under the numeric policy; m is left unchanged.
func (m *Matrix[T]) AddColumn(col []T) error {
	if m == nil {
		return denseErrorf(ctxAddColumn, len(col), 0, ErrNilMatrix)
	}
	empty := m.r == 0 && m.c == 0
	if len(col) == 0 || (!empty && len(col) != m.r) {
		return fmt.Errorf("Matrix.%s: got %d values, want %d: %w", ctxAddColumn, len(col), m.r, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for i, v := range col {
			if isNonFinite(v) {
				return denseErrorf(ctxAddColumn, i, m.c, ErrNaNInf)
			}
		}
	}
	if empty {
		m.r = len(col)
	}

	// Re-stride: every row gains one trailing cell.
	nc := m.c + 1
	buf := make([]T, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(buf[i*nc:i*nc+m.c], m.data[i*m.c:(i+1)*m.c])
		buf[i*nc+m.c] = col[i]
	}
	m.data = buf
	m.c = nc

	return nil
}

// Clone returns a deep copy (new buffer, same shape and numeric policy).
// Returns nil for a nil receiver.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Move transfers the storage of m into a new Matrix and leaves m empty
// (0×0, no storage). No elements are copied.
// Returns nil for a nil receiver.
func (m *Matrix[T]) Move() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := &Matrix[T]{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// ToRows returns a deep copy of the elements as a [][]T.
func (m *Matrix[T]) ToRows() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines of comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v), visiting in row-major order.
// Results are staged and committed only when every value passes the numeric
// policy; on ErrNaNInf m is left unchanged.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	if m == nil {
		return denseErrorf(ctxApply, 0, 0, ErrNilMatrix)
	}
	staged := make([]T, len(m.data))
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged) // keep storage identity so RowView aliases stay live

	return nil
}
