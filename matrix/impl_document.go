// SPDX-License-Identifier: MIT

// Package matrix - structured document encoding (JSON and YAML).
//
// Schema:
//
//	{ "height": M, "width": N, "matrix": [[row 0 ...], ..., [row M-1 ...]] }
//
// Decoding is positional and type-strict, in this order:
//  1. every key must be present                      → ErrMalformedDocument
//  2. height/width must be integers                  → ErrTypeMismatch
//     and positive                                   → ErrInvalidDimensions
//  3. a shaped receiver must match height/width      → ErrDimensionMismatch
//  4. matrix must be an array of arrays              → ErrTypeMismatch
//     with height rows of width values               → ErrDimensionMismatch
//  5. every value must decode as T (no null)         → ErrTypeMismatch
//  6. numeric policy of the result                   → ErrNaNInf
//
// A receiver is committed only after every check passes.

package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document keys.
const (
	keyHeight = "height"
	keyWidth  = "width"
	keyMatrix = "matrix"
)

const (
	opDecode     = "Decode"
	opDecodeYAML = "DecodeYAML"
	opDecodeInto = "DecodeInto"
	opFromDoc    = "FromDocument"
)

// Document is the in-memory form of the structured document.
type Document[T Element] struct {
	Height int   `json:"height" yaml:"height"`
	Width  int   `json:"width" yaml:"width"`
	Matrix [][]T `json:"matrix" yaml:"matrix"`
}

// ToDocument returns the document form of m. Rows are deep-copied.
func (m *Matrix[T]) ToDocument() Document[T] {
	return Document[T]{Height: m.Rows(), Width: m.Cols(), Matrix: m.ToRows()}
}

// MarshalJSON implements json.Marshaler.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	return m.ToDocument().MarshalJSON()
}

// MarshalJSON implements json.Marshaler. Rows are always numeric arrays,
// including for ~uint8 elements that encoding/json would write as base64.
func (d Document[T]) MarshalJSON() ([]byte, error) {
	rows := make([]jsonRow[T], len(d.Matrix))
	for i, r := range d.Matrix {
		rows[i] = r
	}

	return json.Marshal(struct {
		Height int          `json:"height"`
		Width  int          `json:"width"`
		Matrix []jsonRow[T] `json:"matrix"`
	}{d.Height, d.Width, rows})
}

// jsonRow encodes one row as a JSON array of numbers.
type jsonRow[T Element] []T

func (r jsonRow[T]) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+4*len(r))
	buf = append(buf, '[')
	for k, v := range r {
		if k > 0 {
			buf = append(buf, ',')
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}

	return append(buf, ']'), nil
}

// MarshalYAML implements yaml.Marshaler.
func (m *Matrix[T]) MarshalYAML() (interface{}, error) {
	return m.ToDocument(), nil
}

// UnmarshalJSON implements json.Unmarshaler. A receiver that already has a
// shape only accepts documents of that shape; an empty receiver (zero value
// or moved-from) adopts the document's shape. The receiver's numeric policy
// is kept.
func (m *Matrix[T]) UnmarshalJSON(data []byte) error {
	raw, err := parseJSONDocument(data)
	if err != nil {
		return matrixErrorf(opDecodeInto, err)
	}

	return m.commit(raw, opDecodeInto)
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as UnmarshalJSON.
func (m *Matrix[T]) UnmarshalYAML(value *yaml.Node) error {
	raw, err := parseYAMLDocument(value)
	if err != nil {
		return matrixErrorf(opDecodeInto, err)
	}

	return m.commit(raw, opDecodeInto)
}

// Decode builds a new matrix from a JSON document.
func Decode[T Element](data []byte, opts ...Option) (*Matrix[T], error) {
	raw, err := parseJSONDocument(data)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	o := gatherOptions(opts...)
	out, err := build[T](raw, 0, 0, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}

	return out, nil
}

// DecodeYAML builds a new matrix from a YAML document.
func DecodeYAML[T Element](data []byte, opts ...Option) (*Matrix[T], error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, matrixErrorf(opDecodeYAML, fmt.Errorf("%v: %w", err, ErrMalformedDocument))
	}
	raw, err := parseYAMLDocument(&root)
	if err != nil {
		return nil, matrixErrorf(opDecodeYAML, err)
	}
	o := gatherOptions(opts...)
	out, err := build[T](raw, 0, 0, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opDecodeYAML, err)
	}

	return out, nil
}

// DecodeInto decodes a JSON document into m, which must already be shaped
// and must match the document's height/width.
func DecodeInto[T Element](m *Matrix[T], data []byte) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDecodeInto, err)
	}
	if m.r == 0 || m.c == 0 {
		return matrixErrorf(opDecodeInto, ErrInvalidDimensions)
	}

	return m.UnmarshalJSON(data)
}

// FromDocument builds a matrix from an in-memory Document with the same
// shape checks as Decode.
func FromDocument[T Element](doc Document[T], opts ...Option) (*Matrix[T], error) {
	if doc.Height <= 0 || doc.Width <= 0 {
		return nil, matrixErrorf(opFromDoc, ErrInvalidDimensions)
	}
	if len(doc.Matrix) != doc.Height {
		return nil, matrixErrorf(opFromDoc,
			fmt.Errorf("%d rows, height %d: %w", len(doc.Matrix), doc.Height, ErrDimensionMismatch))
	}
	for i, row := range doc.Matrix {
		if len(row) != doc.Width {
			return nil, matrixErrorf(opFromDoc,
				fmt.Errorf("row %d has %d values, width %d: %w", i, len(row), doc.Width, ErrDimensionMismatch))
		}
	}
	out, err := FromRows(doc.Matrix, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromDoc, err)
	}

	return out, nil
}

// commit decodes raw against the receiver's shape and swaps storage in on success.
func (m *Matrix[T]) commit(raw *rawDocument, tag string) error {
	if m == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	out, err := build[T](raw, m.r, m.c, m.validateNaNInf)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	m.r, m.c, m.data = out.r, out.c, out.data

	return nil
}

// ---------- codec-neutral decoding ----------

// cell decodes one encoded scalar.
type cell interface {
	decode(dst any) error
	isNull() bool
	// isFloatLiteral reports a value written as a float that the codec
	// would otherwise truncate silently when decoding into an integer.
	isFloatLiteral() bool
}

// rawDocument is a parsed but not yet typed document. A nil header field
// means the key was absent.
type rawDocument struct {
	height, width cell
	hasMatrix     bool
	rows          [][]cell
	rowsErr       error // matrix present but not an array of arrays
}

// build validates raw and materializes it as a Matrix[T].
// wantRows/wantCols of 0 mean "any shape".
func build[T Element](raw *rawDocument, wantRows, wantCols int, validateNaNInf bool) (*Matrix[T], error) {
	switch {
	case raw.height == nil:
		return nil, fmt.Errorf("missing %q: %w", keyHeight, ErrMalformedDocument)
	case raw.width == nil:
		return nil, fmt.Errorf("missing %q: %w", keyWidth, ErrMalformedDocument)
	case !raw.hasMatrix:
		return nil, fmt.Errorf("missing %q: %w", keyMatrix, ErrMalformedDocument)
	}

	h, err := decodeDimension(raw.height, keyHeight)
	if err != nil {
		return nil, err
	}
	w, err := decodeDimension(raw.width, keyWidth)
	if err != nil {
		return nil, err
	}
	if wantRows != 0 || wantCols != 0 {
		if err = ValidateShape(shape{wantRows, wantCols}, h, w); err != nil {
			return nil, err
		}
	}

	if raw.rowsErr != nil {
		return nil, fmt.Errorf("%q: %v: %w", keyMatrix, raw.rowsErr, ErrTypeMismatch)
	}
	if len(raw.rows) != h {
		return nil, fmt.Errorf("%q has %d rows, height %d: %w", keyMatrix, len(raw.rows), h, ErrDimensionMismatch)
	}
	// Shape is fully checked against the parsed rows before allocating.
	for i, row := range raw.rows {
		if len(row) != w {
			return nil, fmt.Errorf("%q row %d has %d values, width %d: %w", keyMatrix, i, len(row), w, ErrDimensionMismatch)
		}
	}
	if _, ok := area(h, w); !ok {
		return nil, fmt.Errorf("%d×%d overflows int: %w", h, w, ErrInvalidDimensions)
	}

	out := newMatrixZeroOK[T](h, w, validateNaNInf)
	intT := isIntegerType[T]()
	var v T
	for i, row := range raw.rows {
		for j, c := range row {
			if c.isNull() || (intT && c.isFloatLiteral()) {
				return nil, denseErrorf(ctxSet, i, j, ErrTypeMismatch)
			}
			if err = c.decode(&v); err != nil {
				return nil, denseErrorf(ctxSet, i, j, fmt.Errorf("%v: %w", err, ErrTypeMismatch))
			}
			if validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			out.data[i*w+j] = v
		}
	}

	return out, nil
}

// shape is a bare Shaped used to check a receiver's dimensions.
type shape struct{ r, c int }

func (s shape) Rows() int { return s.r }
func (s shape) Cols() int { return s.c }

// decodeDimension reads a positive integer header value.
func decodeDimension(c cell, key string) (int, error) {
	var n int
	if c.isNull() || c.isFloatLiteral() {
		return 0, fmt.Errorf("%q is not an integer: %w", key, ErrTypeMismatch)
	}
	if err := c.decode(&n); err != nil {
		return 0, fmt.Errorf("%q: %v: %w", key, err, ErrTypeMismatch)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q=%d: %w", key, n, ErrInvalidDimensions)
	}

	return n, nil
}

// ---------- JSON ----------

type jsonCell json.RawMessage

func (c jsonCell) decode(dst any) error { return json.Unmarshal(c, dst) }

func (c jsonCell) isNull() bool { return bytes.Equal(bytes.TrimSpace(c), []byte("null")) }

// encoding/json already rejects 4.1 and 4.0 for integer targets.
func (c jsonCell) isFloatLiteral() bool { return false }

func parseJSONDocument(data []byte) (*rawDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedDocument)
	}
	raw := &rawDocument{}
	if v, ok := fields[keyHeight]; ok {
		raw.height = jsonCell(v)
	}
	if v, ok := fields[keyWidth]; ok {
		raw.width = jsonCell(v)
	}
	if v, ok := fields[keyMatrix]; ok {
		raw.hasMatrix = true
		var rows [][]json.RawMessage
		if err := json.Unmarshal(v, &rows); err != nil {
			raw.rowsErr = err
		} else {
			raw.rows = make([][]cell, len(rows))
			for i, row := range rows {
				raw.rows[i] = make([]cell, len(row))
				for j, c := range row {
					raw.rows[i][j] = jsonCell(c)
				}
			}
		}
	}

	return raw, nil
}

// ---------- YAML ----------

type yamlCell struct{ n *yaml.Node }

func (c yamlCell) decode(dst any) error { return c.n.Decode(dst) }

func (c yamlCell) isNull() bool {
	return c.n.Kind == yaml.ScalarNode && c.n.ShortTag() == "!!null"
}

func (c yamlCell) isFloatLiteral() bool {
	return c.n.Kind == yaml.ScalarNode && c.n.ShortTag() == "!!float"
}

func parseYAMLDocument(root *yaml.Node) (*rawDocument, error) {
	n := root
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("empty document: %w", ErrMalformedDocument)
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document is not a mapping: %w", ErrMalformedDocument)
	}

	raw := &rawDocument{}
	for k := 0; k+1 < len(n.Content); k += 2 {
		key, val := n.Content[k].Value, n.Content[k+1]
		switch key {
		case keyHeight:
			raw.height = yamlCell{val}
		case keyWidth:
			raw.width = yamlCell{val}
		case keyMatrix:
			raw.hasMatrix = true
			raw.rows, raw.rowsErr = yamlRows(val)
		}
	}

	return raw, nil
}

func yamlRows(n *yaml.Node) ([][]cell, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: not a sequence", n.Line)
	}
	rows := make([][]cell, len(n.Content))
	for i, r := range n.Content {
		if r.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: row %d is not a sequence", r.Line, i)
		}
		rows[i] = make([]cell, len(r.Content))
		for j, c := range r.Content {
			rows[i][j] = yamlCell{c}
		}
	}

	return rows, nil
}
