package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fixmat/docfile"
	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

func newTestSession[T matrix.Element](t *testing.T) (*session[T], *bytes.Buffer, string) {
	t.Helper()
	out := &bytes.Buffer{}

	return newSession[T](out), out, t.TempDir()
}

func TestEvalScenario(t *testing.T) {
	s, out, dir := newTestSession[int](t)
	a, b, c := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.yaml"), filepath.Join(dir, "c.json")

	quit, failed := runAll(s, "fill "+a+" 3 3 5; fill "+b+" 3 3 4; add "+a+" "+b+" "+c+"; show "+c)
	require.False(t, quit)
	require.Equal(t, 0, failed)
	require.Equal(t, "[9, 9, 9]\n[9, 9, 9]\n[9, 9, 9]\n", out.String())

	var got matrix.Matrix[int]
	require.NoError(t, docfile.Read(c, &got))
	want, err := matrix.NewFilled(3, 3, 9)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestScalarAndTranspose(t *testing.T) {
	s, out, dir := newTestSession[float64](t)
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	require.NoError(t, s.Dispatch("fill "+a+" 2 3 4"))
	require.NoError(t, s.Dispatch("shift "+a+" 3 "+b))
	require.NoError(t, s.Dispatch("scale "+b+" 0.5 "+b))
	require.NoError(t, s.Dispatch("transpose "+b+" "+b))
	require.NoError(t, s.Dispatch("show "+b))
	require.Equal(t, "[3.5, 3.5]\n[3.5, 3.5]\n[3.5, 3.5]\n", out.String())

	out.Reset()
	require.NoError(t, s.Dispatch("sub "+a+" "+a+" "+a))
	require.NoError(t, s.Dispatch("EQ "+a+" "+a))
	require.Equal(t, "true\n", out.String())
}

func TestDispatchErrors(t *testing.T) {
	s, _, dir := newTestSession[int](t)
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, s.Dispatch("fill "+a+" 2 2 1"))
	require.NoError(t, s.Dispatch("fill "+b+" 3 3 1"))

	require.ErrorIs(t, s.Dispatch("frobnicate"), ErrUsage)
	require.ErrorIs(t, s.Dispatch("add "+a), ErrUsage)
	require.ErrorIs(t, s.Dispatch("   "), ErrUsage)
	require.ErrorIs(t, s.Dispatch("quit now"), ErrUsage)
	require.ErrorIs(t, s.Dispatch("quit"), errQuit)

	err := s.Dispatch("fill " + a + " 2 2 4.1")
	require.ErrorIs(t, err, ErrUsage)
	require.ErrorIs(t, err, matrix.ErrTypeMismatch)

	require.ErrorIs(t, s.Dispatch("fill "+a+" 0 2 1"), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, s.Dispatch("add "+a+" "+b+" "+filepath.Join(dir, "c.json")), matrix.ErrDimensionMismatch)

	quit, failed := runAll(s, "frobnicate; quit; show "+a)
	require.True(t, quit)
	require.Equal(t, 1, failed)
}

func TestHelpAndCompleters(t *testing.T) {
	s, out, _ := newTestSession[float64](t)

	require.NoError(t, s.Dispatch("help"))
	require.Contains(t, out.String(), "fill <out> <rows> <cols> <value>")
	require.Contains(t, out.String(), "transpose <a> <out>")
	require.NotNil(t, s.Completers())
}

func TestNewDispatcher(t *testing.T) {
	_, err := newDispatcher("int", &bytes.Buffer{})
	require.NoError(t, err)
	_, err = newDispatcher("complex128", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUsage)
}
