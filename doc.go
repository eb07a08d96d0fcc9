// Package fixmat is a small toolkit for fixed-shape numeric matrices: a
// generic container with element-wise arithmetic, strict structured
// documents and the plumbing to keep them in files.
//
// 🚀 What is fixmat?
//
//	A pure-Go module that brings together:
//		• matrix.Matrix[T]: M×N row-major storage over any integer or float type
//		• Element-wise arithmetic: Add, Sub, Scale, AddScalar, Hadamard, Combine
//		• Row/column access, bounds-checked, returning errors instead of panicking
//		• Structured documents: {"height": M, "width": N, "matrix": [[...]]} in JSON and YAML
//		• gonum interop for everything beyond element-wise work
//
// Under the hood, everything is organized under three packages:
//
//	matrix/          - the Matrix container, arithmetic, codecs and validators
//	docfile/         - read/write documents to named files (format by extension)
//	cmd/matrixctl/   - command-line and interactive front end over document files
//
// Quick example:
//
//	a, _ := matrix.NewFilled(3, 3, 5)
//	b, _ := matrix.NewFilled(3, 3, 4)
//	sum, _ := matrix.Add(a, b) // 3×3 of 9
//	_, _ = docfile.Write("sum.json", sum)
//
//	go get github.com/katalvlaran/fixmat
package fixmat
