// SPDX-License-Identifier: MIT

// Package docfile: functional options for Read and Write.
//
// Invalid option values are programmer errors and panic at construction,
// the same policy the matrix options follow for nonsensical thresholds.
package docfile

import (
	"os"
	"strings"
)

const (
	// DefaultIndent is the JSON indentation used by Write.
	DefaultIndent = "  "
	// DefaultPerm is the file mode used by Write for new files.
	DefaultPerm os.FileMode = 0o644
)

const (
	panicIndentInvalid = "docfile: WithIndent requires a whitespace-only indent"
	panicPermInvalid   = "docfile: WithPerm requires non-zero permission bits only"
	panicFormatInvalid = "docfile: WithFormat requires FormatJSON or FormatYAML"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration of a Read or Write call.
type Options struct {
	indent string
	perm   os.FileMode
	format Format // FormatAuto: derive from the path
}

// WithIndent sets the JSON indentation. An empty indent writes compact JSON.
// YAML output always uses the encoder's own layout.
func WithIndent(indent string) Option {
	if strings.TrimSpace(indent) != "" {
		panic(panicIndentInvalid)
	}

	return func(o *Options) { o.indent = indent }
}

// WithPerm sets the permission bits for files created by Write.
func WithPerm(perm os.FileMode) Option {
	if perm == 0 || perm&^os.ModePerm != 0 {
		panic(panicPermInvalid)
	}

	return func(o *Options) { o.perm = perm }
}

// WithFormat forces a format regardless of the path extension.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatYAML {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

func gatherOptions(opts ...Option) Options {
	o := Options{indent: DefaultIndent, perm: DefaultPerm, format: FormatAuto}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
