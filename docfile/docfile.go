// SPDX-License-Identifier: MIT

// Package docfile reads and writes structured documents (JSON or YAML) to
// named files. Any value with json/yaml (un)marshalers works; for a
// *matrix.Matrix[T] the matrix codec applies its full shape and type checks
// on Read.
//
// Paths go through islazy's fs.Expand, so "~/m.json" resolves against the
// current user's home directory.
package docfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evilsocket/islazy/fs"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format int

const (
	// FormatAuto derives the format from the path extension.
	FormatAuto Format = iota
	// FormatJSON is encoding/json with configurable indentation.
	FormatJSON
	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML
)

// String returns the lower-case name of f.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// FormatFromPath picks a Format by extension: .json, .yaml or .yml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Write encodes v and writes it to path, returning the number of bytes written.
func Write(path string, v any, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	fn, format, err := resolve(path, o)
	if err != nil {
		return 0, err
	}

	var data []byte
	switch format {
	case FormatYAML:
		if data, err = yaml.Marshal(v); err != nil {
			return 0, fmt.Errorf("yaml marshal: %w", err)
		}
	default:
		if o.indent == "" {
			data, err = json.Marshal(v)
		} else {
			data, err = json.MarshalIndent(v, "", o.indent)
		}
		if err != nil {
			return 0, fmt.Errorf("json marshal: %w", err)
		}
		data = append(data, '\n')
	}

	if err = os.WriteFile(fn, data, o.perm); err != nil {
		return 0, fmt.Errorf("write %s: %w", fn, err)
	}

	return len(data), nil
}

// Read reads path and decodes it into v. A missing file stays matchable
// with errors.Is(err, os.ErrNotExist).
func Read(path string, v any, opts ...Option) error {
	o := gatherOptions(opts...)
	fn, format, err := resolve(path, o)
	if err != nil {
		return err
	}
	if !fs.Exists(fn) {
		return fmt.Errorf("read %s: %w", fn, os.ErrNotExist)
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("read %s: %w", fn, err)
	}

	switch format {
	case FormatYAML:
		if err = yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("yaml unmarshal %s: %w", fn, err)
		}
	default:
		if err = json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("json unmarshal %s: %w", fn, err)
		}
	}

	return nil
}

// resolve expands path and settles the format.
func resolve(path string, o Options) (string, Format, error) {
	fn, err := fs.Expand(path)
	if err != nil {
		return "", FormatAuto, fmt.Errorf("expand %s: %w", path, err)
	}
	format := o.format
	if format == FormatAuto {
		if format, err = FormatFromPath(fn); err != nil {
			return "", FormatAuto, err
		}
	}

	return fn, format, nil
}
