// SPDX-License-Identifier: MIT

package docfile

import "errors"

// ErrUnknownFormat is returned when no Format can be derived from a path
// extension and none was forced with WithFormat.
var ErrUnknownFormat = errors.New("docfile: unknown document format")
