// SPDX-License-Identifier: MIT

package interop

import "errors"

// ErrUnsupported indicates a source value that has no dense float64 2-D
// equivalent (wrong dtype or rank).
var ErrUnsupported = errors.New("interop: unsupported source")
