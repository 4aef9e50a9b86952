// SPDX-License-Identifier: MIT

package shape

import "errors"

// ErrBadWidth indicates a kernel width that is non-finite, non-positive,
// or not below the speed of light.
var ErrBadWidth = errors.New("shape: width must be finite, > 0 and < c")
