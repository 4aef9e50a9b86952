// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates too few grid points or an empty/negative range.
var ErrBadSize = errors.New("synth: invalid size/range")

// ErrBadInput indicates a wavelength grid that is not strictly increasing
// or has non-positive entries.
var ErrBadInput = errors.New("synth: invalid wavelength grid")

// Method names used as error context.
const (
	methodUniformGrid    = "UniformGrid"
	methodLogUniformGrid = "LogUniformGrid"
	methodBuildSpectrum  = "BuildSpectrum"
)

// synthErrorf returns "<method>: <msg>: <sentinel>" keeping errors.Is intact.
func synthErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
