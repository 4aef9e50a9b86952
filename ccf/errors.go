// SPDX-License-Identifier: MIT

package ccf

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "ccf: ". Callers match with errors.Is;
// returned errors carry the operation name via ccfErrorf.
var (
	// ErrNilPlan indicates a nil *Plan.
	ErrNilPlan = errors.New("ccf: plan is nil")

	// ErrNilShape indicates NewPlan was given a nil shape.
	ErrNilShape = errors.New("ccf: mask shape is nil")

	// ErrEmptyGrid indicates a velocity grid with no points.
	ErrEmptyGrid = errors.New("ccf: velocity grid is empty")

	// ErrSpeedOfLightMismatch indicates the Doppler c differs from the shape's c.
	ErrSpeedOfLightMismatch = errors.New("ccf: Doppler and shape disagree on speed of light")

	// ErrLengthMismatch indicates wavelength, flux and variance slices of different lengths.
	ErrLengthMismatch = errors.New("ccf: input arrays differ in length")

	// ErrOutputLength indicates an output slice whose length is not the grid length.
	ErrOutputLength = errors.New("ccf: output length does not match velocity grid")

	// ErrWorkspaceLength indicates a workspace not sized to the pixel grid.
	ErrWorkspaceLength = errors.New("ccf: workspace length does not match pixel grid")

	// ErrTooFewPixels indicates fewer than two pixels; edges are undefined.
	ErrTooFewPixels = errors.New("ccf: need at least two pixels")

	// ErrNotIncreasing indicates wavelengths that are not strictly increasing.
	ErrNotIncreasing = errors.New("ccf: wavelengths must be strictly increasing")

	// ErrEmptyMask indicates Project was called with an empty line list.
	// Compute* treat an empty list as all-zero output instead.
	ErrEmptyMask = errors.New("ccf: line list is empty")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("ccf: workers must be > 0")
)

// Operation names used as error context.
const (
	opNewPlan         = "NewPlan"
	opProject         = "Project"
	opCompute         = "Compute"
	opComputeVar      = "ComputeWithVariance"
	opComputeSegVar   = "ComputeSegmentVariance"
	opComputeParallel = "ComputeConcurrent"
)

// ccfErrorf prefixes err with the operation name, keeping errors.Is intact.
func ccfErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
