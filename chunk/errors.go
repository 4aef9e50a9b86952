// SPDX-License-Identifier: MIT

package chunk

import "errors"

var (
	// ErrNoChunks indicates Aggregate was called without chunks.
	ErrNoChunks = errors.New("chunk: no chunks")

	// ErrGridMismatch indicates chunk plans on different velocity grids,
	// or Sum inputs of different lengths.
	ErrGridMismatch = errors.New("chunk: velocity grids differ")

	// ErrMissingVariance indicates variance was requested but a chunk has none.
	ErrMissingVariance = errors.New("chunk: variance requested but missing")
)
