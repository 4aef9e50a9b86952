// SPDX-License-Identifier: MIT

// Package chunk aggregates the CCFs of spectral chunks (echelle orders,
// detector segments) into one CCF per velocity.
//
// 🚀 What
//
//	Every Chunk carries its own wavelengths, flux, optional variance and a
//	ccf.Plan (usually the same shape and velocity grid with a per-chunk line
//	list, see ccf.Plan.WithLines). Aggregate evaluates each chunk
//	independently and sums the results elementwise.
//
// ⚙️ How
//
//   - A bounded job channel feeds a fixed pool of workers; each worker owns
//     one ccf.Workspace, resized per chunk.
//   - The first error cancels the context shared by producer and workers;
//     remaining jobs are drained and that error is returned.
//   - Per-chunk results are summed in chunk order after all workers finish,
//     so the total is independent of the worker count.
//   - WithProgress publishes a Progress value on a caster.Caster after
//     every finished chunk.
//
// 🧮 Complexity
//
//	Time  O(Σ_chunks V·(P_i + L_i) / workers)
//	Space O(workers·max P_i + chunks·V)
//
// ❗ Errors
//
//   - ErrNoChunks, ErrGridMismatch, ErrMissingVariance.
//   - Any ccf error of a chunk, wrapped with the chunk index.
//   - ctx.Err() when the caller cancels.
package chunk
