// SPDX-License-Identifier: MIT

package ccf

// Workspace is the caller-owned projection buffer, one value per pixel.
// It is zeroed at the start of every projection and overwritten in place,
// so one Workspace serves any number of velocities, chunks or spectra of
// the same pixel count. It must not be shared between goroutines.
type Workspace struct {
	buf []float64
}

// NewWorkspace allocates a zeroed workspace for n pixels.
func NewWorkspace(n int) *Workspace {
	if n < 0 {
		n = 0
	}

	return &Workspace{buf: make([]float64, n)}
}

// Len returns the number of pixels the workspace holds.
func (w *Workspace) Len() int { return len(w.buf) }

// Values exposes the buffer after a Project call. The slice aliases the
// workspace and is overwritten by the next projection.
func (w *Workspace) Values() []float64 { return w.buf }

// Resize makes the workspace hold n pixels, reusing capacity when possible.
func (w *Workspace) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if cap(w.buf) >= n {
		w.buf = w.buf[:n]
		return
	}
	w.buf = make([]float64, n)
}

func (w *Workspace) zero() {
	for i := range w.buf {
		w.buf[i] = 0
	}
}
