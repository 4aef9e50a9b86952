// SPDX-License-Identifier: MIT

package chunk

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rvccf'.
func tracer() tracing.Trace {
	return tracing.Select("rvccf")
}
