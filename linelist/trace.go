// SPDX-License-Identifier: MIT

package linelist

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rvccf'.
func tracer() tracing.Trace {
	return tracing.Select("rvccf")
}
