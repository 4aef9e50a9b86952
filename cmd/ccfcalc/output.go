// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/rvccf/ccf"
)

// writeTable prints a header, one row per velocity and a closing comment
// with the minimum. With hl the minimum row is printed in bold red.
func writeTable(w io.Writer, res ccf.Result, hl bool) error {
	bw := bufio.NewWriter(w)
	best := res.MinIndex()
	minColor := color.New(color.FgRed, color.Bold)
	if hl {
		minColor.EnableColor()
	} else {
		minColor.DisableColor()
	}

	if res.Var != nil {
		fmt.Fprintln(bw, "# v[m/s] ccf var")
	} else {
		fmt.Fprintln(bw, "# v[m/s] ccf")
	}
	for i, v := range res.Velocities {
		row := fmt.Sprintf("%12.3f %.10e", v, res.CCF[i])
		if res.Var != nil {
			row += fmt.Sprintf(" %.10e", res.Var[i])
		}
		if i == best {
			minColor.Fprintln(bw, row)
			continue
		}
		fmt.Fprintln(bw, row)
	}
	if best >= 0 {
		fmt.Fprintf(bw, "# minimum at v=%.3f m/s\n", res.Velocities[best])
	}

	return bw.Flush()
}
