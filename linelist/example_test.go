// SPDX-License-Identifier: MIT

package linelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rvccf/linelist"
)

// ExampleReadIntervals reads a (lower, upper, depth) mask already in vacuum.
func ExampleReadIntervals() {
	mask := `# lower upper depth
4.0 9.0 0.5
1.0 4.0 0.25
`
	ls, err := linelist.ReadIntervals(strings.NewReader(mask), linelist.WithAirToVacuum(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < ls.Len(); i++ {
		fmt.Printf("%.1f %.2f\n", ls.Lambda(i), ls.Weight(i))
	}
	// Output:
	// 2.0 0.25
	// 6.0 0.50
}
