// SPDX-License-Identifier: MIT

// Command parmatmul multiplies matrices stored as nested JSON arrays using
// the parallel row-partitioned engine.
//
// Usage:
//
//	parmatmul multiply --a A.json --b B.json --workers 4 --out C.json
//	parmatmul bench --m 512 --k 512 --n 512 --workers 1,2,4,8
//	parmatmul version
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
