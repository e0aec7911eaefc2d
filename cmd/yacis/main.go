// Command yacis compiles Yac source files to MIPS assembly.
//
// Usage:
//
//	yacis <src>        writes generated assembly to stdout
//	yacis <src> <out>  writes generated assembly to the named file
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/yacis/cmd/yacis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
