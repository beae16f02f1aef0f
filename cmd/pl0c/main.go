// Command pl0c compiles PL/0 source into bytecode for Prof. Beck's
// stack machine.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/pl0c/cmd/pl0c/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
