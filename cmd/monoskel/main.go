// Command monoskel computes the weighted straight skeleton of a
// monotone simple polygon read from a graph-markup mesh file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
