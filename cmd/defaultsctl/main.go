// Command defaultsctl inspects the engine's default assets: it lists the
// declared slots, checks which of them a manifest resolves, and renders the
// default asset reference.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "defaultsctl:", err)
		os.Exit(1)
	}
}
