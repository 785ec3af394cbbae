// Command rive inspects, renders and plays animation files through the
// runtime handle layer.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/rive/cmd/rive/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
