// Command h2wire exercises the HPACK and frame codec from the command
// line, without a network stack: encode or decode a header list,
// decode a captured frame stream, or build a SETTINGS frame from a
// parameter list.
package main

import (
	"fmt"
	"os"

	"github.com/nsheridan/h2wire/cmd/h2wire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
