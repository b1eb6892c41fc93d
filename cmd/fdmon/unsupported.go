//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"fdmon reads a process's descriptor table from procfs and is only supported on Linux.\n\nIf you are seeing this message, you are attempting to build or run fdmon on a platform without /proc.",
	)
	os.Exit(1)
}
