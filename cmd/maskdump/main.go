package main

import (
	"fmt"
	"os"

	"permtools/internal/maskfile"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <mask file>\n", os.Args[0])
		os.Exit(1)
	}

	masks, err := maskfile.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := maskfile.Dump(os.Stdout, masks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
