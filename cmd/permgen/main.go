package main

import (
	"flag"
	"fmt"
	"os"

	"permtools/internal/bitperm"
)

func main() {
	cipher := flag.String("cipher", "gift64", "Bit permutation to emit (gift64, present)")
	format := flag.String("format", "masks", "Output format: masks, table, bytemap")
	flag.Parse()

	perm, ok := bitperm.ByName(*cipher)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown cipher %q\n", *cipher)
		os.Exit(1)
	}
	if err := perm.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch *format {
	case "masks":
		for _, m := range perm.Masks() {
			fmt.Printf("0x%016x,\n", m)
		}
	case "table":
		var t *bitperm.Table
		if t, err = perm.Table(); err == nil {
			err = t.Format(os.Stdout)
		}
	case "bytemap":
		var m bitperm.ByteMap
		if m, err = perm.ByteMap(); err == nil {
			err = m.WriteJSON(os.Stdout)
		}
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
