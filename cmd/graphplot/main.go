package main

import (
	"flag"
	"fmt"
	"os"

	"permtools/internal/graph"
)

func main() {
	size := flag.Int("size", 1000, "Plot height in pixels (width is 2x)")
	supersample := flag.Int("supersample", 2, "Supersampling factor")
	webp := flag.Bool("webp", false, "Write lossless WebP instead of PNG")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <graph CSV>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g, err := graph.ParseCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Data read: %d vertices, %d edges\n", len(g.Vertices), len(g.Edges))

	width, height := 2*(*size), *size
	pos, err := graph.Layout(g, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Positions generated")

	img := graph.Render(g, pos, width, height, *supersample)

	out := path + ".png"
	write := graph.WritePNG
	if *webp {
		out = path + ".webp"
		write = graph.WriteWebP
	}
	if err := write(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", out)
}
