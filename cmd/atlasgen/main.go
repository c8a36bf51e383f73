// Command atlasgen bakes the block-texture atlas to a PNG. The output
// is fully deterministic: no flags are required and repeated runs
// produce byte-identical files.
package main

import (
	"flag"
	"fmt"
	"os"

	"atlasgen/internal/atlas"
	"atlasgen/internal/preview"
)

func main() {
	out := flag.String("o", "assets/atlas.png", "output path for the atlas PNG")
	show := flag.Bool("preview", false, "open a window showing the generated atlas")
	flag.Parse()

	canvas := atlas.Generate()

	if err := canvas.WritePNG(*out); err != nil {
		fmt.Fprintf(os.Stderr, "atlasgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%dx%d)\n", *out, atlas.Width, atlas.Height)

	if *show {
		if err := preview.Show(canvas.Image(), atlas.Cols); err != nil {
			fmt.Fprintf(os.Stderr, "atlasgen: preview: %v\n", err)
			os.Exit(1)
		}
	}
}
