// Command mkicon renders the sample disc icon and packs it into an .ico
// file. With -go it also writes a Go source file embedding the bytes, for
// programs that set a tray icon without shipping an asset.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shtse8/icopack"
	"github.com/shtse8/icopack/internal/sample"
)

func main() {
	var (
		size   = flag.Int("size", 256, "source render size in pixels (square)")
		hue    = flag.Float64("hue", sample.DefaultHue, "icon hue in degrees")
		out    = flag.String("out", "icon.ico", "output .ico path")
		goFile = flag.String("go", "", "also write a Go data file embedding the bytes")
		goPkg  = flag.String("pkg", "icon", "package name for the -go data file")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("mkicon: ")

	src := icopack.Source{Image: sample.DiscHue(*size, *hue), Format: "png"}
	data, err := icopack.Pack(src, icopack.Options{})
	if err != nil {
		log.Fatalf("pack: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(data))

	if *goFile != "" {
		if err := writeGoData(*goFile, *goPkg, data); err != nil {
			log.Fatalf("write %s: %v", *goFile, err)
		}
		log.Printf("wrote %s", *goFile)
	}
}

func writeGoData(path, pkg string, data []byte) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkicon. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	b.WriteString("// Data holds the packed .ico bytes.\nvar Data = []byte{")
	for i, c := range data {
		if i%12 == 0 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(&b, "0x%02x, ", c)
	}
	b.WriteString("\n}\n")
	return os.WriteFile(path, b.Bytes(), 0o644)
}
