// Command icopack converts a square raster image (png, jpeg, gif or bmp)
// into a multi-resolution Windows .ico file, optionally emitting a
// linkable .syso resource object alongside it.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/shtse8/icopack"
	"github.com/shtse8/icopack/internal/preset"
	"github.com/tc-hib/winres"
)

func main() {
	var (
		in         = flag.String("in", "", "source image (png, jpeg, gif or bmp)")
		out        = flag.String("out", "", "destination .ico path (default: source with .ico extension)")
		syso       = flag.String("syso", "", "also write a linkable Windows resource object to this path")
		presetPath = flag.String("preset", "", "JSON preset file with default output settings")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("icopack: ")

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: icopack -in image.png [-out icon.ico] [-syso rsrc.syso] [-preset preset.json]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var p preset.Preset
	if *presetPath != "" {
		var err error
		if p, err = preset.Load(*presetPath); err != nil {
			log.Fatalf("load preset: %v", err)
		}
	}

	outPath := *out
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in)) + ".ico"
		if p.OutDir != "" {
			outPath = filepath.Join(p.OutDir, base)
		} else {
			outPath = filepath.Join(filepath.Dir(*in), base)
		}
	}

	src, err := decode(*in)
	if err != nil {
		log.Fatalf("%v", err)
	}

	rasters, err := icopack.Rasters(src, icopack.Options{})
	if err != nil {
		log.Fatalf("%s: %v", *in, err)
	}

	data := icopack.Assemble(rasters)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	log.Printf("wrote %s (%d bytes, %d images)", outPath, len(data), len(rasters))

	sysoPath := *syso
	if sysoPath == "" && p.EmitSyso {
		sysoPath = strings.TrimSuffix(outPath, ".ico") + "_windows_amd64.syso"
	}
	if sysoPath != "" {
		if err := writeSyso(sysoPath, rasters); err != nil {
			log.Fatalf("write %s: %v", sysoPath, err)
		}
		log.Printf("wrote %s", sysoPath)
	}

	if *presetPath != "" {
		p.AddRecent(*in)
		if err := preset.Save(*presetPath, p); err != nil {
			log.Printf("save preset: %v", err)
		}
	}
}

func decode(path string) (icopack.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return icopack.Source{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return icopack.Source{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return icopack.Source{Image: img, Format: format}, nil
}

// writeSyso embeds the resampled images as an RT_GROUP_ICON resource in a
// COFF object the Go linker picks up automatically.
func writeSyso(path string, rasters []*icopack.Raster) error {
	images := make([]image.Image, len(rasters))
	for i, r := range rasters {
		images[i] = r.Image()
	}
	icon, err := winres.NewIconFromImages(images)
	if err != nil {
		return err
	}

	rs := &winres.ResourceSet{}
	if err := rs.SetIcon(winres.RT_GROUP_ICON, icon); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rs.WriteObject(f, winres.ArchAMD64); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
