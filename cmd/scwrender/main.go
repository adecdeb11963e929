package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"scw-transfer/internal/config"
	"scw-transfer/internal/scw"
	"scw-transfer/internal/weightmap"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	file := flag.String("file", "", "Weight file to render")
	influence := flag.String("influence", "", "Influence to render (default: all, one image each)")
	out := flag.String("out", "", "Output image, .webp or .tga (single influence only)")
	cell := flag.Int("cell", 0, "Pixels per vertex cell (default: 8)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")

	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if *cell > 0 {
		cfg.CellSize = *cell
	}
	if *supersample > 0 {
		cfg.Supersample = *supersample
	}

	doc, err := scw.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	influences := doc.Header.Influences
	if *influence != "" {
		influences = []string{*influence}
	}

	base := strings.TrimSuffix(strings.TrimSuffix(*file, ".zst"), ".scw")
	for _, name := range influences {
		img, err := weightmap.Render(doc, name, cfg.CellSize, cfg.Supersample)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		path := *out
		if path == "" || *influence == "" {
			path = fmt.Sprintf("%s_%s.webp", base, name)
		}
		if err := weightmap.Save(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Weight map: %s\n", path)
	}
}
