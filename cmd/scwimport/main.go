package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"scw-transfer/internal/binding"
	"scw-transfer/internal/scene"
	"scw-transfer/internal/scw"
)

func main() {
	scenePath := flag.String("scene", "", "Scene document to import into")
	file := flag.String("file", "", "Weight file to import (.scw or .scw.zst)")
	reverseOrder := flag.Bool("reverseOrder", false, "Reinterpret indices against the reversed influence order")
	savePath := flag.String("save", "", "Where to save the updated scene (default: overwrite -scene)")

	flag.Parse()

	if *scenePath == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene and -file are required.")
		os.Exit(1)
	}
	if *savePath == "" {
		*savePath = *scenePath
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := scw.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := binding.Import(sc, doc, *reverseOrder); err != nil {
		switch {
		case errors.Is(err, scw.ErrNameMismatch):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Rename the stored influences with scwrename, or add the missing joints to the scene.")
		case errors.Is(err, scw.ErrAlreadyBound):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Detach the existing skinCluster before importing.")
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := sc.Save(*savePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Import took %.2f seconds\n", time.Since(start).Seconds())
	fmt.Printf("Weights imported from: %s\n", *file)
}
