package main

import (
	"fmt"
	"os"

	"scw-transfer/internal/scw"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <weight-file> [<weight-file> ...]\n", os.Args[0])
		os.Exit(1)
	}

	for _, path := range os.Args[1:] {
		doc, err := scw.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		h := doc.Header
		fmt.Printf("%s\n", path)
		fmt.Printf("  Target: %s, skinCluster: %s\n", h.Target, h.Binding)
		fmt.Printf("  Normalize: %v, MaxInfluences: %d, Dropoff: %s\n",
			h.Params.Normalize, h.Params.MaxInfluences, scw.FormatWeight(h.Params.Dropoff))
		fmt.Printf("  Influences: %d, Records: %d, Vertices: %d\n",
			len(h.Influences), len(doc.Records), doc.MaxVertex()+1)
		fmt.Printf("  Range commands: %d\n", len(scw.Ranges(doc.Records)))

		perInfluence := make([]int, len(h.Influences))
		for _, rec := range doc.Records {
			perInfluence[rec.Index]++
		}
		for i, name := range h.Influences {
			fmt.Printf("    [%d] %s: %d weighted vertices\n", i, name, perInfluence[i])
		}
	}
}
