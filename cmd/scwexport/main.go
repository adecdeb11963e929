package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"scw-transfer/internal/batch"
	"scw-transfer/internal/config"
	"scw-transfer/internal/scene"
	"scw-transfer/internal/scw"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene document to export from")
	cluster := flag.String("cluster", "", "skinCluster to export (omit with -all)")
	outFile := flag.String("file", "", "Output weight file (default: <output>/<cluster>.scw)")
	outputDir := flag.String("output", "", "Output directory (default: weights dir)")
	exclusive := flag.Bool("exclusive", false, "Write one .bsw file per influence instead of a single .scw")
	all := flag.Bool("all", false, "Export every skinCluster in the scene")
	workers := flag.Int("workers", 0, "Number of worker goroutines for -all (default: NumCPU)")
	compress := flag.Bool("compress", false, "zstd-compress output (.scw.zst)")

	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required.")
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
	cfg.Resolve(config.Flags{OutputDir: *outputDir, Workers: *workers})
	if *compress {
		cfg.Compress = true
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()

	if *all {
		exportAll(cfg, sc)
		return
	}

	if *cluster == "" {
		fmt.Fprintln(os.Stderr, "Error: select a skinCluster with -cluster (or use -all).")
		os.Exit(1)
	}

	c, err := sc.FindCluster(*cluster)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	vertexCount, err := sc.MeshVertices(c.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *exclusive {
		if err := scw.EncodeExclusive(cfg.OutputDir, c.Header(), c.Source(), vertexCount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Export took %.2f seconds\n", time.Since(start).Seconds())
		fmt.Printf("Weights exported to: %s\n", filepath.Join(cfg.OutputDir, c.Name))
		return
	}

	path := *outFile
	if path == "" {
		name := c.Name + ".scw"
		if cfg.Compress {
			name += ".zst"
		}
		path = filepath.Join(cfg.OutputDir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := scw.WriteFile(path, c.Header(), c.Source(), vertexCount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Export took %.2f seconds\n", time.Since(start).Seconds())
	fmt.Printf("Weights exported to: %s\n", path)
}

func exportAll(cfg config.Config, sc *scene.Scene) {
	if len(sc.SkinClusters) == 0 {
		fmt.Println("No skinClusters to export.")
		return
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Clusters: %d, Workers: %d\n", len(sc.SkinClusters), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
		Compress:  cfg.Compress,
	}, sc)
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  %s: %s\n", r.Cluster, r.Error)
		}
	}
	fmt.Printf("Exported: %d/%d\n", success, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
