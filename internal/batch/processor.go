// Package batch exports every skinCluster of a scene concurrently. Each
// weight file is still written by a single goroutine end to end; the pool
// only spreads independent clusters across workers.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"scw-transfer/internal/scene"
	"scw-transfer/internal/scw"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Workers   int
	// Compress appends .zst to every output file.
	Compress bool
}

// Result holds the outcome of exporting one skinCluster.
type Result struct {
	Cluster string
	Mesh    string
	Path    string
	Success bool
	Error   string
}

// Run exports all skinClusters of the scene using a worker pool.
func Run(cfg Config, sc *scene.Scene) []Result {
	clusters := sc.SkinClusters
	total := len(clusters)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f clusters/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	clusterChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range clusterChan {
				results[idx] = exportCluster(cfg, sc, clusters[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range clusters {
		clusterChan <- i
	}
	close(clusterChan)

	wg.Wait()
	close(done)

	return results
}

func exportCluster(cfg Config, sc *scene.Scene, c *scene.SkinCluster) Result {
	name := c.Name + ".scw"
	if cfg.Compress {
		name += ".zst"
	}
	outPath := filepath.Join(cfg.OutputDir, name)

	vertexCount, err := sc.MeshVertices(c.Mesh)
	if err != nil {
		return Result{Cluster: c.Name, Mesh: c.Mesh, Path: outPath, Error: err.Error()}
	}

	if err := scw.WriteFile(outPath, c.Header(), c.Source(), vertexCount); err != nil {
		return Result{Cluster: c.Name, Mesh: c.Mesh, Path: outPath, Error: err.Error()}
	}

	return Result{Cluster: c.Name, Mesh: c.Mesh, Path: outPath, Success: true}
}
