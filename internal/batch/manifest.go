package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry describes one exported weight file.
type ManifestEntry struct {
	Cluster string `json:"cluster"`
	Mesh    string `json:"mesh"`
	File    string `json:"file"`
}

// WriteManifest writes manifest.json next to the exported weight files,
// listing every successful export.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Cluster: r.Cluster,
			Mesh:    r.Mesh,
			File:    filepath.Base(r.Path),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
