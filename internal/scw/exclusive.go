package scw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EncodeExclusive writes the per-influence variant: one <influence>.bsw
// file per influence under <dir>/<bindingName>/, each holding one
// "<vertex> <weight>" row per vertex with a positive weight for that
// influence, terminated by a blank line.
//
// This grammar is one-way; it serves external tools that consume single
// influence maps and is not readable by DecodeDocument.
func EncodeExclusive(dir string, h Header, src WeightSource, vertexCount int) error {
	if err := checkHeader(h); err != nil {
		return err
	}
	if h.Binding == "" {
		return fmt.Errorf("scw: exclusive export: no skinCluster name: %w", ErrSelection)
	}

	dataPath := filepath.Join(dir, h.Binding)
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("scw: exclusive export: create %s: %w", dataPath, err)
	}

	for j, name := range h.Influences {
		var lines []string
		for v := 0; v < vertexCount; v++ {
			weight, err := src(v, j)
			if err != nil {
				return fmt.Errorf("scw: exclusive export: read weight for vertex %d influence %d: %w", v, j, err)
			}
			if weight > 0 {
				lines = append(lines, fmt.Sprintf("%d %s", v, FormatWeight(weight)))
			}
		}
		lines = append(lines, "")

		path := filepath.Join(dataPath, name+".bsw")
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
			return fmt.Errorf("scw: exclusive export: write %s: %w", path, err)
		}
	}

	return nil
}
