package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scw-transfer/internal/scene"
	"scw-transfer/internal/scw"
)

func batchScene() *scene.Scene {
	return &scene.Scene{
		Joints: []string{"J1", "J2"},
		Meshes: []scene.Mesh{
			{Name: "bodyShape", Vertices: 3},
			{Name: "headShape", Vertices: 2},
		},
		SkinClusters: []*scene.SkinCluster{
			{
				Name: "bodySkin", Mesh: "bodyShape",
				Influences: []string{"J1", "J2"},
				Normalize:  true, MaxInfluences: 2, Dropoff: 4,
				Weights: map[int]map[int]float64{0: {0: 1}, 2: {1: 1}},
			},
			{
				Name: "headSkin", Mesh: "headShape",
				Influences: []string{"J2"},
				Normalize:  true, MaxInfluences: 1, Dropoff: 4,
				Weights: map[int]map[int]float64{1: {0: 0.5}},
			},
			{
				Name: "brokenSkin", Mesh: "missingShape",
				Influences: []string{"J1"},
				Weights:    map[int]map[int]float64{},
			},
		},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	results := Run(Config{OutputDir: dir, Workers: 2}, batchScene())
	require.Len(t, results, 3)

	byCluster := map[string]Result{}
	for _, r := range results {
		byCluster[r.Cluster] = r
	}

	assert.True(t, byCluster["bodySkin"].Success)
	assert.True(t, byCluster["headSkin"].Success)
	assert.False(t, byCluster["brokenSkin"].Success)
	assert.Contains(t, byCluster["brokenSkin"].Error, "missingShape")

	doc, err := scw.ReadFile(filepath.Join(dir, "bodySkin.scw"))
	require.NoError(t, err)
	assert.Equal(t, "bodyShape", doc.Header.Target)
	assert.Len(t, doc.Records, 2)
}

func TestRunCompressed(t *testing.T) {
	dir := t.TempDir()
	sc := batchScene()
	sc.SkinClusters = sc.SkinClusters[:1]

	results := Run(Config{OutputDir: dir, Workers: 1, Compress: true}, sc)
	require.Len(t, results, 1)
	require.True(t, results[0].Success)

	doc, err := scw.ReadFile(filepath.Join(dir, "bodySkin.scw.zst"))
	require.NoError(t, err)
	assert.Equal(t, "bodySkin", doc.Header.Binding)
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := Run(Config{OutputDir: dir, Workers: 2}, batchScene())

	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2, "failed exports stay out of the manifest")
	for _, e := range entries {
		assert.NotEmpty(t, e.Cluster)
		assert.NotEmpty(t, e.Mesh)
		assert.Equal(t, e.Cluster+".scw", e.File)
	}
}
