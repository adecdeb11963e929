// Package scene holds the JSON scene documents the CLI tools operate on:
// joint lists, meshes with vertex counts and skinClusters carrying sparse
// weight tables. A Scene implements binding.Host so imports replay
// directly into the document.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"scw-transfer/internal/binding"
	"scw-transfer/internal/scw"
)

// Scene is one scene document.
type Scene struct {
	Joints       []string       `json:"joints"`
	Meshes       []Mesh         `json:"meshes"`
	SkinClusters []*SkinCluster `json:"skin_clusters"`
}

// Mesh is a named piece of geometry; only the vertex count matters here.
type Mesh struct {
	Name     string `json:"name"`
	Vertices int    `json:"vertices"`
}

// SkinCluster binds a mesh to an ordered influence list with a sparse
// vertex → influence index → weight table.
type SkinCluster struct {
	Name          string                  `json:"name"`
	Mesh          string                  `json:"mesh"`
	Influences    []string                `json:"influences"`
	Normalize     bool                    `json:"normalize"`
	MaxInfluences int                     `json:"max_influences"`
	Dropoff       float64                 `json:"dropoff"`
	Weights       map[int]map[int]float64 `json:"weights"`
}

// Load reads a scene document from a JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return &sc, nil
}

// Save writes the scene document to a JSON file.
func (s *Scene) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}

// FindCluster resolves the export selection. The name must exist and
// refer to a skinCluster.
func (s *Scene) FindCluster(name string) (*SkinCluster, error) {
	for _, c := range s.SkinClusters {
		if c.Name == name {
			return c, nil
		}
	}
	for _, m := range s.Meshes {
		if m.Name == name {
			return nil, fmt.Errorf("scene: %s is not a skinCluster: %w", name, scw.ErrSelection)
		}
	}
	return nil, fmt.Errorf("scene: skinCluster %s not found: %w", name, scw.ErrSelection)
}

// MeshVertices returns the vertex count of a named mesh.
func (s *Scene) MeshVertices(name string) (int, error) {
	for _, m := range s.Meshes {
		if m.Name == name {
			return m.Vertices, nil
		}
	}
	return 0, fmt.Errorf("scene: mesh %s not found: %w", name, scw.ErrSelection)
}

// Header assembles the weight-file header for a cluster.
func (c *SkinCluster) Header() scw.Header {
	return scw.Header{
		Influences: append([]string{}, c.Influences...),
		Target:     c.Mesh,
		Binding:    c.Name,
		Params: scw.BindParams{
			Normalize:     c.Normalize,
			MaxInfluences: c.MaxInfluences,
			Dropoff:       c.Dropoff,
		},
	}
}

// Source exposes the cluster's sparse table as an encoder weight source.
func (c *SkinCluster) Source() scw.WeightSource {
	return func(vertex, influence int) (float64, error) {
		return c.Weights[vertex][influence], nil
	}
}

// binding.Host implementation -------------------------------------------

var _ binding.Host = (*Scene)(nil)

// SelectExisting checks that every name is a known joint or mesh.
func (s *Scene) SelectExisting(names []string) error {
	known := make(map[string]bool, len(s.Joints)+len(s.Meshes))
	for _, j := range s.Joints {
		known[j] = true
	}
	for _, m := range s.Meshes {
		known[m.Name] = true
	}

	var missing []string
	for _, n := range names {
		if !known[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("scene: missing nodes: %v", missing)
	}
	return nil
}

// IsBound reports whether any cluster already targets the mesh.
func (s *Scene) IsBound(mesh string) (bool, error) {
	for _, c := range s.SkinClusters {
		if c.Mesh == mesh {
			return true, nil
		}
	}
	return false, nil
}

// CreateBinding adds a new cluster on the mesh with a generated name,
// mirroring how a DCC names freshly created deformers.
func (s *Scene) CreateBinding(mesh string, influences []string, params scw.BindParams) (binding.Handle, error) {
	if _, err := s.MeshVertices(mesh); err != nil {
		return nil, err
	}

	c := &SkinCluster{
		Name:          fmt.Sprintf("skinCluster%d", len(s.SkinClusters)+1),
		Mesh:          mesh,
		Influences:    append([]string{}, influences...),
		Normalize:     params.Normalize,
		MaxInfluences: params.MaxInfluences,
		Dropoff:       params.Dropoff,
		Weights:       map[int]map[int]float64{},
	}
	s.SkinClusters = append(s.SkinClusters, c)
	return c, nil
}

func (s *Scene) RenameBinding(h binding.Handle, name string) error {
	c, err := s.cluster(h)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

func (s *Scene) SetNormalization(h binding.Handle, normalize bool) error {
	c, err := s.cluster(h)
	if err != nil {
		return err
	}
	c.Normalize = normalize
	return nil
}

func (s *Scene) PruneWeights(h binding.Handle) error {
	c, err := s.cluster(h)
	if err != nil {
		return err
	}
	c.Weights = map[int]map[int]float64{}
	return nil
}

// ReserveVertexCapacity is a no-op: the table is map-backed, so the
// capacity hint buys nothing here.
func (s *Scene) ReserveVertexCapacity(h binding.Handle, count int) error {
	_, err := s.cluster(h)
	return err
}

func (s *Scene) ApplyWeightRange(h binding.Handle, vertex, start, end int, weights []float64) error {
	c, err := s.cluster(h)
	if err != nil {
		return err
	}
	if end-start+1 != len(weights) {
		return fmt.Errorf("scene: range [%d,%d] wants %d weights, got %d", start, end, end-start+1, len(weights))
	}

	for i, w := range weights {
		if w == 0 {
			continue
		}
		if c.Weights[vertex] == nil {
			c.Weights[vertex] = map[int]float64{}
		}
		c.Weights[vertex][start+i] = w
	}
	return nil
}

func (s *Scene) cluster(h binding.Handle) (*SkinCluster, error) {
	c, ok := h.(*SkinCluster)
	if !ok || c == nil {
		return nil, fmt.Errorf("scene: invalid binding handle %T", h)
	}
	return c, nil
}
