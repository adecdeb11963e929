// Package binding defines the abstract skinCluster host the importer
// drives, and the staged replay that turns a decoded weight file into
// ranged weight updates on that host.
package binding

import "scw-transfer/internal/scw"

// Handle identifies a binding created by a Host. It is opaque to the
// importer and only ever passed back to the Host that produced it.
type Handle interface{}

// Host is the set of collaborator operations the importer needs from a
// scene. Implementations own all scene state; the importer never touches
// geometry directly.
type Host interface {
	// SelectExisting verifies that every named node exists, failing with
	// a descriptive error naming the missing ones.
	SelectExisting(names []string) error

	// IsBound reports whether the mesh already carries a skinCluster.
	IsBound(mesh string) (bool, error)

	// CreateBinding builds a new skinCluster on the mesh with the given
	// influence order and parameters.
	CreateBinding(mesh string, influences []string, params scw.BindParams) (Handle, error)

	RenameBinding(h Handle, name string) error
	SetNormalization(h Handle, normalize bool) error

	// PruneWeights bulk-resets all stored weights to zero.
	PruneWeights(h Handle) error

	// ReserveVertexCapacity presizes per-vertex weight storage. It is an
	// allocation hint; dynamically-sized hosts may treat it as a no-op.
	ReserveVertexCapacity(h Handle, count int) error

	// ApplyWeightRange sets the weights of the contiguous influence index
	// band [start, end] for one vertex, one value per index.
	ApplyWeightRange(h Handle, vertex, start, end int, weights []float64) error
}
