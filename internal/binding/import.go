package binding

import (
	"fmt"

	"scw-transfer/internal/scw"
)

// Import replays a decoded weight file into the host. With reverseOrder
// set, the stored influence order is reversed before the binding is
// created (the target keeps its identity) and record indices are
// reinterpreted against the reversed list.
//
// The sequence is staged so every check that can fail runs before the
// first mutation: existence of all named nodes, then the already-bound
// check, and only then binding creation. Normalization is disabled for
// the replay so stored weights land exactly as written, and the flag from
// the file's parameters is restored afterwards.
func Import(host Host, doc *scw.Document, reverseOrder bool) error {
	if reverseOrder {
		doc.ReverseInfluences()
	}
	h := doc.Header

	names := make([]string, 0, len(h.Influences)+1)
	names = append(names, h.Influences...)
	names = append(names, h.Target)
	if err := host.SelectExisting(names); err != nil {
		return fmt.Errorf("binding: import: %v: %w", err, scw.ErrNameMismatch)
	}

	bound, err := host.IsBound(h.Target)
	if err != nil {
		return fmt.Errorf("binding: import: query %s: %w", h.Target, err)
	}
	if bound {
		return fmt.Errorf("binding: import: %s: %w", h.Target, scw.ErrAlreadyBound)
	}

	handle, err := host.CreateBinding(h.Target, h.Influences, h.Params)
	if err != nil {
		return fmt.Errorf("binding: import: create skinCluster on %s: %w", h.Target, err)
	}
	if err := host.RenameBinding(handle, h.Binding); err != nil {
		return fmt.Errorf("binding: import: rename to %s: %w", h.Binding, err)
	}

	if err := host.SetNormalization(handle, false); err != nil {
		return fmt.Errorf("binding: import: disable normalization: %w", err)
	}
	// Bulk prune beats setting every component to zero one by one.
	if err := host.PruneWeights(handle); err != nil {
		return fmt.Errorf("binding: import: prune weights: %w", err)
	}
	if max := doc.MaxVertex(); max >= 0 {
		if err := host.ReserveVertexCapacity(handle, max+1); err != nil {
			return fmt.Errorf("binding: import: reserve %d vertices: %w", max+1, err)
		}
	}

	for _, cmd := range scw.Ranges(doc.Records) {
		if err := host.ApplyWeightRange(handle, cmd.Vertex, cmd.Start, cmd.End, cmd.Weights); err != nil {
			return fmt.Errorf("binding: import: set weights for vertex %d: %w", cmd.Vertex, err)
		}
	}

	if err := host.SetNormalization(handle, h.Params.Normalize); err != nil {
		return fmt.Errorf("binding: import: restore normalization: %w", err)
	}
	return nil
}
