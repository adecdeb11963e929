// Package scw implements the skinCluster weight file format (.scw):
// a line-oriented text serialization of sparse per-vertex skin weights,
// plus the range-merge reconstruction used when replaying a file into a
// binding host.
package scw

// Header holds the three header lines of a weight file: the influence
// names and target shape (line 1), the skinCluster name (line 2) and the
// binding parameters (line 3).
type Header struct {
	Influences []string
	Target     string
	Binding    string
	Params     BindParams
}

// BindParams are the skinCluster attributes carried on line 3
// (-nw, -mi, -dr). They round-trip exactly through the file.
type BindParams struct {
	Normalize     bool
	MaxInfluences int
	Dropoff       float64
}

// Record is one weight entry: a single (vertex, influence) pair with a
// strictly positive weight. Zero weights are never stored.
type Record struct {
	Vertex    int
	Influence string
	Index     int
	Weight    float64
}

// RangeCommand is one merged weight update covering the contiguous
// influence index band [Start, End] of a single vertex. Weights holds one
// value per index in the band; indices that were absent from the file are
// zero-filled. Start == End marks the single-influence form.
type RangeCommand struct {
	Vertex  int
	Start   int
	End     int
	Weights []float64
}

// Document is a fully parsed weight file. Records are in the file's
// strictly ascending (vertex, influence index) order.
type Document struct {
	Header  Header
	Records []Record
}

// WeightSource supplies the stored weight for a (vertex, influence index)
// pair during export. Implementations return 0 for unweighted pairs.
type WeightSource func(vertex, influence int) (float64, error)

// MaxVertex returns the highest vertex index in the document, or -1 when
// it holds no records. Records are ordered, so this is the last record's
// vertex; importers use MaxVertex()+1 as the capacity hint.
func (d *Document) MaxVertex() int {
	if len(d.Records) == 0 {
		return -1
	}
	return d.Records[len(d.Records)-1].Vertex
}

// ReverseInfluences reinterprets the document against a reversed influence
// order: the full line-1 token list (influences plus target) is reversed,
// the leading token (previously the target) is dropped and the target is
// re-appended last. Record influence names keep referring to the original
// file order; only the index interpretation changes.
func (d *Document) ReverseInfluences() {
	tokens := make([]string, 0, len(d.Header.Influences)+1)
	tokens = append(tokens, d.Header.Influences...)
	tokens = append(tokens, d.Header.Target)

	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}

	d.Header.Influences = tokens[1:]
}
