package scw

import (
	"fmt"
	"io"
	"strings"
)

// Encode walks the weight source in ascending vertex order and ascending
// influence order and writes a complete weight file: three header lines,
// one record per pair with weight > 0 and the blank terminator line.
//
// The whole file is assembled before the first byte is written, so a
// source error never leaves partial output behind. Write errors surface
// from the single Write call; a file without the blank terminator must be
// discarded by the caller.
func Encode(w io.Writer, h Header, src WeightSource, vertexCount int) error {
	doc, err := BuildDocument(h, src, vertexCount)
	if err != nil {
		return err
	}
	return EncodeDocument(w, doc)
}

// BuildDocument collects the positive-weight records of a source into a
// Document without serializing it.
func BuildDocument(h Header, src WeightSource, vertexCount int) (*Document, error) {
	if err := checkHeader(h); err != nil {
		return nil, err
	}
	if vertexCount < 0 {
		return nil, fmt.Errorf("scw: encode: negative vertex count %d: %w", vertexCount, ErrSelection)
	}

	doc := &Document{Header: h}
	for v := 0; v < vertexCount; v++ {
		for j := range h.Influences {
			weight, err := src(v, j)
			if err != nil {
				return nil, fmt.Errorf("scw: encode: read weight for vertex %d influence %d: %w", v, j, err)
			}
			if weight > 0 {
				doc.Records = append(doc.Records, Record{
					Vertex:    v,
					Influence: h.Influences[j],
					Index:     j,
					Weight:    weight,
				})
			}
		}
	}
	return doc, nil
}

// EncodeDocument serializes an already-built document.
func EncodeDocument(w io.Writer, d *Document) error {
	if err := checkHeader(d.Header); err != nil {
		return err
	}

	lines := make([]string, 0, len(d.Records)+4)
	lines = append(lines, strings.Join(append(append([]string{}, d.Header.Influences...), d.Header.Target), " "))
	lines = append(lines, d.Header.Binding)
	lines = append(lines, formatParams(d.Header.Params))
	for _, rec := range d.Records {
		lines = append(lines, formatRecord(rec))
	}
	lines = append(lines, "")

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("scw: encode: write: %w", err)
	}
	return nil
}

func checkHeader(h Header) error {
	if len(h.Influences) == 0 {
		return fmt.Errorf("scw: encode: no influences: %w", ErrSelection)
	}
	if h.Target == "" {
		return fmt.Errorf("scw: encode: no target shape: %w", ErrSelection)
	}
	return nil
}

func formatParams(p BindParams) string {
	nw := 0
	if p.Normalize {
		nw = 1
	}
	return fmt.Sprintf("-nw %d -mi %d -dr %s", nw, p.MaxInfluences, FormatWeight(p.Dropoff))
}
