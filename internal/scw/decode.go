package scw

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeDocument reads and validates a complete weight file. The record
// stream must be strictly ascending by (vertex, influence index) and each
// record's influence name must agree with the header at its index; the
// file must end with the blank terminator line. Validation happens here in
// full, before any caller mutates a destination.
func DecodeDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scw: decode: read: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("scw: decode: %d lines, want header plus terminator: %w", len(lines), ErrFormat)
	}
	if lines[len(lines)-1] != "" {
		return nil, fmt.Errorf("scw: decode: missing blank terminator line (truncated file): %w", ErrFormat)
	}

	header, err := parseHeader(lines[0], lines[1], lines[2])
	if err != nil {
		return nil, err
	}

	doc := &Document{Header: header}
	for i := 3; i < len(lines)-1; i++ {
		rec, err := parseRecord(lines[i])
		if err != nil {
			return nil, err
		}
		if rec.Index >= len(header.Influences) {
			return nil, fmt.Errorf("scw: line %d: influence index %d out of range (have %d influences): %w",
				i+1, rec.Index, len(header.Influences), ErrFormat)
		}
		if rec.Influence != header.Influences[rec.Index] {
			return nil, fmt.Errorf("scw: line %d: influence %q does not match header index %d (%q): %w",
				i+1, rec.Influence, rec.Index, header.Influences[rec.Index], ErrFormat)
		}
		if len(doc.Records) > 0 {
			prev := doc.Records[len(doc.Records)-1]
			if rec.Vertex < prev.Vertex || (rec.Vertex == prev.Vertex && rec.Index <= prev.Index) {
				return nil, fmt.Errorf("scw: line %d: record out of order after vertex %d influence %d: %w",
					i+1, prev.Vertex, prev.Index, ErrFormat)
			}
		}
		doc.Records = append(doc.Records, rec)
	}

	return doc, nil
}

func parseHeader(objects, binding, params string) (Header, error) {
	tokens := strings.Split(objects, " ")
	if len(tokens) < 2 || tokens[len(tokens)-1] == "" {
		return Header{}, fmt.Errorf("scw: header %q: want influences followed by target shape: %w", objects, ErrFormat)
	}
	for _, tok := range tokens {
		if tok == "" {
			return Header{}, fmt.Errorf("scw: header %q: empty influence name: %w", objects, ErrFormat)
		}
	}

	if binding == "" {
		return Header{}, fmt.Errorf("scw: missing skinCluster name on line 2: %w", ErrFormat)
	}

	p, err := parseParams(params)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Influences: tokens[:len(tokens)-1],
		Target:     tokens[len(tokens)-1],
		Binding:    binding,
		Params:     p,
	}, nil
}

// parseParams reads the flag-value pairs of line 3. The encoder always
// writes -nw, -mi and -dr, so a missing flag is a format error; unknown
// flags are skipped for forward compatibility.
func parseParams(line string) (BindParams, error) {
	fields := strings.Fields(line)
	var p BindParams
	var haveNW, haveMI, haveDR bool

	for i := 0; i+1 < len(fields); i += 2 {
		flag, value := fields[i], fields[i+1]
		switch flag {
		case "-nw":
			n, err := strconv.Atoi(value)
			if err != nil || (n != 0 && n != 1) {
				return BindParams{}, fmt.Errorf("scw: params %q: bad -nw value: %w", line, ErrFormat)
			}
			p.Normalize = n == 1
			haveNW = true
		case "-mi":
			n, err := strconv.Atoi(value)
			if err != nil {
				return BindParams{}, fmt.Errorf("scw: params %q: bad -mi value: %w", line, ErrFormat)
			}
			p.MaxInfluences = n
			haveMI = true
		case "-dr":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return BindParams{}, fmt.Errorf("scw: params %q: bad -dr value: %w", line, ErrFormat)
			}
			p.Dropoff = f
			haveDR = true
		}
	}

	if !haveNW || !haveMI || !haveDR {
		return BindParams{}, fmt.Errorf("scw: params %q: missing -nw, -mi or -dr: %w", line, ErrFormat)
	}
	return p, nil
}

// Ranges merges the ordered record stream into minimal contiguous-range
// commands. Within one vertex a gap in influence indices is absorbed as
// explicit zero weights; only a vertex change (or the end of the stream)
// flushes the accumulated run.
func Ranges(records []Record) []RangeCommand {
	var cmds []RangeCommand

	start, end := -1, -1
	vertex := -1
	var weights []float64

	for i, rec := range records {
		if start == -1 {
			vertex = rec.Vertex
			start, end = rec.Index, rec.Index
			weights = []float64{rec.Weight}
		} else {
			for x := end + 1; x < rec.Index; x++ {
				weights = append(weights, 0)
			}
			end = rec.Index
			weights = append(weights, rec.Weight)
		}

		if i == len(records)-1 || records[i+1].Vertex != rec.Vertex {
			cmds = append(cmds, RangeCommand{Vertex: vertex, Start: start, End: end, Weights: weights})
			start, end = -1, -1
			weights = nil
		}
	}

	return cmds
}
