package scw

import (
	"fmt"
	"strconv"
	"strings"
)

// Record lines use the shape of a generic structured-value printer:
//
//	[12, 'joint3', 2, 0.754901960784]
//
// The historical tooling evaluated these lines as code. Here they go
// through a small bracket/quote-aware tokenizer instead; file content is
// never executed.

// FormatWeight prints a weight with the shortest representation that
// round-trips exactly through strconv.ParseFloat. Integral values keep a
// trailing ".0" so the output matches the files written by the original
// pipeline (1.0, 4.0).
func FormatWeight(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatRecord(r Record) string {
	return fmt.Sprintf("[%d, '%s', %d, %s]", r.Vertex, r.Influence, r.Index, FormatWeight(r.Weight))
}

// parseRecord parses one bracketed 4-tuple record line.
func parseRecord(line string) (Record, error) {
	fields, err := splitTuple(line)
	if err != nil {
		return Record{}, err
	}
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("scw: record %q: want 4 fields, got %d: %w", line, len(fields), ErrFormat)
	}

	vertex, err := strconv.Atoi(fields[0])
	if err != nil || vertex < 0 {
		return Record{}, fmt.Errorf("scw: record %q: bad vertex index: %w", line, ErrFormat)
	}

	name, ok := unquote(fields[1])
	if !ok || name == "" {
		return Record{}, fmt.Errorf("scw: record %q: bad influence name: %w", line, ErrFormat)
	}

	index, err := strconv.Atoi(fields[2])
	if err != nil || index < 0 {
		return Record{}, fmt.Errorf("scw: record %q: bad influence index: %w", line, ErrFormat)
	}

	weight, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || weight <= 0 {
		return Record{}, fmt.Errorf("scw: record %q: bad weight: %w", line, ErrFormat)
	}

	return Record{Vertex: vertex, Influence: name, Index: index, Weight: weight}, nil
}

// splitTuple strips the enclosing brackets and splits on top-level commas,
// honoring single and double quotes.
func splitTuple(line string) ([]string, error) {
	s := strings.TrimSpace(line)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("scw: record %q: not a bracketed tuple: %w", line, ErrFormat)
	}
	inner := s[1 : len(s)-1]

	var fields []string
	var quote byte
	start := 0
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			fields = append(fields, strings.TrimSpace(inner[start:i]))
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("scw: record %q: unterminated quote: %w", line, ErrFormat)
	}
	fields = append(fields, strings.TrimSpace(inner[start:]))
	return fields, nil
}

// unquote strips a matched pair of single or double quotes.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}
