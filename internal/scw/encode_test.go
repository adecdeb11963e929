package scw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableSource(table map[int]map[int]float64) WeightSource {
	return func(vertex, influence int) (float64, error) {
		return table[vertex][influence], nil
	}
}

func testHeader() Header {
	return Header{
		Influences: []string{"J1", "J2"},
		Target:     "Mesh",
		Binding:    "skinA",
		Params:     BindParams{Normalize: true, MaxInfluences: 4, Dropoff: 4},
	}
}

func TestEncodeExactOutput(t *testing.T) {
	table := map[int]map[int]float64{
		0: {0: 0.6, 1: 0.4},
		1: {1: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testHeader(), tableSource(table), 2))

	want := strings.Join([]string{
		"J1 J2 Mesh",
		"skinA",
		"-nw 1 -mi 4 -dr 4.0",
		"[0, 'J1', 0, 0.6]",
		"[0, 'J2', 1, 0.4]",
		"[1, 'J2', 1, 1.0]",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestEncodeSparsity(t *testing.T) {
	// Zero and negative weights must produce no record at all.
	table := map[int]map[int]float64{
		0: {0: 0, 1: 0.25},
		1: {0: -0.5},
		2: {1: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testHeader(), tableSource(table), 3))

	doc, err := DecodeDocument(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, Record{Vertex: 0, Influence: "J2", Index: 1, Weight: 0.25}, doc.Records[0])
	assert.Equal(t, Record{Vertex: 2, Influence: "J2", Index: 1, Weight: 1}, doc.Records[1])

	seen := map[[2]int]bool{}
	for _, rec := range doc.Records {
		key := [2]int{rec.Vertex, rec.Index}
		assert.False(t, seen[key], "duplicate (vertex, influence) pair")
		seen[key] = true
	}
}

func TestEncodeSourceErrorProducesNoOutput(t *testing.T) {
	srcErr := errors.New("skinCluster unreadable")
	src := func(vertex, influence int) (float64, error) {
		if vertex == 1 {
			return 0, srcErr
		}
		return 0.5, nil
	}

	var buf bytes.Buffer
	err := Encode(&buf, testHeader(), src, 4)
	require.ErrorIs(t, err, srcErr)
	assert.Zero(t, buf.Len(), "source errors must abort before any output")
}

func TestEncodeHeaderValidation(t *testing.T) {
	var buf bytes.Buffer

	h := testHeader()
	h.Influences = nil
	assert.ErrorIs(t, Encode(&buf, h, tableSource(nil), 1), ErrSelection)

	h = testHeader()
	h.Target = ""
	assert.ErrorIs(t, Encode(&buf, h, tableSource(nil), 1), ErrSelection)
}

func TestEncodeEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testHeader(), tableSource(nil), 3))

	doc, err := DecodeDocument(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, -1, doc.MaxVertex())
}
