package scw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{
			name: "plain record",
			line: "[12, 'joint3', 2, 0.754901960784]",
			want: Record{Vertex: 12, Influence: "joint3", Index: 2, Weight: 0.754901960784},
		},
		{
			name: "double quoted name",
			line: `[0, "spine_01", 0, 1.0]`,
			want: Record{Vertex: 0, Influence: "spine_01", Index: 0, Weight: 1},
		},
		{
			name: "comma inside quotes",
			line: "[3, 'a,b', 1, 0.5]",
			want: Record{Vertex: 3, Influence: "a,b", Index: 1, Weight: 0.5},
		},
		{
			name: "exponent weight",
			line: "[7, 'j', 0, 1e-05]",
			want: Record{Vertex: 7, Influence: "j", Index: 0, Weight: 1e-05},
		},
		{name: "missing brackets", line: "12, 'joint3', 2, 0.5", wantErr: true},
		{name: "three fields", line: "[12, 'joint3', 0.5]", wantErr: true},
		{name: "five fields", line: "[12, 'joint3', 2, 0.5, 0.5]", wantErr: true},
		{name: "unterminated quote", line: "[12, 'joint3, 2, 0.5]", wantErr: true},
		{name: "unquoted name", line: "[12, joint3, 2, 0.5]", wantErr: true},
		{name: "negative vertex", line: "[-1, 'joint3', 2, 0.5]", wantErr: true},
		{name: "negative index", line: "[12, 'joint3', -2, 0.5]", wantErr: true},
		{name: "zero weight", line: "[12, 'joint3', 2, 0.0]", wantErr: true},
		{name: "negative weight", line: "[12, 'joint3', 2, -0.5]", wantErr: true},
		{name: "garbage weight", line: "[12, 'joint3', 2, x]", wantErr: true},
		{name: "empty line", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecord(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{Vertex: 0, Influence: "J1", Index: 0, Weight: 0.6},
		{Vertex: 1, Influence: "J2", Index: 1, Weight: 1},
		{Vertex: 512, Influence: "spine_twist_03", Index: 17, Weight: 0.7549019607843137},
		{Vertex: 9, Influence: "j", Index: 3, Weight: 1e-12},
	}
	for _, rec := range records {
		got, err := parseRecord(formatRecord(rec))
		require.NoError(t, err)
		assert.Equal(t, rec, got, "record must survive format/parse unchanged")
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.6, "0.6"},
		{0.4, "0.4"},
		{1, "1.0"},
		{4, "4.0"},
		{0.7549019607843137, "0.7549019607843137"},
		{1e-05, "1e-05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWeight(tt.in))
	}
}
