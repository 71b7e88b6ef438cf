package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perft-bench/internal/dataset"
	"perft-bench/internal/diagnostic"
)

func positions(ids ...string) []dataset.PositionCase {
	out := make([]dataset.PositionCase, len(ids))
	for i, id := range ids {
		out[i] = dataset.PositionCase{ID: id, FEN: "8/8/8/8/8/8/8/8 w - - 0 1", Depth: "6", Expected: "824064"}
	}

	return out
}

func ids(cases []dataset.PositionCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}

	return out
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"1", true},
		{"007", true},
		{"", false},
		{"kiwipete", false},
		{"1a", false},
		{"a1", false},
		{"-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.id))
		})
	}
}

func TestNormalize_PadsToWidestNumericID(t *testing.T) {
	got, width, err := Normalize(positions("1", "10"))
	require.NoError(t, err)

	assert.Equal(t, 2, width)
	assert.Equal(t, []string{"01", "10"}, ids(got))
}

func TestNormalize_SymbolicIDsPassThrough(t *testing.T) {
	got, width, err := Normalize(positions("1", "26", "kiwipete", "x7"))
	require.NoError(t, err)

	assert.Equal(t, 2, width)
	assert.Equal(t, []string{"01", "26", "kiwipete", "x7"}, ids(got))
}

func TestNormalize_EqualLengthForAllNumericIDs(t *testing.T) {
	got, width, err := Normalize(positions("5", "123", "42", "7", "kiwipete"))
	require.NoError(t, err)
	require.Equal(t, 3, width)

	seen := map[string]struct{}{}

	for _, c := range got {
		if !IsNumeric(c.ID) {
			continue
		}

		assert.Len(t, c.ID, width, "id %q", c.ID)
		seen[c.ID] = struct{}{}
	}

	assert.Len(t, seen, 4)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := positions("1", "10")

	_, _, err := Normalize(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "10"}, ids(in))
}

func TestNormalize_KeepsRecordFields(t *testing.T) {
	in := positions("3", "12")
	in[0].FEN = "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1"
	in[0].Line = 7

	got, _, err := Normalize(in)
	require.NoError(t, err)

	assert.Equal(t, "03", got[0].ID)
	assert.Equal(t, in[0].FEN, got[0].FEN)
	assert.Equal(t, in[0].Depth, got[0].Depth)
	assert.Equal(t, in[0].Expected, got[0].Expected)
	assert.Equal(t, 7, got[0].Line)
}

func TestNormalize_CollisionIsNotResolved(t *testing.T) {
	// "1" pads to "01", colliding with the literal "01". Reporting is the expander's job.
	got, _, err := Normalize(positions("1", "01"))
	require.NoError(t, err)

	assert.Equal(t, []string{"01", "01"}, ids(got))
}

func TestNormalize_EmptyInputSet(t *testing.T) {
	for name, in := range map[string][]dataset.PositionCase{
		"no cases":      nil,
		"only symbolic": positions("kiwipete", "startpos"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Normalize(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.EmptyInputSet)
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "003", Pad("3", 3))
	assert.Equal(t, "123", Pad("123", 2))
	assert.Equal(t, "kiwipete", Pad("kiwipete", 12))
}
