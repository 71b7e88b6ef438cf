package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perft-bench/internal/diagnostic"
)

func TestParsePositions(t *testing.T) {
	yaml := `
- id: "03"
  fen: "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1"
  depth: 6
  expected: 1440467
- id: kiwipete
  fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
  depth: "4"
  expected: "4085603"
`

	cases, err := ParsePositions([]byte(yaml), "positions.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "03", cases[0].ID)
	assert.Equal(t, "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", cases[0].FEN)
	assert.Equal(t, "6", cases[0].Depth)
	assert.Equal(t, "1440467", cases[0].Expected)
	assert.Equal(t, 2, cases[0].Line)

	assert.Equal(t, "kiwipete", cases[1].ID)
	assert.Equal(t, "4", cases[1].Depth)
	assert.Equal(t, "4085603", cases[1].Expected)
}

func TestParsePositions_JSON(t *testing.T) {
	json := `[
  {"id": "1", "fen": "8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1", "depth": "6", "expected": "824064"},
  {"id": "10", "fen": "r3k2r/7b/8/8/8/8/1B4BQ/R3K2R b KQkq - 0 1", "depth": "4", "expected": "1274206"}
]`

	cases, err := ParsePositions([]byte(json), "perft_inputs.json")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "1", cases[0].ID)
	assert.Equal(t, "10", cases[1].ID)
	assert.Equal(t, "1274206", cases[1].Expected)
}

func TestParsePositions_Empty(t *testing.T) {
	cases, err := ParsePositions([]byte(""), "positions.yaml")
	require.NoError(t, err)
	assert.Empty(t, cases)

	cases, err = ParsePositions([]byte("[]"), "positions.yaml")
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestParsePositions_KeepsInvalidFEN(t *testing.T) {
	// Content is trusted: an unreachable or even garbled FEN is not the loader's concern.
	yaml := `
- id: "1"
  fen: "not a fen at all"
  depth: 1
  expected: 0
`

	cases, err := ParsePositions([]byte(yaml), "positions.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "not a fen at all", cases[0].FEN)
}

func TestParsePositions_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "not a sequence",
			yaml:    "id: 1\nfen: x\n",
			message: "expected a sequence of records, got mapping",
		},
		{
			name:    "record is scalar",
			yaml:    "- 1\n",
			message: "expected a mapping, got scalar",
		},
		{
			name:    "unknown field",
			yaml:    "- {id: \"1\", fen: x, depth: 1, expected: 2, nodes: 3}\n",
			message: `unknown field "nodes"`,
		},
		{
			name:    "misspelled field",
			yaml:    "- {id: \"1\", fen: x, depth: 1, expect: 2}\n",
			message: `unknown field "expect" (did you mean "expected"?)`,
		},
		{
			name:    "missing id",
			yaml:    "- {fen: x, depth: 1, expected: 2}\n",
			message: "id is required",
		},
		{
			name:    "id with punctuation",
			yaml:    "- {id: \"a-b\", fen: x, depth: 1, expected: 2}\n",
			message: `id "a-b" must contain only letters`,
		},
		{
			name:    "missing fen",
			yaml:    "- {id: \"1\", depth: 1, expected: 2}\n",
			message: "fen is required",
		},
		{
			name:    "negative depth",
			yaml:    "- {id: \"1\", fen: x, depth: -1, expected: 2}\n",
			message: `depth "-1" is not an unsigned decimal`,
		},
		{
			name:    "leading zero",
			yaml:    "- {id: \"1\", fen: x, depth: \"06\", expected: 2}\n",
			message: `depth "06" has a leading zero`,
		},
		{
			name:    "expected overflow",
			yaml:    "- {id: \"1\", fen: x, depth: 1, expected: 99999999999999999999999}\n",
			message: "is out of range",
		},
		{
			name:    "nested value",
			yaml:    "- {id: \"1\", fen: [a, b], depth: 1, expected: 2}\n",
			message: "cannot unmarshal",
		},
		{
			name: "second document",
			yaml: "- {id: \"1\", fen: x, depth: 1, expected: 2}\n" +
				"---\n" +
				"- {id: \"2\", fen: y, depth: 1, expected: 2}\n",
			message: "unexpected second YAML document at line 3",
		},
		{
			name:    "broken yaml",
			yaml:    "- {id: \"1\"\n",
			message: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePositions([]byte(tt.yaml), "positions.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.MalformedInput)
			assert.Contains(t, err.Error(), "positions.yaml")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseBackends(t *testing.T) {
	yaml := `
- perft_func: dragontoothPerft
  perft_name: dragontooth
  bench: true
- perft_func: goosePerft
  perft_name: goose
  bench: false
`

	backends, err := ParseBackends([]byte(yaml), "backends.yaml")
	require.NoError(t, err)
	require.Len(t, backends, 2)

	assert.Equal(t, BackendDescriptor{Function: "dragontoothPerft", Display: "dragontooth", Included: true, Line: 2}, backends[0])
	assert.Equal(t, "goose", backends[1].Display)
	assert.False(t, backends[1].Included)
}

func TestParseBackends_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "function not identifier",
			yaml:    "- {perft_func: \"pkg.Perft\", perft_name: x, bench: true}\n",
			message: `perft_func "pkg.Perft" is not a Go identifier`,
		},
		{
			name:    "missing display",
			yaml:    "- {perft_func: perft, bench: true}\n",
			message: "perft_name is required",
		},
		{
			name:    "bench not bool",
			yaml:    "- {perft_func: perft, perft_name: x, bench: sometimes}\n",
			message: "cannot unmarshal",
		},
		{
			name:    "record label",
			yaml:    "- {perft_func: a, perft_name: a, bench: true}\n- {perft_func: func, perft_name: b, bench: true}\n",
			message: "record 2 (line 2)",
		},
		{
			name:    "missing bench",
			yaml:    "- {perft_func: acmePerft, perft_name: acme}\n",
			message: `field "bench" is required`,
		},
		{
			name:    "second document",
			yaml:    "- {perft_func: a, perft_name: a, bench: true}\n---\n- {perft_func: b, perft_name: b, bench: true}\n",
			message: "unexpected second YAML document at line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBackends([]byte(tt.yaml), "backends.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.MalformedInput)
			assert.Contains(t, err.Error(), "backends.yaml")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParsePositions_TrailingEmptyDocument(t *testing.T) {
	cases, err := ParsePositions([]byte("- {id: \"1\", fen: x, depth: 1, expected: 2}\n---\n"), "positions.yaml")
	require.NoError(t, err)
	assert.Len(t, cases, 1)
}

func TestLoadPositions_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadPositions(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.MalformedInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_RepositoryData(t *testing.T) {
	cases, err := LoadPositions(filepath.Join("..", "..", "data", "positions.yaml"))
	require.NoError(t, err)
	assert.Len(t, cases, 27)
	assert.Equal(t, "kiwipete", cases[len(cases)-1].ID)

	backends, err := LoadBackends(filepath.Join("..", "..", "data", "backends.yaml"))
	require.NoError(t, err)
	require.Len(t, backends, 2)
	assert.Equal(t, "dragontoothPerft", backends[0].Function)
	assert.Equal(t, "goosePerft", backends[1].Function)
}
