package perftbench

import (
	"testing"

	"perft-bench/internal/backend"
)

// runPerft loads fen once, then times perft at depth, failing the benchmark
// as soon as a run disagrees with expected.
func runPerft(b *testing.B, be backend.Backend, fen string, depth int, expected uint64) {
	b.Helper()

	pos, err := be.Load(fen)
	if err != nil {
		b.Fatalf("%s: %v", be.Name(), err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if got := pos.Perft(depth); got != expected {
			b.Fatalf("%s: perft %d of %q = %d, want %d", be.Name(), depth, fen, got, expected)
		}
	}
}

func dragontoothPerft(b *testing.B, fen string, depth int, expected uint64) {
	runPerft(b, backend.Dragontooth{}, fen, depth, expected)
}

func goosePerft(b *testing.B, fen string, depth int, expected uint64) {
	runPerft(b, backend.Goose{}, fen, depth, expected)
}
