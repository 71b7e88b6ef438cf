package plan

import (
	"perft-bench/internal/dataset"
)

// EntryPrefix starts every generated entry name.
const EntryPrefix = "perft_"

// Plan is the output of expansion. It contains everything the emitter needs.
type Plan struct {
	// Width is the zero-padding width applied to numeric position ids.
	Width int
	// Positions are the normalized positions, in input order.
	Positions []dataset.PositionCase
	// Backends are the backends, in input order.
	Backends []dataset.BackendDescriptor
	// Entries is the full cross product, backend-major.
	Entries []Entry
	// Aggregate is the subsequence of Entries whose backend is included
	// in the default run.
	Aggregate []Entry
}

// Entry is one benchmark entry point: a single (position, backend) pair.
type Entry struct {
	// Name is perft_{padded id}_{display name}.
	Name string
	// Position supplies the literal FEN, depth and expected node count.
	Position dataset.PositionCase
	// Backend supplies the delegated perft function.
	Backend dataset.BackendDescriptor
}

// EntryName builds the generated name for a position id and backend display name.
func EntryName(id, display string) string {
	return EntryPrefix + id + "_" + display
}
