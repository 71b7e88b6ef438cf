package plan

import (
	"fmt"

	"perft-bench/internal/dataset"
	"perft-bench/internal/diagnostic"
)

// Expand builds the cross product of normalized positions and backends.
// width is the padding width the positions were normalized to.
//
// Iteration is backend-major, position-minor, so regenerated code keeps each
// backend's entries grouped. Names must be unique across the whole product:
// a collision fails with DuplicateGeneratedName and nothing is overwritten.
func Expand(positions []dataset.PositionCase, width int, backends []dataset.BackendDescriptor) (*Plan, error) {
	entries := make([]Entry, 0, len(positions)*len(backends))
	seen := make(map[string]int, cap(entries))

	for _, b := range backends {
		for _, p := range positions {
			e := Entry{
				Name:     EntryName(p.ID, b.Display),
				Position: p,
				Backend:  b,
			}

			if prev, ok := seen[e.Name]; ok {
				return nil, duplicateName(entries[prev], e)
			}

			seen[e.Name] = len(entries)
			entries = append(entries, e)
		}
	}

	return &Plan{
		Width:     width,
		Positions: positions,
		Backends:  backends,
		Entries:   entries,
		Aggregate: Included(entries),
	}, nil
}

func duplicateName(first, second Entry) error {
	return diagnostic.Newf(diagnostic.DuplicateGeneratedName, diagnostic.StageExpand, "", second.Name,
		"generated by both %s and %s", describe(first), describe(second))
}

func describe(e Entry) string {
	s := fmt.Sprintf("position %q", e.Position.ID)
	if e.Position.Line > 0 {
		s += fmt.Sprintf(" (line %d)", e.Position.Line)
	}

	return s + fmt.Sprintf(" with backend %q", e.Backend.Display)
}
