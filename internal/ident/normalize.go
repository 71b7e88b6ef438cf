package ident

import (
	"errors"
	"strings"

	"perft-bench/internal/dataset"
	"perft-bench/internal/diagnostic"
)

// IsNumeric reports whether id is non-empty and made only of ASCII digits.
func IsNumeric(id string) bool {
	if id == "" {
		return false
	}

	for i := range len(id) {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}

	return true
}

// PadWidth returns the length of the longest numeric id.
// It fails with EmptyInputSet when no numeric id exists.
func PadWidth(cases []dataset.PositionCase) (int, error) {
	width := 0
	found := false

	for _, c := range cases {
		if !IsNumeric(c.ID) {
			continue
		}

		found = true
		width = max(width, len(c.ID))
	}

	if !found {
		return 0, diagnostic.New(diagnostic.EmptyInputSet, diagnostic.StageNormalize, "", "",
			errors.New("no numeric position id to derive the padding width from"))
	}

	return width, nil
}

// Pad left-pads a numeric id with zeros to width. Symbolic ids and ids already
// at least width long are returned unchanged.
func Pad(id string, width int) string {
	if !IsNumeric(id) || len(id) >= width {
		return id
	}

	return strings.Repeat("0", width-len(id)) + id
}

// Normalize returns a copy of cases with every numeric id padded to the common
// width, along with that width. Collisions introduced by padding ("1" and "01")
// are left for the expander to report.
func Normalize(cases []dataset.PositionCase) ([]dataset.PositionCase, int, error) {
	width, err := PadWidth(cases)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dataset.PositionCase, len(cases))
	for i, c := range cases {
		c.ID = Pad(c.ID, width)
		out[i] = c
	}

	return out, width, nil
}
