package dataset

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
)

func validatePosition(p *PositionCase) error {
	if p.ID == "" {
		return errors.New("id is required")
	}

	if !isWord(p.ID) {
		return fmt.Errorf("id %q must contain only letters, digits and underscores", p.ID)
	}

	if strings.TrimSpace(p.FEN) == "" {
		return fmt.Errorf("position %q: fen is required", p.ID)
	}

	if err := checkDecimal("depth", p.Depth, 31); err != nil {
		return fmt.Errorf("position %q: %w", p.ID, err)
	}

	if err := checkDecimal("expected", p.Expected, 64); err != nil {
		return fmt.Errorf("position %q: %w", p.ID, err)
	}

	return nil
}

func validateBackend(b *BackendDescriptor) error {
	if b.Function == "" {
		return errors.New("perft_func is required")
	}

	if !token.IsIdentifier(b.Function) {
		return fmt.Errorf("perft_func %q is not a Go identifier", b.Function)
	}

	if b.Display == "" {
		return fmt.Errorf("backend %q: perft_name is required", b.Function)
	}

	if !isWord(b.Display) {
		return fmt.Errorf("backend %q: perft_name %q must contain only letters, digits and underscores",
			b.Function, b.Display)
	}

	return nil
}

// checkDecimal accepts canonical unsigned decimals: ASCII digits only and no
// leading zero, so the value is a valid Go literal of the given bit size.
func checkDecimal(field, s string, bitSize int) error {
	if s == "" {
		return fmt.Errorf("%s is required", field)
	}

	if !isDigits(s) {
		return fmt.Errorf("%s %q is not an unsigned decimal", field, s)
	}

	if len(s) > 1 && s[0] == '0' {
		return fmt.Errorf("%s %q has a leading zero", field, s)
	}

	if _, err := strconv.ParseUint(s, 10, bitSize); err != nil {
		return fmt.Errorf("%s %q is out of range", field, s)
	}

	return nil
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}

func isWord(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c != '_' && (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return s != ""
}
