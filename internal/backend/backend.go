// Package backend wraps the move-generation libraries under benchmark behind a
// common perft interface.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"perft-bench/internal/common"
)

var (
	// ErrUnknownBackend is returned by Lookup for an unregistered name.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrInvalidFEN is returned by Load when a backend rejects a position.
	ErrInvalidFEN = errors.New("invalid FEN")
)

// Position is a loaded board ready for perft.
type Position interface {
	// Perft counts the leaf nodes of all legal move sequences of length depth.
	Perft(depth int) uint64
	// Divide returns the perft count below each legal root move, keyed by
	// the move in long algebraic notation.
	Divide(depth int) map[string]uint64
}

// Backend is one move-generation library.
type Backend interface {
	// Name is the registry key of the backend.
	Name() string
	// Description names the wrapped library.
	Description() string
	// Load parses fen into a Position.
	Load(fen string) (Position, error)
}

var registry = []Backend{
	Dragontooth{},
	Goose{},
}

// All returns every registered backend in registration order.
func All() []Backend {
	return append([]Backend(nil), registry...)
}

// Names returns the names of all registered backends.
func Names() []string {
	names := make([]string, len(registry))
	for i, b := range registry {
		names[i] = b.Name()
	}

	return names
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	for _, b := range registry {
		if b.Name() == name {
			return b, nil
		}
	}

	if hint := common.Hint(name, Names()); hint != "" {
		return nil, fmt.Errorf("%w %q%s", ErrUnknownBackend, name, hint)
	}

	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
}

// checkFEN performs the minimal structural check shared by all backends:
// at least four fields and eight ranks. Libraries that panic on garbage
// input are shielded by it.
func checkFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("%w %q: expected at least 4 fields, got %d", ErrInvalidFEN, fen, len(fields))
	}

	if ranks := strings.Count(fields[0], "/") + 1; ranks != 8 {
		return fmt.Errorf("%w %q: expected 8 ranks, got %d", ErrInvalidFEN, fen, ranks)
	}

	return nil
}
