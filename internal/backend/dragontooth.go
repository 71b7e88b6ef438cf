package backend

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

// Name implements Backend.
func (Dragontooth) Name() string { return "dragontooth" }

// Description implements Backend.
func (Dragontooth) Description() string { return "github.com/dylhunn/dragontoothmg" }

// Load implements Backend.
func (Dragontooth) Load(fen string) (pos Position, err error) {
	if err := checkFEN(fen); err != nil {
		return nil, err
	}

	// ParseFen panics on some malformed input instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("%w %q: %v", ErrInvalidFEN, fen, r)
		}
	}()

	board := dragontoothmg.ParseFen(fen)

	return &dragontoothPosition{board: &board}, nil
}

type dragontoothPosition struct {
	board *dragontoothmg.Board
}

func (p *dragontoothPosition) Perft(depth int) uint64 {
	return dragontoothPerft(p.board, depth)
}

func (p *dragontoothPosition) Divide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}

	for _, m := range p.board.GenerateLegalMoves() {
		unapply := p.board.Apply(m)
		result[m.String()] = dragontoothPerft(p.board, depth-1)
		unapply()
	}

	return result
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64

	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}

	return nodes
}
