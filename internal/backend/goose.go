package backend

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// Goose wraps github.com/Oliverans/GooseEngineMG/goosemg.
type Goose struct{}

// Name implements Backend.
func (Goose) Name() string { return "goose" }

// Description implements Backend.
func (Goose) Description() string { return "github.com/Oliverans/GooseEngineMG/goosemg" }

// Load implements Backend.
func (Goose) Load(fen string) (Position, error) {
	if err := checkFEN(fen); err != nil {
		return nil, err
	}

	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidFEN, fen, err)
	}

	return &goosePosition{board: board}, nil
}

type goosePosition struct {
	board *goosemg.Board
}

func (p *goosePosition) Perft(depth int) uint64 {
	return goosemg.Perft(p.board, depth)
}

func (p *goosePosition) Divide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(p.board, depth) {
		result[m.String()] = n
	}

	return result
}
