package backend

import (
	"fmt"
	"time"
)

// Result is the outcome of one timed perft run.
type Result struct {
	Backend string
	FEN     string
	Depth   int
	Nodes   uint64
	Repeat  int
	Elapsed time.Duration
}

// NPS returns nodes per second over all repetitions.
func (r Result) NPS() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}

	return float64(r.Nodes*uint64(r.Repeat)) / secs
}

// String renders the result on one line.
func (r Result) String() string {
	return fmt.Sprintf("%-12s: Perft %d of %s\tResult: %d\tTime: %s\tNPS: %.0f",
		r.Backend, r.Depth, r.FEN, r.Nodes, r.Elapsed.Round(time.Millisecond), r.NPS())
}

// Run loads fen into b and times repeat perft runs at depth. Loading is not timed.
func Run(b Backend, fen string, depth, repeat int) (Result, error) {
	if repeat < 1 {
		repeat = 1
	}

	pos, err := b.Load(fen)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
	}

	res := Result{
		Backend: b.Name(),
		FEN:     fen,
		Depth:   depth,
		Repeat:  repeat,
	}

	start := time.Now()
	for range repeat {
		res.Nodes = pos.Perft(depth)
	}

	res.Elapsed = time.Since(start)

	return res, nil
}
