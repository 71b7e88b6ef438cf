package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"perft-bench/internal/backend"
	"perft-bench/internal/logging"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func newPerftCmd() *cobra.Command {
	var (
		fen      string
		depth    int
		names    []string
		all      bool
		divide   bool
		repeat   int
		expected uint64
	)

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Run perft on a position with one or more backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", depth)
			}

			backends, err := selectBackends(names, all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			log := logging.L()

			var mismatch bool

			for _, b := range backends {
				if divide {
					if err := runDivide(out, b, fen, depth); err != nil {
						return err
					}

					continue
				}

				res, err := backend.Run(b, fen, depth, repeat)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, res.String())

				log.Debug().
					Str("backend", res.Backend).
					Int("depth", res.Depth).
					Uint64("nodes", res.Nodes).
					Dur("elapsed", res.Elapsed).
					Msg("perft finished")

				if cmd.Flags().Changed("expected") && res.Nodes != expected {
					log.Error().
						Str("backend", res.Backend).
						Uint64("nodes", res.Nodes).
						Uint64("expected", expected).
						Msg("perft mismatch")

					mismatch = true
				}
			}

			if mismatch {
				return errors.New("perft result differs from expected node count")
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&fen, "fen", startFEN, "position in Forsyth-Edwards Notation")
	fs.IntVarP(&depth, "depth", "d", 5, "search depth in plies")
	fs.StringSliceVarP(&names, "backend", "b", []string{"dragontooth"}, "backend to run (repeatable)")
	fs.BoolVar(&all, "all", false, "run every registered backend")
	fs.BoolVar(&divide, "divide", false, "print the node count below each root move")
	fs.IntVar(&repeat, "repeat", 1, "number of timed runs")
	fs.Uint64Var(&expected, "expected", 0, "fail unless every backend reports this node count")

	return cmd
}

func selectBackends(names []string, all bool) ([]backend.Backend, error) {
	if all {
		return backend.All(), nil
	}

	out := make([]backend.Backend, 0, len(names))

	for _, name := range names {
		b, err := backend.Lookup(name)
		if err != nil {
			return nil, err
		}

		out = append(out, b)
	}

	return out, nil
}

func runDivide(w io.Writer, b backend.Backend, fen string, depth int) error {
	pos, err := b.Load(fen)
	if err != nil {
		return fmt.Errorf("%s: %w", b.Name(), err)
	}

	counts := pos.Divide(depth)

	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}

	slices.Sort(moves)

	var total uint64

	fmt.Fprintf(w, "%s: divide %d\n", b.Name(), depth)

	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
		total += counts[m]
	}

	fmt.Fprintf(w, "moves: %d\tnodes: %d\n", len(moves), total)

	return nil
}
