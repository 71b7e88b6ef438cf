// Package main provides the CLI entrypoint for perftgen.
//
// perftgen turns a table of chess positions and a table of move-generation
// backends into a Go file of perft benchmarks, one per (position, backend)
// pair. It can also run perft directly against the registered backends.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"perft-bench/internal/diagnostic"
	"perft-bench/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

// logFailure logs err, tagged with its diagnostic kind when it has one.
func logFailure(err error) {
	ev := logging.L().Error().Err(err)
	if kind, ok := diagnostic.KindOf(err); ok {
		ev = ev.Stringer("kind", kind)
	}

	ev.Msg("perftgen failed")
}

func newRootCmd() *cobra.Command {
	var debug, human bool

	root := &cobra.Command{
		Use:           "perftgen",
		Short:         "Generate and run perft benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(cmd.ErrOrStderr(), debug, human)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&human, "human", false, "human-friendly log output")

	root.AddCommand(
		newGenCmd(),
		newCheckCmd(),
		newPerftCmd(),
		newBackendsCmd(),
	)

	return root
}
