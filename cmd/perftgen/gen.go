package main

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"perft-bench/internal/config"
	"perft-bench/internal/logging"
	"perft-bench/internal/pipeline"
)

// genFlags are the configuration overrides shared by gen and check.
type genFlags struct {
	config    string
	positions string
	backends  string
	output    string
	pkg       string
	aggregate string
	all       string
	keep      bool
}

func (f *genFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "HCL configuration file (default: built-in settings)")
	fs.StringVar(&f.positions, "positions", "", "position table (YAML)")
	fs.StringVar(&f.backends, "backends", "", "backend table (YAML)")
	fs.StringVar(&f.output, "out", "", "generated Go file")
	fs.StringVar(&f.pkg, "package", "", "package name of the generated file")
	fs.StringVar(&f.aggregate, "aggregate", "", "name of the default-run benchmark table")
	fs.StringVar(&f.all, "all", "", "name of the table holding every benchmark")
	fs.BoolVar(&f.keep, "keep-unformatted", false, "keep the unformatted source when formatting fails")
}

// resolve layers explicitly set flags over the configuration file or defaults.
// Flag paths are taken relative to the working directory.
func (f *genFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if f.config != "" {
		loaded, err := config.LoadFile(f.config)
		if err != nil {
			return cfg, err
		}

		cfg = loaded
	}

	fs := cmd.Flags()
	for _, o := range []struct {
		flag string
		dst  *string
		val  string
		path bool
	}{
		{"positions", &cfg.Positions, f.positions, true},
		{"backends", &cfg.Backends, f.backends, true},
		{"out", &cfg.Output, f.output, true},
		{"package", &cfg.Package, f.pkg, false},
		{"aggregate", &cfg.Aggregate, f.aggregate, false},
		{"all", &cfg.All, f.all, false},
	} {
		if !fs.Changed(o.flag) {
			continue
		}

		*o.dst = o.val
		if o.path {
			*o.dst = relativeTo(cfg.BaseDir, o.val)
		}
	}

	if fs.Changed("keep-unformatted") {
		cfg.Debug = f.keep
	}

	return cfg, nil
}

func newGenCmd() *cobra.Command {
	var (
		flags    genFlags
		dumpPlan bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the perft benchmark file",
		Long: `Loads the position and backend tables, expands every (position, backend)
pair into a benchmark and writes the generated Go file. The previous file is
left untouched unless generation succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			ctx := logging.WithContext(cmd.Context(), *logging.L())

			res, err := pipeline.Run(ctx, cfg)
			if err != nil {
				return err
			}

			if dumpPlan {
				dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				dumper.Fdump(cmd.ErrOrStderr(), res.Plan)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dumpPlan, "dump-plan", false, "dump the expanded plan to stderr")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if the generated file is out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			ctx := logging.WithContext(cmd.Context(), *logging.L())

			res, err := pipeline.Check(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d benchmarks)\n", res.Output, len(res.Plan.Entries))

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// relativeTo rewrites a working-directory path so that it resolves to the same
// file against base. Absolute paths are kept as they are.
func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return p
	}

	absPath, err := filepath.Abs(p)
	if err != nil {
		return p
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
