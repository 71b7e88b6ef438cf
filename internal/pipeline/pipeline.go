// Package pipeline runs the perft benchmark generator end to end:
// load → normalize → expand → filter → emit.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"perft-bench/internal/config"
	"perft-bench/internal/dataset"
	"perft-bench/internal/diagnostic"
	"perft-bench/internal/gen"
	"perft-bench/internal/ident"
	"perft-bench/internal/logging"
	"perft-bench/internal/plan"
)

// ErrStale is returned by Check when the artifact on disk differs from what
// the inputs would generate.
var ErrStale = errors.New("generated artifact is out of date")

// Result summarizes one generator run.
type Result struct {
	// Output is the resolved artifact path.
	Output string
	// Plan is the expanded plan the artifact was rendered from.
	Plan *plan.Plan
	// Changed is false when the artifact already had the generated content.
	Changed bool
}

// Build loads both tables and expands them into a plan.
func Build(ctx context.Context, cfg config.Config) (*plan.Plan, error) {
	log := logging.WithStage(ctx, diagnostic.StageLoad)

	positions, err := dataset.LoadPositions(cfg.Resolve(cfg.Positions))
	if err != nil {
		return nil, err
	}

	backends, err := dataset.LoadBackends(cfg.Resolve(cfg.Backends))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("positions", len(positions)).
		Int("backends", len(backends)).
		Msg("loaded data files")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, width, err := ident.Normalize(positions)
	if err != nil {
		return nil, err
	}

	log = logging.WithStage(ctx, diagnostic.StageNormalize)
	log.Debug().Int("width", width).Msg("normalized position ids")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := plan.Expand(normalized, width, backends)
	if err != nil {
		return nil, err
	}

	log = logging.WithStage(ctx, diagnostic.StageExpand)
	log.Debug().
		Int("entries", len(p.Entries)).
		Int("aggregate", len(p.Aggregate)).
		Int("included_backends", p.IncludedBackends()).
		Msg("expanded cross product")

	return p, nil
}

// Render builds the plan and renders the artifact without writing it.
func Render(ctx context.Context, cfg config.Config) (*plan.Plan, *gen.GeneratedFile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	p, err := Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	genConfig := gen.GeneratorConfig{
		PackageName:   cfg.Package,
		Filename:      filepath.Base(cfg.Output),
		AggregateName: cfg.Aggregate,
		AllName:       cfg.All,
		Sources:       cfg.Sources(),
	}
	if cfg.Debug {
		genConfig.DebugDir = filepath.Dir(cfg.Resolve(cfg.Output))
	}

	file, err := gen.NewGenerator(genConfig).Generate(p)
	if err != nil {
		return nil, nil, err
	}

	return p, file, nil
}

// Run regenerates the artifact named by cfg. Nothing is written unless every
// stage succeeds; an unchanged artifact is left alone.
func Run(ctx context.Context, cfg config.Config) (*Result, error) {
	p, file, err := Render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.Resolve(cfg.Output)
	res := &Result{Output: out, Plan: p}

	log := logging.WithStage(ctx, diagnostic.StageEmit)

	if existing, err := os.ReadFile(out); err == nil && bytes.Equal(existing, file.Content) {
		log.Debug().Str("output", out).Msg("artifact unchanged")
		return res, nil
	}

	if err := gen.WriteFile(file, out); err != nil {
		return nil, err
	}

	res.Changed = true

	log.Info().
		Str("output", out).
		Int("entries", len(p.Entries)).
		Int("aggregate", len(p.Aggregate)).
		Msg("wrote perft benchmarks")

	return res, nil
}

// Check reports ErrStale when the artifact on disk does not match the inputs.
func Check(ctx context.Context, cfg config.Config) (*Result, error) {
	p, file, err := Render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.Resolve(cfg.Output)
	res := &Result{Output: out, Plan: p}

	existing, err := os.ReadFile(out)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrStale, err)
	}

	if !bytes.Equal(existing, file.Content) {
		res.Changed = true
		return res, fmt.Errorf("%w: %s", ErrStale, out)
	}

	return res, nil
}
