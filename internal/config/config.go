// Package config holds the perftgen generator configuration.
//
// Configuration comes from three layers, later ones winning:
//  1. Default()
//  2. an optional HCL file (perftgen.hcl)
//  3. command-line flags
//
// Relative paths are resolved against BaseDir, the directory of the HCL file.
//
//	positions = "data/positions.yaml"
//	backends  = "data/backends.yaml"
//	output    = "internal/perftbench/perft_gen.go"
//	package   = "perftbench"
//	aggregate = "Benches"
//	all       = "Entries"
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"perft-bench/internal/diagnostic"
)

// Config names the generator inputs and output.
type Config struct {
	// BaseDir anchors the relative paths below.
	BaseDir string
	// Positions is the position table.
	Positions string
	// Backends is the backend table.
	Backends string
	// Output is the generated Go file.
	Output string
	// Package is the package clause of the generated file.
	Package string
	// Aggregate names the default-run benchmark table.
	Aggregate string
	// All names the table of every benchmark.
	All string
	// Debug keeps the unformatted source next to Output when formatting fails.
	Debug bool
}

// hclFile is the on-disk shape of the configuration.
type hclFile struct {
	Positions *string `hcl:"positions,optional"`
	Backends  *string `hcl:"backends,optional"`
	Output    *string `hcl:"output,optional"`
	Package   *string `hcl:"package,optional"`
	Aggregate *string `hcl:"aggregate,optional"`
	All       *string `hcl:"all,optional"`
	Debug     *bool   `hcl:"debug,optional"`
}

// Default returns the configuration of this repository's own benchmark suite.
func Default() Config {
	return Config{
		BaseDir:   ".",
		Positions: "data/positions.yaml",
		Backends:  "data/backends.yaml",
		Output:    "internal/perftbench/perft_gen.go",
		Package:   "perftbench",
		Aggregate: "Benches",
		All:       "Entries",
	}
}

// LoadFile reads an HCL configuration file over Default().
func LoadFile(path string) (Config, error) {
	cfg := Default()

	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return cfg, configErr(path, fmt.Errorf("failed to parse HCL file: %w", diags))
	}

	var parsed hclFile

	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return cfg, configErr(path, fmt.Errorf("failed to decode HCL file: %w", diags))
	}

	cfg.BaseDir = filepath.Dir(path)
	overlay(&cfg.Positions, parsed.Positions)
	overlay(&cfg.Backends, parsed.Backends)
	overlay(&cfg.Output, parsed.Output)
	overlay(&cfg.Package, parsed.Package)
	overlay(&cfg.Aggregate, parsed.Aggregate)
	overlay(&cfg.All, parsed.All)
	overlay(&cfg.Debug, parsed.Debug)

	return cfg, nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Resolve returns p anchored at BaseDir unless it is absolute.
func (c Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.BaseDir, p)
}

// Sources returns the two data paths as written, with forward slashes, for
// use in generated headers. They do not depend on the working directory.
func (c Config) Sources() []string {
	return []string{filepath.ToSlash(c.Positions), filepath.ToSlash(c.Backends)}
}

// Validate checks that every required setting is present.
func (c Config) Validate() error {
	var missing []string

	for _, f := range []struct{ name, value string }{
		{"positions", c.Positions},
		{"backends", c.Backends},
		{"output", c.Output},
		{"package", c.Package},
		{"aggregate", c.Aggregate},
		{"all", c.All},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return configErr("", fmt.Errorf("missing settings: %s", strings.Join(missing, ", ")))
	}

	if filepath.Ext(c.Output) != ".go" {
		return configErr("", errors.New("output must be a .go file"))
	}

	return nil
}

func configErr(file string, err error) error {
	return diagnostic.New(diagnostic.ConfigError, diagnostic.StageConfig, file, "", err)
}
