package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"perft-bench/internal/diagnostic"
	"perft-bench/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// Filename is the name of the generated file.
	Filename string
	// AggregateName names the table of default-run benchmarks.
	AggregateName string
	// AllName names the table of every generated benchmark.
	AllName string
	// Sources are the data files named in the generated header.
	Sources []string
	// DebugDir, when set, receives the unformatted source if formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:   "perftbench",
		Filename:      "perft_gen.go",
		AggregateName: "Benches",
		AllName:       "Entries",
	}
}

// Generator generates Go code from an expanded plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "perft_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the benchmark template.
type templateData struct {
	PackageName   string
	Sources       []string
	AggregateName string
	AllName       string
	Entries       []entryData
	Aggregate     []entryData
}

// entryData is one rendered benchmark function.
type entryData struct {
	Name     string
	Function string
	FEN      string
	Depth    string
	Expected string
}

// Generate renders p into a single formatted Go file.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if err := g.validate(p); err != nil {
		return nil, err
	}

	data := &templateData{
		PackageName:   g.config.PackageName,
		Sources:       g.config.Sources,
		AggregateName: g.config.AggregateName,
		AllName:       g.config.AllName,
		Entries:       buildEntries(p.Entries),
		Aggregate:     buildEntries(p.Aggregate),
	}

	var buf bytes.Buffer
	if err := benchTemplate.Execute(&buf, data); err != nil {
		return nil, g.emitErr(fmt.Errorf("executing template: %w", err))
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: a failing sidecar must not hide the format error.
		if p, debugErr := writeDebugUnformatted(g.config.DebugDir, g.config.Filename, buf.Bytes()); debugErr == nil && p != "" {
			return nil, g.emitErr(fmt.Errorf("formatting code (unformatted source in %s): %w", p, err))
		}

		return nil, g.emitErr(fmt.Errorf("formatting code: %w", err))
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

// validate checks that every identifier the template emits is usable and
// that the two tables do not shadow an entry function.
func (g *Generator) validate(p *plan.Plan) error {
	if p == nil {
		return g.configErr("plan is nil")
	}

	idents := []struct{ what, name string }{
		{"package name", g.config.PackageName},
		{"aggregate name", g.config.AggregateName},
		{"all-entries name", g.config.AllName},
	}

	for _, id := range idents {
		if !token.IsIdentifier(id.name) {
			return g.configErr("%s %q is not a Go identifier", id.what, id.name)
		}
	}

	if g.config.AggregateName == g.config.AllName {
		return g.configErr("aggregate and all-entries tables are both named %q", g.config.AllName)
	}

	for _, e := range p.Entries {
		if !token.IsIdentifier(e.Name) {
			return diagnostic.Newf(diagnostic.EmitError, diagnostic.StageEmit, g.config.Filename, e.Name,
				"entry name is not a Go identifier")
		}

		if e.Name == g.config.AggregateName || e.Name == g.config.AllName {
			return g.configErr("table name %q collides with a generated entry", e.Name)
		}
	}

	return nil
}

func (g *Generator) emitErr(err error) error {
	return diagnostic.New(diagnostic.EmitError, diagnostic.StageEmit, g.config.Filename, "", err)
}

func (g *Generator) configErr(format string, args ...any) error {
	return diagnostic.Newf(diagnostic.ConfigError, diagnostic.StageEmit, g.config.Filename, "", format, args...)
}

func buildEntries(entries []plan.Entry) []entryData {
	out := make([]entryData, len(entries))
	for i, e := range entries {
		out[i] = entryData{
			Name:     e.Name,
			Function: e.Backend.Function,
			FEN:      strconv.Quote(e.Position.FEN),
			Depth:    e.Position.Depth,
			Expected: e.Position.Expected,
		}
	}

	return out
}

// Template for the benchmark file

var benchTemplate = template.Must(template.New("bench").Parse(`// Code generated by perftgen. DO NOT EDIT.
{{if .Sources}}// Sources:{{range .Sources}} {{.}}{{end}}
{{end}}
package {{.PackageName}}

import "testing"
{{range .Entries}}
func {{.Name}}(b *testing.B) {
	{{.Function}}(b, {{.FEN}}, {{.Depth}}, {{.Expected}})
}
{{end}}
// {{.AllName}} lists every generated perft benchmark.
var {{.AllName}} = []testing.InternalBenchmark{
{{range .Entries}}	{Name: "{{.Name}}", F: {{.Name}}},
{{end}}}

// {{.AggregateName}} lists the perft benchmarks of the default run.
var {{.AggregateName}} = []testing.InternalBenchmark{
{{range .Aggregate}}	{Name: "{{.Name}}", F: {{.Name}}},
{{end}}}
`))
