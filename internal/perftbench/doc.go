// Package perftbench holds the generated perft benchmarks.
//
// perft_gen.go is regenerated from data/positions.yaml and data/backends.yaml:
//
//	go generate ./internal/perftbench
//
// Run the default suite with
//
//	go test ./internal/perftbench -run '^$' -bench 'Perft$'
//
// and every backend, including those outside the default run, with
// -bench PerftAll. A single entry runs with -bench 'PerftAll/perft_03_goose'.
package perftbench

//go:generate go run ../../cmd/perftgen gen --config ../../perftgen.hcl
