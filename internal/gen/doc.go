// Package gen renders an expanded perft plan into Go source.
//
// Generation uses text/template + go/format. The output file holds:
//   - one benchmark function per entry, delegating to the backend's perft helper
//     with the entry's literal FEN, depth and expected node count
//   - a table of every entry
//   - the aggregate table of the default run
//
// Output is a pure function of the plan: regenerating from unchanged inputs
// yields byte-identical source.
package gen
