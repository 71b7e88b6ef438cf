// Package dataset loads the two tables the perft benchmark generator expands:
// the test positions and the move-generation backends.
//
// Both files are YAML sequences of mappings. JSON arrays are valid YAML, so
// JSON data files load unchanged.
//
// # Positions
//
//	- id: "03"
//	  fen: "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1"
//	  depth: 6
//	  expected: 1440467
//	- id: kiwipete
//	  fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
//	  depth: 4
//	  expected: 4085603
//
// depth and expected are kept as decimal strings and embedded into generated
// code verbatim.
//
// # Backends
//
//	- perft_func: dragontoothPerft
//	  perft_name: dragontooth
//	  bench: true
//
// The loader validates record shape and literal syntax. It trusts FEN content and does not
// cross-check ids or names; that is left to the expander.
package dataset
