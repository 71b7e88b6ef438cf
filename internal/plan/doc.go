// Package plan expands position and backend tables into benchmark entries.
//
// Expansion pipeline:
//  1. Normalized positions × backends → one Entry per pair, backend-major
//  2. Every entry name must be unique; a collision is fatal
//  3. Entries of backends marked for the default run → the aggregate, in
//     expansion order
package plan
