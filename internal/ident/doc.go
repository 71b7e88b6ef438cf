// Package ident computes the fixed-width form of position identifiers.
//
// Numeric ids are left-padded with zeros to the length of the longest numeric
// id, so that generated entry names sort the same regardless of how many
// digits an id happens to have. Symbolic ids ("kiwipete") pass through.
package ident
