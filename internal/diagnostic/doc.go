// Package diagnostic provides the typed errors raised by the perft benchmark
// generator.
//
// Every failure aborts generation. Errors carry:
//   - the failure Kind (MalformedInput, EmptyInputSet, DuplicateGeneratedName, EmitError, ConfigError)
//   - the pipeline stage that raised it
//   - the offending file and record, when known
package diagnostic
