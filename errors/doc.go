// Package errors provides structured error types for the wordvm module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the config field path, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidInput).
//		Path("stack", "capacity-bytes").
//		Value(1000).
//		Detail("capacity must be a multiple of %d", 32).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhasePush, 32768, 32768)
//	err := errors.Underflow(errors.PhasePop, 0)
//
// The stack package itself reports failures as booleans; these types are used by
// the layers that translate those outcomes for callers and logs.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
