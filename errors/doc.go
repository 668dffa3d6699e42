// Package errors provides the structured error type used across the solver.
//
// Every failure surfaced to callers is an *AppError carrying a
// machine-readable ErrorCode, a human message, optional details (line
// numbers, offending fields) and the process exit code the CLI should use.
//
//	err := errors.InvalidFormat("line 4", "three integers: dest source length")
//	if errors.HasCode(err, errors.ErrCodeInvalidFormat) { ... }
//	os.Exit(errors.ExitCodeOf(err))
package errors
