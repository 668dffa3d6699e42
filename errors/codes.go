package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is semantically invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a line or field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeNoSeeds indicates there is nothing to take a minimum over.
	ErrCodeNoSeeds ErrorCode = "NO_SEEDS"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Run errors
const (
	// ErrCodeCanceled indicates the run was canceled before completing.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitInvalid  = 2
	ExitNotFound = 3
	ExitCanceled = 130
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:  ExitInvalid,
	ErrCodeMissingField:  ExitInvalid,
	ErrCodeInvalidFormat: ExitInvalid,
	ErrCodeNoSeeds:       ExitInvalid,
	ErrCodeNotFound:      ExitNotFound,
	ErrCodeCanceled:      ExitCanceled,
	ErrCodeInternal:      ExitInternal,
}

// ExitCodeFor returns the process exit code for an error code.
// Unknown codes map to ExitInternal.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitInternal
}
