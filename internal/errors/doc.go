// Package errors provides error handling conventions for the kael CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It also re-exports the wrapping
// helpers from cockroachdb/errors so call sites import one package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, kaelerrors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid PRD, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := kaelerrors.NewUserError(kaelerrors.ErrInvalidPRD, "Check the PRD frontmatter")
//	var exitErr *kaelerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
