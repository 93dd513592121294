// Package errors provides the structured error types used by the picort
// runtime core.
//
// Errors are categorized by Kind. The resize engine and its collaborators
// report exactly three kinds:
//
//   - KindNotSupported: a data-dependent policy violation (rank mismatch,
//     static-shape mismatch, capacity overflow). Recoverable by the caller;
//     the descriptor is left untouched.
//   - KindInternal: a violated caller precondition (required storage absent).
//     Not expected in correct programs.
//   - KindInvalidArgument: malformed input to a pure helper, such as a
//     dim-order sequence that is not a permutation.
//
// All errors implement the standard error interface and support
// errors.Is/As. Kind matching works through sentinel values:
//
//	if errors.Is(err, errors.ErrNotSupported) {
//	    // pick a different output buffer, or abort the computation
//	}
package errors
