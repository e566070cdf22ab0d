package usecases

import (
	"labtrace/internal/shared/errors"
)

// commitOutcome is the classification of a single commit attempt's failure.
type commitOutcome int

const (
	// outcomeRetry marks a transient uniqueness violation from a concurrent
	// commit. The confirm loop tries again.
	outcomeRetry commitOutcome = iota
	// outcomeCodeChanged marks a stale previewed code. Never retried
	// server-side: the caller must re-preview.
	outcomeCodeChanged
	// outcomeFatal marks everything else. Surfaced immediately.
	outcomeFatal
)

// classifyCommitError maps a failed commit attempt to the retry policy.
// Duplicate-key errors on the (day, serial_of_day) pair or the serial number
// column mean a concurrent writer won the race; anything already shaped as an
// AppError (code-changed, overflow, duplicate serial detected in-flight)
// passes through untouched.
func classifyCommitError(err error) commitOutcome {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Type == errors.ErrorTypeCodeChanged {
			return outcomeCodeChanged
		}
		return outcomeFatal
	}
	if errors.IsDuplicateError(err) {
		return outcomeRetry
	}
	return outcomeFatal
}
