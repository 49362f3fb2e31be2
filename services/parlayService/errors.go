package parlayService

import "errors"

var ErrParlayNotFound = errors.New("parlay not found")

// ValidationError reports malformed input. Nothing was mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PolicyDeniedError reports a stake rejected by the economy rules (cap or
// cooldown). Nothing was mutated except a period-counter rollover.
type PolicyDeniedError struct {
	Reason string
	// RetryAfterMinutes is set for cooldown denials, zero otherwise.
	RetryAfterMinutes int
}

func (e *PolicyDeniedError) Error() string { return e.Reason }

// InvalidTransitionError reports an operation on a wager or leg that is not in
// the state the operation requires.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string { return e.Reason }

// UserFacing reports whether err should be shown to the user verbatim rather
// than logged as an operational failure.
func UserFacing(err error) bool {
	var vErr *ValidationError
	var pErr *PolicyDeniedError
	var tErr *InvalidTransitionError
	return errors.As(err, &vErr) || errors.As(err, &pErr) || errors.As(err, &tErr) || errors.Is(err, ErrParlayNotFound)
}
