package errorvalues

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")

	ErrProfileNotFound  = errors.New("profile doesn't exist")
	ErrSpaceNotFound    = errors.New("space doesn't exist")
	ErrNotMember        = errors.New("user is not a member of the space")
	ErrInvalidDay       = errors.New("invalid calendar day")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidation       = errors.New("validation error")

	ErrPreconditionFailed = errors.New("precondition failed")
	ErrGoalsLocked        = errors.New("goals are locked")
	ErrMembershipLocked   = errors.New("membership is locked")
	ErrAlreadyMember      = errors.New("user already belongs to a space")
	ErrNotOwner           = errors.New("only the space owner can do this")
	ErrInviteRequired     = errors.New("valid invite code required")
)

// PreconditionFailed is returned when a state transition is rejected.
// Until is set when the rejection expires at a known moment.
type PreconditionFailed struct {
	Cause error
	Until *time.Time
}

func NewPrecondition(cause error, until *time.Time) *PreconditionFailed {
	return &PreconditionFailed{Cause: cause, Until: until}
}

func (e *PreconditionFailed) Error() string {
	msg := "precondition failed: " + e.Cause.Error()
	if e.Until != nil {
		msg += " until " + e.Until.UTC().Format(time.RFC3339)
	}
	return msg
}

func (e *PreconditionFailed) Unwrap() []error {
	return []error{ErrPreconditionFailed, e.Cause}
}

// LockedUntil extracts the earliest permissible time from err, if any.
func LockedUntil(err error) (time.Time, bool) {
	var pf *PreconditionFailed
	if errors.As(err, &pf) && pf.Until != nil {
		return *pf.Until, true
	}
	return time.Time{}, false
}
