package engine

import (
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/pkg/entity"
)

// MinLockDays is the shortest commitment window a goal change can start.
const MinLockDays = 7

// LockedUntil reports whether goals are locked at now and until when.
// Expiry is computed on read; there is no stored unlocked state.
func LockedUntil(goals entity.GoalSet, now time.Time) (time.Time, bool) {
	if goals.LockUntil == nil || !now.Before(*goals.LockUntil) {
		return time.Time{}, false
	}
	return *goals.LockUntil, true
}

// ClampLockDays raises durations below MinLockDays to the minimum.
func ClampLockDays(days int) int {
	if days < MinLockDays {
		return MinLockDays
	}
	return days
}

// ApplyGoals validates a goal change against the current lock and returns the goal set to
// persist, locked for max(durationDays, MinLockDays) from now. Any change, raising or
// lowering, is rejected while the current lock is active.
func ApplyGoals(current, next entity.GoalSet, durationDays int, now time.Time) (entity.GoalSet, error) {
	if until, locked := LockedUntil(current, now); locked {
		return current, errorvalues.NewPrecondition(errorvalues.ErrGoalsLocked, &until)
	}
	days := ClampLockDays(durationDays)
	until := now.Add(time.Duration(days) * 24 * time.Hour)
	res := next.Targets()
	res.LockDuration = days
	res.LockUntil = &until
	return res, nil
}

// ApplySpaceGoals applies an owner's goal edit to a Space. The edit lock goes to LockUntil;
// LockDuration is the window new members commit to and keeps its value.
func ApplySpaceGoals(current, next entity.GoalSet, durationDays int, now time.Time) (entity.GoalSet, error) {
	res, err := ApplyGoals(current, next, durationDays, now)
	if err != nil {
		return current, err
	}
	res.LockDuration = current.LockDuration
	return res, nil
}

// MembershipLockUntil is the end of a member's commitment window, anchored at join time.
// Returns nil when the space has no lock duration.
func MembershipLockUntil(joinedAt time.Time, lockDays int) *time.Time {
	if lockDays <= 0 {
		return nil
	}
	until := joinedAt.Add(time.Duration(lockDays) * 24 * time.Hour)
	return &until
}

// CanJoin enforces the single-Space constraint.
func CanJoin(existing *entity.Membership) error {
	if existing != nil {
		return errorvalues.NewPrecondition(errorvalues.ErrAlreadyMember, nil)
	}
	return nil
}

// CanQuit allows leaving once the member's own lock window has elapsed.
func CanQuit(m *entity.Membership, spaceID uuid.UUID, now time.Time) error {
	if m == nil || m.SpaceID != spaceID {
		return errorvalues.NewPrecondition(errorvalues.ErrNotMember, nil)
	}
	if m.LockUntil != nil && now.Before(*m.LockUntil) {
		until := *m.LockUntil
		return errorvalues.NewPrecondition(errorvalues.ErrMembershipLocked, &until)
	}
	return nil
}

// CanManage is the owner check used for deletion and Space goal edits.
func CanManage(space *entity.Space, actor uuid.UUID) error {
	if space.OwnerID != actor {
		return errorvalues.NewPrecondition(errorvalues.ErrNotOwner, nil)
	}
	return nil
}
