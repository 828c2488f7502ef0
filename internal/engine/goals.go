// Package engine holds the deterministic rules that turn daily activity counts and goal
// configuration into streaks, commitment decisions and badge awards. Nothing here does I/O.
package engine

import (
	"sort"

	"github.com/munier-ie/stayonx/pkg/entity"
)

// ResolveGoals returns the single goal set in effect for a user.
// A Space with at least one enabled component overrides personal goals entirely.
// With neither, the default goals apply.
func ResolveGoals(personal *entity.GoalSet, space *entity.Space) entity.GoalSet {
	if space != nil && !space.Goals.Degenerate() {
		return space.Goals
	}
	if personal != nil {
		return *personal
	}
	return entity.DefaultGoals()
}

// GoalsByDate yields the goal set that was in effect on a given day.
type GoalsByDate func(day entity.Day) entity.GoalSet

// ConstantGoals applies the same goals to every day.
func ConstantGoals(g entity.GoalSet) GoalsByDate {
	return func(entity.Day) entity.GoalSet { return g }
}

type timelineEntry struct {
	from  entity.Day
	goals entity.GoalSet
}

// GoalTimeline is a step function of goal sets over calendar days.
type GoalTimeline struct {
	entries  []timelineEntry
	fallback entity.GoalSet
}

// NewGoalTimeline builds a timeline from personal goal history. Days before the first
// change use the earliest known goals, or fallback when there is no history at all.
func NewGoalTimeline(history []entity.GoalChange, fallback entity.GoalSet) *GoalTimeline {
	tl := &GoalTimeline{fallback: fallback}
	for _, h := range history {
		tl.entries = append(tl.entries, timelineEntry{from: h.EffectiveFrom, goals: h.Goals.Targets()})
	}
	tl.sort()
	return tl
}

// Override makes goals authoritative from the given day onward, replacing later entries.
func (tl *GoalTimeline) Override(from entity.Day, goals entity.GoalSet) {
	kept := tl.entries[:0]
	for _, e := range tl.entries {
		if e.from.Before(from) {
			kept = append(kept, e)
		}
	}
	tl.entries = append(kept, timelineEntry{from: from, goals: goals.Targets()})
	tl.sort()
}

func (tl *GoalTimeline) sort() {
	sort.SliceStable(tl.entries, func(i, j int) bool {
		return tl.entries[i].from.Before(tl.entries[j].from)
	})
}

// At returns the goals in effect on day.
func (tl *GoalTimeline) At(day entity.Day) entity.GoalSet {
	if len(tl.entries) == 0 {
		return tl.fallback.Targets()
	}
	current := tl.entries[0].goals
	for _, e := range tl.entries {
		if e.from.After(day) {
			break
		}
		current = e.goals
	}
	return current
}

// Func adapts the timeline to GoalsByDate.
func (tl *GoalTimeline) Func() GoalsByDate {
	return tl.At
}
