package engine

import (
	"time"

	"github.com/munier-ie/stayonx/pkg/entity"
)

// MemberHistory is one Space member's activity as seen by the team streak.
type MemberHistory struct {
	Membership entity.Membership
	Records    []entity.ActivityRecord
	// Today is the member's own local calendar day.
	Today entity.Day
	Loc   *time.Location
}

// MemberStreak counts a member's consecutive met days under the Space goals, starting no
// earlier than the member's join day.
func MemberStreak(m MemberHistory, goals entity.GoalSet) int {
	joinDay := entity.DayIn(m.Membership.JoinedAt, m.Loc)
	if joinDay.After(m.Today) {
		joinDay = m.Today
	}
	limit := joinDay.DaysUntil(m.Today) + 1
	if limit > HistoryHorizon {
		limit = HistoryHorizon
	}
	return currentStreak(NewHistory(m.Records), ConstantGoals(goals.Targets()), m.Today, limit)
}

// TeamStreak is the minimum member streak: one miss by anyone breaks it for everyone.
// A Space without members has no streak.
func TeamStreak(members []MemberHistory, goals entity.GoalSet) int {
	if len(members) == 0 {
		return 0
	}
	team := -1
	for _, m := range members {
		s := MemberStreak(m, goals)
		if team < 0 || s < team {
			team = s
		}
	}
	return team
}
