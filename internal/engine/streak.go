package engine

import (
	"github.com/munier-ie/stayonx/pkg/entity"
)

// HistoryHorizon caps how far back the current streak walk goes.
const HistoryHorizon = 365

// IsMet reports whether a day's activity satisfies every enabled goal component.
// A nil activity means nothing was captured that day.
func IsMet(activity *entity.ActivityCounts, goals entity.GoalSet) bool {
	var a entity.ActivityCounts
	if activity != nil {
		a = *activity
	}
	return componentMet(a.Replies, goals.Reply) &&
		componentMet(a.Tweets, goals.Tweet) &&
		componentMet(a.DMs, goals.DM)
}

func componentMet(actual, goal int) bool {
	return goal <= 0 || actual >= goal
}

type DayStatus struct {
	Date entity.Day            `json:"date"`
	Met  bool                  `json:"met"`
	Goal entity.GoalSet        `json:"goal"`
	Done entity.ActivityCounts `json:"done"`
}

type StreakResult struct {
	Current int         `json:"current_streak"`
	Longest int         `json:"longest_streak"`
	PerDay  []DayStatus `json:"per_day"`
}

// History indexes activity records by day.
type History map[entity.Day]entity.ActivityCounts

func NewHistory(records []entity.ActivityRecord) History {
	h := make(History, len(records))
	for _, r := range records {
		c := h[r.Date]
		c.Tweets += r.Tweets
		c.Replies += r.Replies
		c.DMs += r.DMs
		h[r.Date] = c
	}
	return h
}

func (h History) get(day entity.Day) *entity.ActivityCounts {
	c, ok := h[day]
	if !ok {
		return nil
	}
	return &c
}

func (h History) earliest() (entity.Day, bool) {
	var first entity.Day
	for d := range h {
		if first == "" || d.Before(first) {
			first = d
		}
	}
	return first, first != ""
}

// CurrentStreak walks backward from today and counts consecutive met days.
// An unmet today yields zero; the walk never exceeds HistoryHorizon days.
func CurrentStreak(h History, goalsAt GoalsByDate, today entity.Day) int {
	return currentStreak(h, goalsAt, today, HistoryHorizon)
}

func currentStreak(h History, goalsAt GoalsByDate, today entity.Day, limit int) int {
	count := 0
	for day := today; count < limit; day = day.AddDays(-1) {
		if !IsMet(h.get(day), goalsAt(day)) {
			break
		}
		count++
	}
	return count
}

// LongestStreak is the longest run of consecutive met days between the first recorded
// day and today. It is never shorter than the current streak.
func LongestStreak(h History, goalsAt GoalsByDate, today entity.Day) int {
	longest := CurrentStreak(h, goalsAt, today)
	first, ok := h.earliest()
	if !ok || first.After(today) {
		return longest
	}
	run := 0
	for day := first; !day.After(today); day = day.AddDays(1) {
		if IsMet(h.get(day), goalsAt(day)) {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}

// ComputeStreak returns current and longest streaks plus a per-day classification from the
// first recorded day (bounded by HistoryHorizon) up to today, oldest first.
func ComputeStreak(records []entity.ActivityRecord, goalsAt GoalsByDate, today entity.Day) StreakResult {
	h := NewHistory(records)
	res := StreakResult{
		Current: CurrentStreak(h, goalsAt, today),
		Longest: LongestStreak(h, goalsAt, today),
	}
	start := today
	if first, ok := h.earliest(); ok {
		start = first
		if horizon := today.AddDays(-(HistoryHorizon - 1)); start.Before(horizon) {
			start = horizon
		}
	}
	if start.After(today) {
		start = today
	}
	for day := start; !day.After(today); day = day.AddDays(1) {
		g := goalsAt(day)
		var done entity.ActivityCounts
		if c := h.get(day); c != nil {
			done = *c
		}
		res.PerDay = append(res.PerDay, DayStatus{
			Date: day,
			Met:  IsMet(h.get(day), g),
			Goal: g.Targets(),
			Done: done,
		})
	}
	return res
}
