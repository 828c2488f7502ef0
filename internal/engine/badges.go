package engine

import (
	"math"

	"github.com/munier-ie/stayonx/pkg/entity"
)

// BadgeMetrics are the scalar inputs to badge evaluation.
// A nil rank means the user never placed on that board.
type BadgeMetrics struct {
	CurrentStreak  int
	TotalReplies   int
	BestGlobalRank *int
	BestSpaceRank  *int
}

type BadgeProgress struct {
	Badge    entity.BadgeDefinition `json:"badge"`
	Earned   bool                   `json:"earned"`
	Progress float64                `json:"progress"`
}

// EvaluateBadges scores every catalogue entry against m. It has no side effects.
func EvaluateBadges(catalogue []entity.BadgeDefinition, m BadgeMetrics) []BadgeProgress {
	res := make([]BadgeProgress, 0, len(catalogue))
	for _, b := range catalogue {
		var earned bool
		var progress float64
		switch b.Category {
		case entity.BadgeStreak, entity.BadgeConsistency:
			earned, progress = countProgress(m.CurrentStreak, b.Threshold)
		case entity.BadgeReplies:
			earned, progress = countProgress(m.TotalReplies, b.Threshold)
		case entity.BadgeLeaderboard:
			earned, progress = rankProgress(m.BestGlobalRank, b.Threshold)
		case entity.BadgeSpace:
			earned, progress = rankProgress(m.BestSpaceRank, b.Threshold)
		}
		res = append(res, BadgeProgress{Badge: b, Earned: earned, Progress: progress})
	}
	return res
}

func countProgress(value, threshold int) (bool, float64) {
	if threshold <= 0 {
		return true, 100
	}
	return value >= threshold, math.Min(100, float64(value)/float64(threshold)*100)
}

// rankProgress: lower rank is better. Progress is 100 at or below threshold and falls
// linearly to zero at twice the threshold.
func rankProgress(rank *int, threshold int) (bool, float64) {
	if rank == nil || *rank <= 0 || threshold <= 0 {
		return false, 0
	}
	if *rank <= threshold {
		return true, 100
	}
	over := float64(*rank-threshold) / float64(threshold) * 100
	return false, math.Max(0, 100-over)
}

// NewlyEarned returns qualifying badges missing from the already-earned set, in catalogue order.
func NewlyEarned(results []BadgeProgress, earned []entity.EarnedBadge) []entity.BadgeDefinition {
	have := make(map[string]struct{}, len(earned))
	for _, e := range earned {
		have[e.BadgeID] = struct{}{}
	}
	var out []entity.BadgeDefinition
	for _, r := range results {
		if !r.Earned {
			continue
		}
		if _, ok := have[r.Badge.ID]; ok {
			continue
		}
		out = append(out, r.Badge)
	}
	return out
}
