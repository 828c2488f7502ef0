package engine_test

import (
	"testing"

	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var catalogue = []entity.BadgeDefinition{
	{ID: "streak-7", Category: entity.BadgeStreak, Threshold: 7},
	{ID: "consistency-7w", Category: entity.BadgeConsistency, Threshold: 49},
	{ID: "replies-100", Category: entity.BadgeReplies, Threshold: 100},
	{ID: "leaderboard-top10", Category: entity.BadgeLeaderboard, Threshold: 10},
	{ID: "space-no1", Category: entity.BadgeSpace, Threshold: 1},
}

func intPtr(v int) *int { return &v }

func byID(results []engine.BadgeProgress) map[string]engine.BadgeProgress {
	out := make(map[string]engine.BadgeProgress, len(results))
	for _, r := range results {
		out[r.Badge.ID] = r
	}
	return out
}

func TestEvaluateBadges(t *testing.T) {
	t.Parallel()
	res := byID(engine.EvaluateBadges(catalogue, engine.BadgeMetrics{
		CurrentStreak:  14,
		TotalReplies:   50,
		BestGlobalRank: intPtr(15),
		BestSpaceRank:  intPtr(1),
	}))
	assert.True(t, res["streak-7"].Earned)
	assert.Equal(t, 100.0, res["streak-7"].Progress)

	assert.False(t, res["consistency-7w"].Earned)
	assert.InDelta(t, 14.0/49.0*100, res["consistency-7w"].Progress, 0.001)

	assert.False(t, res["replies-100"].Earned)
	assert.Equal(t, 50.0, res["replies-100"].Progress)

	assert.False(t, res["leaderboard-top10"].Earned)
	assert.Equal(t, 50.0, res["leaderboard-top10"].Progress)

	assert.True(t, res["space-no1"].Earned)
	assert.Equal(t, 100.0, res["space-no1"].Progress)
}

func TestEvaluateBadgesRankEdges(t *testing.T) {
	t.Parallel()
	res := byID(engine.EvaluateBadges(catalogue, engine.BadgeMetrics{BestGlobalRank: intPtr(500)}))
	assert.Equal(t, 0.0, res["leaderboard-top10"].Progress)
	assert.False(t, res["space-no1"].Earned, "never ranked")
	assert.Equal(t, 0.0, res["space-no1"].Progress)

	res = byID(engine.EvaluateBadges(catalogue, engine.BadgeMetrics{BestGlobalRank: intPtr(10)}))
	assert.True(t, res["leaderboard-top10"].Earned)
}

func TestNewlyEarned(t *testing.T) {
	t.Parallel()
	results := engine.EvaluateBadges(catalogue, engine.BadgeMetrics{CurrentStreak: 60, TotalReplies: 120})
	fresh := engine.NewlyEarned(results, nil)
	ids := make([]string, 0, len(fresh))
	for _, b := range fresh {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"streak-7", "consistency-7w", "replies-100"}, ids)

	earned := []entity.EarnedBadge{{BadgeID: "streak-7"}, {BadgeID: "consistency-7w"}, {BadgeID: "replies-100"}}
	assert.Empty(t, engine.NewlyEarned(results, earned))
}
