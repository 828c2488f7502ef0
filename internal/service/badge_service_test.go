package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/badges"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/repository"
	repomocks "github.com/munier-ie/stayonx/internal/repository/mocks"
	"github.com/munier-ie/stayonx/internal/service"
	svcmocks "github.com/munier-ie/stayonx/internal/service/mocks"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalogue = []byte(`
version: 1
badges:
  - id: streak-7
    category: streak
    name: 7-Day Streak
    threshold: 7
  - id: replies-100
    category: replies
    name: 100 Replies
    threshold: 100
  - id: leaderboard-top10
    category: leaderboard
    name: Top 10
    threshold: 10
`)

type badgeDeps struct {
	streaks  *svcmocks.MockStreakServiceI
	profiles *repomocks.MockProfilesRepositoryI
	activity *repomocks.MockActivityRepositoryI
	spaces   *repomocks.MockSpacesRepositoryI
	badges   *repomocks.MockBadgesRepositoryI
}

func newBadgeService(t *testing.T) (*service.BadgeService, badgeDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalogue, err := badges.Parse(testCatalogue)
	require.NoError(t, err)
	d := badgeDeps{
		streaks:  svcmocks.NewMockStreakServiceI(ctrl),
		profiles: repomocks.NewMockProfilesRepositoryI(ctrl),
		activity: repomocks.NewMockActivityRepositoryI(ctrl),
		spaces:   repomocks.NewMockSpacesRepositoryI(ctrl),
		badges:   repomocks.NewMockBadgesRepositoryI(ctrl),
	}
	s := service.NewBadgeService(catalogue, d.streaks, d.profiles, d.activity, d.spaces, d.badges, clock)
	return s, d
}

func (d badgeDeps) expectMetrics(uid uuid.UUID, streak, replies int, globalRank *int) {
	d.streaks.EXPECT().Compute(gomock.Any(), uid).Return(&service.StreakView{Current: streak}, nil)
	d.activity.EXPECT().TotalReplies(gomock.Any(), uid).Return(replies, nil)
	p := testProfile(uid)
	p.BestLeaderboardPosition = globalRank
	d.profiles.EXPECT().GetByID(gomock.Any(), uid).Return(p, nil)
}

func TestEvaluateBadges(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	rank := 15
	deps.expectMetrics(userID, 3, 150, &rank)

	res, err := serv.Evaluate(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "streak-7", res[0].Badge.ID)
	assert.False(t, res[0].Earned)
	assert.InDelta(t, 42.86, res[0].Progress, 0.01)

	assert.True(t, res[1].Earned)
	assert.Equal(t, 100.0, res[1].Progress)

	assert.False(t, res[2].Earned)
	assert.Equal(t, 50.0, res[2].Progress)
}

func TestAwardNewIsIdempotent(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	spaceID := uuid.New()

	var held []entity.EarnedBadge
	deps.badges.EXPECT().ListEarned(gomock.Any(), userID).DoAndReturn(
		func(context.Context, uuid.UUID) ([]entity.EarnedBadge, error) {
			return held, nil
		}).Times(2)
	deps.badges.EXPECT().Award(gomock.Any(), userID, []string{"streak-7", "replies-100"}, testNow).DoAndReturn(
		func(_ context.Context, uid uuid.UUID, ids []string, at time.Time) ([]string, error) {
			for _, id := range ids {
				held = append(held, entity.EarnedBadge{UserID: uid, BadgeID: id, EarnedAt: at})
			}
			return ids, nil
		})
	deps.spaces.EXPECT().GetMembership(gomock.Any(), userID).Return(&entity.Membership{SpaceID: spaceID, UserID: userID}, nil)
	deps.spaces.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *entity.SpaceActivityEvent) error {
			assert.Equal(t, entity.EventBadgeEarned, e.EventType)
			assert.Equal(t, spaceID, e.SpaceID)
			return nil
		})
	// second event fails and is swallowed
	deps.spaces.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	ctx := context.Background()
	t.Run("first call awards", func(t *testing.T) {
		deps.expectMetrics(userID, 7, 100, nil)
		awarded, err := serv.AwardNew(ctx, userID)
		require.NoError(t, err)
		require.Len(t, awarded, 2)
		assert.Equal(t, "streak-7", awarded[0].ID)
		assert.Equal(t, "replies-100", awarded[1].ID)
	})
	t.Run("second call awards nothing", func(t *testing.T) {
		deps.expectMetrics(userID, 7, 100, nil)
		awarded, err := serv.AwardNew(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, awarded)
	})
}

func TestAwardNewConcurrentInsert(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	deps.expectMetrics(userID, 7, 100, nil)
	deps.badges.EXPECT().ListEarned(gomock.Any(), userID).Return(nil, nil)
	// replies-100 was inserted by a concurrent call
	deps.badges.EXPECT().Award(gomock.Any(), userID, gomock.Any(), testNow).Return([]string{"streak-7"}, nil)
	deps.spaces.EXPECT().GetMembership(gomock.Any(), userID).Return(nil, nil)

	awarded, err := serv.AwardNew(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "streak-7", awarded[0].ID)
}

func TestAwardNewAnnouncesBadgesInsertedBeforeFailure(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	spaceID := uuid.New()
	deps.expectMetrics(userID, 7, 100, nil)
	deps.badges.EXPECT().ListEarned(gomock.Any(), userID).Return(nil, nil)
	deps.badges.EXPECT().Award(gomock.Any(), userID, []string{"streak-7", "replies-100"}, testNow).
		Return([]string{"streak-7"}, errors.New("awarding badge error: connection reset"))
	deps.spaces.EXPECT().GetMembership(gomock.Any(), userID).Return(&entity.Membership{SpaceID: spaceID, UserID: userID}, nil)
	deps.spaces.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *entity.SpaceActivityEvent) error {
			assert.Equal(t, entity.EventBadgeEarned, e.EventType)
			assert.Equal(t, "streak-7", e.EventData["badge_id"])
			return nil
		})

	awarded, err := serv.AwardNew(context.Background(), userID)
	assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	require.Len(t, awarded, 1)
	assert.Equal(t, "streak-7", awarded[0].ID)
}

func TestAwardNewStoreError(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	deps.expectMetrics(userID, 7, 100, nil)
	deps.badges.EXPECT().ListEarned(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

	_, err := serv.AwardNew(context.Background(), userID)
	assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
}

func TestRecordRank(t *testing.T) {
	t.Parallel()
	serv, deps := newBadgeService(t)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.RankRequest
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req:  &service.RankRequest{Board: repository.BoardGlobal, Rank: 8},
			MockPrepFunc: func() {
				deps.profiles.EXPECT().RecordBestRank(gomock.Any(), userID, repository.BoardGlobal, 8).Return(nil)
			},
		},
		{
			Desc:         "error unknown board",
			Error:        errorvalues.ErrValidation,
			Req:          &service.RankRequest{Board: "weekly", Rank: 8},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error zero rank",
			Error:        errorvalues.ErrValidation,
			Req:          &service.RankRequest{Board: repository.BoardSpace},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error profile not found",
			Error: errorvalues.ErrProfileNotFound,
			Req:   &service.RankRequest{Board: repository.BoardSpace, Rank: 2},
			MockPrepFunc: func() {
				deps.profiles.EXPECT().RecordBestRank(gomock.Any(), userID, repository.BoardSpace, 2).Return(errorvalues.ErrProfileNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.RecordRank(ctx, userID, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
