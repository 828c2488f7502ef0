package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	repomocks "github.com/munier-ie/stayonx/internal/repository/mocks"
	"github.com/munier-ie/stayonx/internal/service"
	svcmocks "github.com/munier-ie/stayonx/internal/service/mocks"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := repomocks.NewMockProfilesRepositoryI(ctrl)
	spacesRepo := repomocks.NewMockSpacesRepositoryI(ctrl)
	activityRepo := repomocks.NewMockActivityRepositoryI(ctrl)
	streaks := svcmocks.NewMockStreakServiceI(ctrl)
	spaces := svcmocks.NewMockSpaceServiceI(ctrl)
	badgeServ := svcmocks.NewMockBadgeServiceI(ctrl)
	serv := service.NewActivityService(profilesRepo, spacesRepo, activityRepo, streaks, spaces, badgeServ, clock)

	userID := uuid.New()
	spaceID := uuid.New()
	// Asia/Tokyo is already on 2025-03-10 21:00 at testNow
	tokyo := testProfile(userID)
	tokyo.Timezone = "Asia/Tokyo"
	merged := record(userID, "2025-03-10", 1, 7, 1)
	badge := entity.BadgeDefinition{ID: "streak-7", Category: entity.BadgeStreak, Threshold: 7}

	testCases := []struct {
		Desc           string
		Error          error
		Req            *service.RecordActivityRequest
		ExpectedBadges []entity.BadgeDefinition
		MockPrepFunc   func()
	}{
		{
			Desc:           "date defaults to the user's today and hooks run",
			Req:            &service.RecordActivityRequest{Replies: 2},
			ExpectedBadges: []entity.BadgeDefinition{badge},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByID(gomock.Any(), userID).Return(tokyo, nil)
				activityRepo.EXPECT().Add(gomock.Any(), &entity.ActivityRecord{
					UserID:         userID,
					Date:           day("2025-03-10"),
					ActivityCounts: entity.ActivityCounts{Replies: 2},
				}).Return(&merged, nil)
				streaks.EXPECT().Recompute(gomock.Any(), userID).Return(&entity.StreakState{UserID: userID, CurrentStreak: 7}, nil)
				spacesRepo.EXPECT().GetMembership(gomock.Any(), userID).Return(&entity.Membership{SpaceID: spaceID, UserID: userID}, nil)
				spaces.EXPECT().RefreshTeamStreak(gomock.Any(), spaceID).Return(3, nil)
				badgeServ.EXPECT().AwardNew(gomock.Any(), userID).Return([]entity.BadgeDefinition{badge}, nil)
			},
		},
		{
			Desc:           "hook failures do not fail the sync",
			Req:            &service.RecordActivityRequest{Date: "2025-03-09", Tweets: 1},
			ExpectedBadges: []entity.BadgeDefinition{},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByID(gomock.Any(), userID).Return(tokyo, nil)
				activityRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&merged, nil)
				streaks.EXPECT().Recompute(gomock.Any(), userID).Return(nil, errors.New("connection reset"))
				spacesRepo.EXPECT().GetMembership(gomock.Any(), userID).Return(nil, errors.New("connection reset"))
				badgeServ.EXPECT().AwardNew(gomock.Any(), userID).Return(nil, errors.New("connection reset"))
			},
		},
		{
			Desc:           "badges inserted before an award failure are reported",
			Req:            &service.RecordActivityRequest{Replies: 1},
			ExpectedBadges: []entity.BadgeDefinition{badge},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByID(gomock.Any(), userID).Return(tokyo, nil)
				activityRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&merged, nil)
				streaks.EXPECT().Recompute(gomock.Any(), userID).Return(&entity.StreakState{UserID: userID, CurrentStreak: 7}, nil)
				spacesRepo.EXPECT().GetMembership(gomock.Any(), userID).Return(nil, nil)
				badgeServ.EXPECT().AwardNew(gomock.Any(), userID).
					Return([]entity.BadgeDefinition{badge}, errors.New("connection reset"))
			},
		},
		{
			Desc:  "error date too far ahead",
			Error: errorvalues.ErrInvalidDay,
			Req:   &service.RecordActivityRequest{Date: "2025-03-12", Replies: 1},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByID(gomock.Any(), userID).Return(tokyo, nil)
			},
		},
		{
			Desc:  "error malformed date",
			Error: errorvalues.ErrValidation,
			Req:   &service.RecordActivityRequest{Date: "2025-02-30"},
			MockPrepFunc: func() {
			},
		},
		{
			Desc:  "error negative count",
			Error: errorvalues.ErrValidation,
			Req:   &service.RecordActivityRequest{Replies: -1},
			MockPrepFunc: func() {
			},
		},
		{
			Desc:  "error store unavailable",
			Error: errorvalues.ErrStoreUnavailable,
			Req:   &service.RecordActivityRequest{Replies: 1},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByID(gomock.Any(), userID).Return(tokyo, nil)
				activityRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := serv.Record(ctx, userID, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &merged, res.Record)
			assert.Equal(t, tc.ExpectedBadges, res.NewBadges)
		})
	}
}
