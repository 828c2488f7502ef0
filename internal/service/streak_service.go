package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type StreakService struct {
	profiles repository.ProfilesRepositoryI
	spaces   repository.SpacesRepositoryI
	activity repository.ActivityRepositoryI
	streaks  repository.StreaksRepositoryI
	opts     options
}

func NewStreakService(
	profilesRepo repository.ProfilesRepositoryI,
	spacesRepo repository.SpacesRepositoryI,
	activityRepo repository.ActivityRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	opts ...Option,
) *StreakService {
	if profilesRepo == nil || spacesRepo == nil || activityRepo == nil || streaksRepo == nil {
		log.Fatal("provided nil repository to streak service")
	}
	return &StreakService{
		profiles: profilesRepo,
		spaces:   spacesRepo,
		activity: activityRepo,
		streaks:  streaksRepo,
		opts:     buildOptions(opts),
	}
}

// goalTimeline rebuilds which goals applied on each past day. Profiles start with the
// default goals, so days between profile creation and the first recorded change use them.
// Space goals take over from the member's join day.
func goalTimeline(uc *userContext, history []entity.GoalChange) *engine.GoalTimeline {
	if !uc.profile.CreatedAt.IsZero() {
		created := entity.DayIn(uc.profile.CreatedAt, uc.loc)
		switch {
		case len(history) == 0:
			history = []entity.GoalChange{{
				UserID:        uc.profile.ID,
				EffectiveFrom: created,
				Goals:         uc.profile.Goals,
			}}
		case created.Before(history[0].EffectiveFrom):
			history = append([]entity.GoalChange{{
				UserID:        uc.profile.ID,
				EffectiveFrom: created,
				Goals:         entity.DefaultGoals(),
			}}, history...)
		}
	}
	tl := engine.NewGoalTimeline(history, uc.profile.Goals)
	if uc.space != nil && !uc.space.Goals.Degenerate() {
		tl.Override(entity.DayIn(uc.membership.JoinedAt, uc.loc), uc.space.Goals)
	}
	return tl
}

func (ss *StreakService) Compute(ctx context.Context, uid uuid.UUID) (*StreakView, error) {
	uc, err := loadUserContext(ctx, ss.profiles, ss.spaces, uid)
	if err != nil {
		return nil, err
	}
	var records []entity.ActivityRecord
	var history []entity.GoalChange
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = ss.activity.ListByUser(gctx, uid)
		if err != nil {
			return storeErr("listing activity", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = ss.profiles.GoalHistory(gctx, uid)
		if err != nil {
			return storeErr("getting goal history", err)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}
	today := uc.today(ss.opts.now())
	res := engine.ComputeStreak(records, goalTimeline(uc, history).Func(), today)
	return &StreakView{
		Today:   today,
		Current: res.Current,
		Longest: res.Longest,
		Goals:   uc.effectiveGoals(),
		PerDay:  res.PerDay,
	}, nil
}

// Recompute overwrites the cached state. Concurrent calls are safe: last writer wins and
// every writer computed from the same log.
func (ss *StreakService) Recompute(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error) {
	view, err := ss.Compute(ctx, uid)
	if err != nil {
		return nil, err
	}
	state := &entity.StreakState{
		UserID:        uid,
		CurrentStreak: view.Current,
		LongestStreak: view.Longest,
		UpdatedAt:     ss.opts.now(),
	}
	if err = ss.streaks.Save(ctx, state); err != nil {
		return nil, storeErr("saving streak", err)
	}
	return state, nil
}
