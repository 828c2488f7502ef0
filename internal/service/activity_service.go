package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/logctx"
)

// MaxFutureDays is how far ahead of the user's today a record may be dated. Capture clients
// can run a few hours ahead of the server's idea of the user's timezone.
const MaxFutureDays = 1

type ActivityService struct {
	profiles repository.ProfilesRepositoryI
	spaces   repository.SpacesRepositoryI
	repo     repository.ActivityRepositoryI
	streaks  StreakServiceI
	space    SpaceServiceI
	badges   BadgeServiceI
	opts     options
}

func NewActivityService(
	profilesRepo repository.ProfilesRepositoryI,
	spacesRepo repository.SpacesRepositoryI,
	activityRepo repository.ActivityRepositoryI,
	streaks StreakServiceI,
	space SpaceServiceI,
	badges BadgeServiceI,
	opts ...Option,
) *ActivityService {
	if profilesRepo == nil || spacesRepo == nil || activityRepo == nil {
		log.Fatal("provided nil repository to activity service")
	}
	if streaks == nil || space == nil || badges == nil {
		log.Fatal("provided nil service to activity service")
	}
	return &ActivityService{
		profiles: profilesRepo,
		spaces:   spacesRepo,
		repo:     activityRepo,
		streaks:  streaks,
		space:    space,
		badges:   badges,
		opts:     buildOptions(opts),
	}
}

// Record merges counts into the user's day. The write is authoritative; the follow-up
// streak, team streak and badge updates only log on failure.
func (as *ActivityService) Record(ctx context.Context, uid uuid.UUID, req *RecordActivityRequest) (*SyncResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p, err := as.profiles.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr("getting profile", err)
	}
	today := entity.DayIn(as.opts.now(), location(p.Timezone))
	day := today
	if req.Date != "" {
		day, err = entity.ParseDay(req.Date)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrInvalidDay, err)
		}
		if day.After(today.AddDays(MaxFutureDays)) {
			return nil, errors.Join(errorvalues.ErrInvalidDay, errors.New("date "+day.String()+" is after "+today.String()))
		}
	}

	rec, err := as.repo.Add(ctx, &entity.ActivityRecord{
		UserID: uid,
		Date:   day,
		ActivityCounts: entity.ActivityCounts{
			Tweets:  req.Tweets,
			Replies: req.Replies,
			DMs:     req.DMs,
		},
	})
	if err != nil {
		return nil, storeErr("adding activity", err)
	}

	res := &SyncResult{Record: rec, NewBadges: []entity.BadgeDefinition{}}
	logger := logctx.From(ctx)
	if res.Streak, err = as.streaks.Recompute(ctx, uid); err != nil {
		logger.Warn("streak recompute after sync failed", slog.String("error", err.Error()))
	}
	m, err := as.spaces.GetMembership(ctx, uid)
	switch {
	case err != nil:
		logger.Warn("membership lookup after sync failed", slog.String("error", err.Error()))
	case m != nil:
		if _, err = as.space.RefreshTeamStreak(ctx, m.SpaceID); err != nil {
			logger.Warn("team streak refresh after sync failed",
				slog.String("space_id", m.SpaceID.String()), slog.String("error", err.Error()))
		}
	}
	awarded, err := as.badges.AwardNew(ctx, uid)
	if err != nil {
		logger.Warn("badge award after sync failed", slog.String("error", err.Error()))
	}
	if len(awarded) > 0 {
		res.NewBadges = awarded
	}
	return res, nil
}
