package service

import (
	"context"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/badges"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/logctx"
	"golang.org/x/sync/errgroup"
)

type BadgeService struct {
	catalogue *badges.Catalogue
	streaks   StreakServiceI
	profiles  repository.ProfilesRepositoryI
	activity  repository.ActivityRepositoryI
	spaces    repository.SpacesRepositoryI
	repo      repository.BadgesRepositoryI
	opts      options
}

func NewBadgeService(
	catalogue *badges.Catalogue,
	streaks StreakServiceI,
	profilesRepo repository.ProfilesRepositoryI,
	activityRepo repository.ActivityRepositoryI,
	spacesRepo repository.SpacesRepositoryI,
	badgesRepo repository.BadgesRepositoryI,
	opts ...Option,
) *BadgeService {
	if catalogue == nil || streaks == nil || profilesRepo == nil || activityRepo == nil || spacesRepo == nil || badgesRepo == nil {
		log.Fatal("provided nil dependency to badge service")
	}
	return &BadgeService{
		catalogue: catalogue,
		streaks:   streaks,
		profiles:  profilesRepo,
		activity:  activityRepo,
		spaces:    spacesRepo,
		repo:      badgesRepo,
		opts:      buildOptions(opts),
	}
}

func (bs *BadgeService) metrics(ctx context.Context, uid uuid.UUID) (engine.BadgeMetrics, error) {
	var m engine.BadgeMetrics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view, err := bs.streaks.Compute(gctx, uid)
		if err != nil {
			return err
		}
		m.CurrentStreak = view.Current
		return nil
	})
	g.Go(func() error {
		total, err := bs.activity.TotalReplies(gctx, uid)
		if err != nil {
			return storeErr("summing replies", err)
		}
		m.TotalReplies = total
		return nil
	})
	g.Go(func() error {
		p, err := bs.profiles.GetByID(gctx, uid)
		if err != nil {
			return storeErr("getting profile", err)
		}
		m.BestGlobalRank = p.BestLeaderboardPosition
		m.BestSpaceRank = p.BestSpacePosition
		return nil
	})
	return m, g.Wait()
}

func (bs *BadgeService) Evaluate(ctx context.Context, uid uuid.UUID) ([]engine.BadgeProgress, error) {
	m, err := bs.metrics(ctx, uid)
	if err != nil {
		return nil, err
	}
	return engine.EvaluateBadges(bs.catalogue.All(), m), nil
}

// AwardNew persists the difference between qualifying and held badges. Correctness under
// concurrent calls rests on the store's (user, badge) uniqueness: a badge another call
// inserted first is not reported here.
func (bs *BadgeService) AwardNew(ctx context.Context, uid uuid.UUID) ([]entity.BadgeDefinition, error) {
	results, err := bs.Evaluate(ctx, uid)
	if err != nil {
		return nil, err
	}
	earned, err := bs.repo.ListEarned(ctx, uid)
	if err != nil {
		return nil, storeErr("listing earned badges", err)
	}
	candidates := engine.NewlyEarned(results, earned)
	if len(candidates) == 0 {
		return []entity.BadgeDefinition{}, nil
	}
	ids := make([]string, 0, len(candidates))
	for _, b := range candidates {
		ids = append(ids, b.ID)
	}
	now := bs.opts.now()
	// badges inserted before a failure are held and get announced either way
	inserted, err := bs.repo.Award(ctx, uid, ids, now)
	awarded := make([]entity.BadgeDefinition, 0, len(inserted))
	for _, id := range inserted {
		if b, ok := bs.catalogue.Get(id); ok {
			awarded = append(awarded, b)
		}
	}
	bs.announce(ctx, uid, awarded)
	if err != nil {
		return awarded, storeErr("awarding badges", err)
	}
	return awarded, nil
}

// announce writes one badge_earned event per badge to the user's Space feed.
// Failures are logged; the award stands.
func (bs *BadgeService) announce(ctx context.Context, uid uuid.UUID, awarded []entity.BadgeDefinition) {
	if len(awarded) == 0 {
		return
	}
	logger := logctx.From(ctx)
	m, err := bs.spaces.GetMembership(ctx, uid)
	if err != nil {
		logger.Warn("badge events skipped: membership lookup failed", slog.String("error", err.Error()))
		return
	}
	if m == nil {
		return
	}
	for _, b := range awarded {
		err = bs.spaces.AppendEvent(ctx, &entity.SpaceActivityEvent{
			SpaceID:   m.SpaceID,
			UserID:    uid,
			EventType: entity.EventBadgeEarned,
			EventData: map[string]any{"badge_id": b.ID, "badge_name": b.Name},
			CreatedAt: bs.opts.now(),
		})
		if err != nil {
			logger.Warn("badge event not written", slog.String("badge_id", b.ID), slog.String("error", err.Error()))
		}
	}
}

func (bs *BadgeService) ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error) {
	earned, err := bs.repo.ListEarned(ctx, uid)
	if err != nil {
		return nil, storeErr("listing earned badges", err)
	}
	return earned, nil
}

func (bs *BadgeService) RecordRank(ctx context.Context, uid uuid.UUID, req *RankRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := bs.profiles.RecordBestRank(ctx, uid, req.Board, req.Rank); err != nil {
		return storeErr("recording rank", err)
	}
	return nil
}
