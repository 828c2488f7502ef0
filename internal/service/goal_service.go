package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type GoalService struct {
	profiles  repository.ProfilesRepositoryI
	spaces    repository.SpacesRepositoryI
	publisher Publisher
	opts      options
}

func NewGoalService(profilesRepo repository.ProfilesRepositoryI, spacesRepo repository.SpacesRepositoryI, publisher Publisher, opts ...Option) *GoalService {
	if profilesRepo == nil || spacesRepo == nil {
		log.Fatal("provided nil repository to goal service")
	}
	return &GoalService{
		profiles:  profilesRepo,
		spaces:    spacesRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

func resolveFor(p *entity.Profile, space *entity.Space) entity.GoalSet {
	var personal *entity.GoalSet
	if p != nil {
		personal = &p.Goals
	}
	return engine.ResolveGoals(personal, space)
}

func (gs *GoalService) Resolve(ctx context.Context, uid uuid.UUID) (*ResolvedGoals, error) {
	uc, err := loadUserContext(ctx, gs.profiles, gs.spaces, uid)
	if err != nil {
		return nil, err
	}
	res := &ResolvedGoals{
		Personal:  uc.profile.Goals,
		Effective: uc.effectiveGoals(),
		Source:    SourcePersonal,
	}
	if uc.space != nil {
		res.Space = uc.space
		if !uc.space.Goals.Degenerate() {
			res.Source = SourceSpace
		}
	}
	return res, nil
}

// SetGoals re-checks the lock inside the row-locked update, so a stale unlocked read
// cannot push a change past a lock started by a concurrent request.
func (gs *GoalService) SetGoals(ctx context.Context, uid uuid.UUID, req *SetGoalsRequest) (*entity.GoalSet, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p, err := gs.profiles.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr("getting profile", err)
	}
	now := gs.opts.now()
	next := entity.GoalSet{Reply: req.Reply, Tweet: req.Tweet, DM: req.DM}
	goals, err := gs.profiles.UpdateGoals(ctx, uid, entity.DayIn(now, location(p.Timezone)), func(current entity.GoalSet) (entity.GoalSet, error) {
		return engine.ApplyGoals(current, next, req.DurationDays, now)
	})
	if err != nil {
		return nil, storeErr("updating goals", err)
	}
	publish(ctx, gs.publisher, uid)
	return goals, nil
}

func (gs *GoalService) History(ctx context.Context, uid uuid.UUID) ([]entity.GoalChange, error) {
	history, err := gs.profiles.GoalHistory(ctx, uid)
	if err != nil {
		return nil, storeErr("getting goal history", err)
	}
	return history, nil
}
