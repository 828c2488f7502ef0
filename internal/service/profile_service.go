package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type ProfileService struct {
	repo      repository.ProfilesRepositoryI
	publisher Publisher
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI, publisher Publisher) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo:      profilesRepo,
		publisher: publisher,
	}
}

func (ps *ProfileService) Ensure(ctx context.Context, uid uuid.UUID, handle string) (*entity.Profile, error) {
	p, err := ps.repo.Ensure(ctx, uid, handle)
	if err != nil {
		return nil, storeErr("ensuring profile", err)
	}
	return p, nil
}

func (ps *ProfileService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	p, err := ps.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr("getting profile", err)
	}
	return p, nil
}

// SetTimezone changes where the user's day boundary falls. Past records keep their dates.
func (ps *ProfileService) SetTimezone(ctx context.Context, uid uuid.UUID, req *TimezoneRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := ps.repo.SetTimezone(ctx, uid, req.Timezone); err != nil {
		return storeErr("setting timezone", err)
	}
	publish(ctx, ps.publisher, uid)
	return nil
}
