package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/logctx"
)

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// storeErr passes domain outcomes through and marks everything else as a store failure.
func storeErr(op string, err error) error {
	for _, known := range []error{
		errorvalues.ErrPreconditionFailed,
		errorvalues.ErrProfileNotFound,
		errorvalues.ErrSpaceNotFound,
		errorvalues.ErrInvalidDay,
		errorvalues.ErrValidation,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.Join(errorvalues.ErrStoreUnavailable, errors.New(op+" error: "+err.Error()))
}

func location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// userContext is everything needed to resolve a user's goals, fetched once per request.
type userContext struct {
	profile    *entity.Profile
	loc        *time.Location
	membership *entity.Membership
	space      *entity.Space
}

func (uc *userContext) today(now time.Time) entity.Day {
	return entity.DayIn(now, uc.loc)
}

func (uc *userContext) effectiveGoals() entity.GoalSet {
	return resolveFor(uc.profile, uc.space)
}

func loadUserContext(ctx context.Context, profiles repository.ProfilesRepositoryI, spaces repository.SpacesRepositoryI, uid uuid.UUID) (*userContext, error) {
	p, err := profiles.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr("getting profile", err)
	}
	uc := &userContext{profile: p, loc: location(p.Timezone)}
	m, err := spaces.GetMembership(ctx, uid)
	if err != nil {
		return nil, storeErr("getting membership", err)
	}
	if m == nil {
		return uc, nil
	}
	space, err := spaces.GetByID(ctx, m.SpaceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSpaceNotFound) {
			logctx.From(ctx).Warn("membership points to a missing space, using personal goals",
				slog.String("space_id", m.SpaceID.String()))
			return uc, nil
		}
		return nil, storeErr("getting space", err)
	}
	uc.membership = m
	uc.space = space
	return uc, nil
}

func publish(ctx context.Context, p Publisher, uids ...uuid.UUID) {
	if p == nil {
		return
	}
	for _, uid := range uids {
		p.Publish(ctx, uid)
	}
}
