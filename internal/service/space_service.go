package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/logctx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	InviteTTL = 7 * 24 * time.Hour

	inviteMinDigits = 12
	inviteMaxDigits = 14

	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

type SpaceService struct {
	repo      repository.SpacesRepositoryI
	profiles  repository.ProfilesRepositoryI
	activity  repository.ActivityRepositoryI
	publisher Publisher
	opts      options
}

func NewSpaceService(
	spacesRepo repository.SpacesRepositoryI,
	profilesRepo repository.ProfilesRepositoryI,
	activityRepo repository.ActivityRepositoryI,
	publisher Publisher,
	opts ...Option,
) *SpaceService {
	if spacesRepo == nil || profilesRepo == nil || activityRepo == nil {
		log.Fatal("provided nil repository to space service")
	}
	return &SpaceService{
		repo:      spacesRepo,
		profiles:  profilesRepo,
		activity:  activityRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

func (ss *SpaceService) Create(ctx context.Context, uid uuid.UUID, req *CreateSpaceRequest) (*entity.Space, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := ss.repo.GetMembership(ctx, uid)
	if err != nil {
		return nil, storeErr("getting membership", err)
	}
	if err = engine.CanJoin(existing); err != nil {
		return nil, err
	}
	now := ss.opts.now()
	goals := entity.GoalSet{Reply: req.Reply, Tweet: req.Tweet, DM: req.DM}
	if req.LockDays > 0 {
		goals.LockDuration = engine.ClampLockDays(req.LockDays)
	}
	space := &entity.Space{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Visibility: req.Visibility,
		OwnerID:    uid,
		Goals:      goals,
		CreatedAt:  now,
	}
	owner := &entity.Membership{
		SpaceID:   space.ID,
		UserID:    uid,
		JoinedAt:  now,
		LockUntil: engine.MembershipLockUntil(now, goals.LockDuration),
	}
	if err = ss.repo.Create(ctx, space, owner); err != nil {
		return nil, storeErr("creating space", err)
	}
	publish(ctx, ss.publisher, uid)
	return space, nil
}

func (ss *SpaceService) Get(ctx context.Context, spaceID uuid.UUID) (*SpaceView, error) {
	space, err := ss.repo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, storeErr("getting space", err)
	}
	members, err := ss.repo.ListMembers(ctx, spaceID)
	if err != nil {
		return nil, storeErr("listing members", err)
	}
	return &SpaceView{Space: space, Members: members}, nil
}

func (ss *SpaceService) ListPublic(ctx context.Context, pagination PaginationOpts) ([]*entity.Space, error) {
	if err := validateStruct(pagination); err != nil {
		return nil, err
	}
	spaces, err := ss.repo.ListPublic(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, storeErr("listing spaces", err)
	}
	return spaces, nil
}

// Join admits the user into a Space. Rejections happen before any write; the store's
// unique user_id on members settles races between two concurrent joins.
func (ss *SpaceService) Join(ctx context.Context, uid, spaceID uuid.UUID, req *JoinSpaceRequest) (*entity.Membership, error) {
	if req == nil {
		req = &JoinSpaceRequest{}
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := ss.repo.GetMembership(ctx, uid)
	if err != nil {
		return nil, storeErr("getting membership", err)
	}
	if err = engine.CanJoin(existing); err != nil {
		return nil, err
	}
	space, err := ss.repo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, storeErr("getting space", err)
	}
	now := ss.opts.now()
	if space.Visibility == entity.VisibilityPrivate {
		if err = ss.checkInvite(ctx, spaceID, req.InviteCode, now); err != nil {
			return nil, err
		}
	}
	m := &entity.Membership{
		SpaceID:   spaceID,
		UserID:    uid,
		JoinedAt:  now,
		LockUntil: engine.MembershipLockUntil(now, space.Goals.LockDuration),
	}
	if err = ss.repo.Join(ctx, m); err != nil {
		return nil, storeErr("joining space", err)
	}
	publish(ctx, ss.publisher, uid)
	ss.refreshQuietly(ctx, spaceID)
	return m, nil
}

func (ss *SpaceService) checkInvite(ctx context.Context, spaceID uuid.UUID, code string, now time.Time) error {
	if code == "" {
		return errorvalues.NewPrecondition(errorvalues.ErrInviteRequired, nil)
	}
	invites, err := ss.repo.ListActiveInvites(ctx, spaceID, now)
	if err != nil {
		return storeErr("listing invites", err)
	}
	for _, inv := range invites {
		if bcrypt.CompareHashAndPassword([]byte(inv.CodeHash), []byte(code)) == nil {
			return nil
		}
	}
	return errorvalues.NewPrecondition(errorvalues.ErrInviteRequired, nil)
}

func (ss *SpaceService) Quit(ctx context.Context, uid, spaceID uuid.UUID) error {
	m, err := ss.repo.GetMembership(ctx, uid)
	if err != nil {
		return storeErr("getting membership", err)
	}
	now := ss.opts.now()
	if err = engine.CanQuit(m, spaceID, now); err != nil {
		return err
	}
	if err = ss.repo.Leave(ctx, m, now); err != nil {
		return storeErr("leaving space", err)
	}
	publish(ctx, ss.publisher, uid)
	ss.refreshQuietly(ctx, spaceID)
	return nil
}

// Delete removes the Space with every membership. Activity records stay with their users.
func (ss *SpaceService) Delete(ctx context.Context, uid, spaceID uuid.UUID) error {
	space, err := ss.repo.GetByID(ctx, spaceID)
	if err != nil {
		return storeErr("getting space", err)
	}
	if err = engine.CanManage(space, uid); err != nil {
		return err
	}
	members, err := ss.repo.ListMembers(ctx, spaceID)
	if err != nil {
		return storeErr("listing members", err)
	}
	if err = ss.repo.Delete(ctx, spaceID); err != nil {
		return storeErr("deleting space", err)
	}
	publish(ctx, ss.publisher, memberIDs(members)...)
	return nil
}

func (ss *SpaceService) UpdateGoals(ctx context.Context, uid, spaceID uuid.UUID, req *SetGoalsRequest) (*entity.Space, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ss.opts.now()
	next := entity.GoalSet{Reply: req.Reply, Tweet: req.Tweet, DM: req.DM}
	space, err := ss.repo.UpdateGoals(ctx, spaceID, func(space *entity.Space) (entity.GoalSet, error) {
		if err := engine.CanManage(space, uid); err != nil {
			return space.Goals, err
		}
		return engine.ApplySpaceGoals(space.Goals, next, req.DurationDays, now)
	})
	if err != nil {
		return nil, storeErr("updating space goals", err)
	}
	members, err := ss.repo.ListMembers(ctx, spaceID)
	if err != nil {
		logctx.From(ctx).Warn("space goals changed but members were not notified",
			slog.String("space_id", spaceID.String()), slog.String("error", err.Error()))
		return space, nil
	}
	publish(ctx, ss.publisher, memberIDs(members)...)
	ss.refreshQuietly(ctx, spaceID)
	return space, nil
}

func (ss *SpaceService) CreateInvite(ctx context.Context, uid, spaceID uuid.UUID) (*InviteCode, error) {
	m, err := ss.repo.GetMembership(ctx, uid)
	if err != nil {
		return nil, storeErr("getting membership", err)
	}
	if m == nil || m.SpaceID != spaceID {
		return nil, errorvalues.NewPrecondition(errorvalues.ErrNotMember, nil)
	}
	code, err := newInviteCode()
	if err != nil {
		return nil, errors.New("generating invite code error: " + err.Error())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hashing invite code error: " + err.Error())
	}
	now := ss.opts.now()
	inv := &entity.SpaceInvite{
		ID:        uuid.New(),
		SpaceID:   spaceID,
		CodeHash:  string(hash),
		CreatedBy: uid,
		CreatedAt: now,
		ExpiresAt: now.Add(InviteTTL),
	}
	if err = ss.repo.CreateInvite(ctx, inv); err != nil {
		return nil, storeErr("creating invite", err)
	}
	return &InviteCode{Code: code, ExpiresAt: inv.ExpiresAt}, nil
}

// newInviteCode returns 12 to 14 random decimal digits.
func newInviteCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(inviteMaxDigits-inviteMinDigits+1))
	if err != nil {
		return "", err
	}
	length := inviteMinDigits + int(n.Int64())
	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for range length {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}

func (ss *SpaceService) Feed(ctx context.Context, spaceID uuid.UUID, limit int) ([]entity.SpaceActivityEvent, error) {
	switch {
	case limit <= 0:
		limit = DefaultFeedLimit
	case limit > MaxFeedLimit:
		limit = MaxFeedLimit
	}
	if _, err := ss.repo.GetByID(ctx, spaceID); err != nil {
		return nil, storeErr("getting space", err)
	}
	events, err := ss.repo.ListEvents(ctx, spaceID, limit)
	if err != nil {
		return nil, storeErr("listing events", err)
	}
	return events, nil
}

// RefreshTeamStreak recomputes the Space streak from every member's log under the Space goals,
// each member judged on their own calendar day.
func (ss *SpaceService) RefreshTeamStreak(ctx context.Context, spaceID uuid.UUID) (int, error) {
	space, err := ss.repo.GetByID(ctx, spaceID)
	if err != nil {
		return 0, storeErr("getting space", err)
	}
	members, err := ss.repo.ListMembers(ctx, spaceID)
	if err != nil {
		return 0, storeErr("listing members", err)
	}
	if len(members) == 0 {
		if err = ss.repo.UpdateStreakCount(ctx, spaceID, 0); err != nil {
			return 0, storeErr("storing team streak", err)
		}
		return 0, nil
	}

	locs := make([]*time.Location, len(members))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range members {
		g.Go(func() error {
			p, err := ss.profiles.GetByID(gctx, m.UserID)
			if err != nil {
				return storeErr("getting profile", err)
			}
			locs[i] = location(p.Timezone)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return 0, err
	}

	now := ss.opts.now()
	histories := make([]engine.MemberHistory, len(members))
	from := entity.DayIn(now, time.UTC)
	for i, m := range members {
		today := entity.DayIn(now, locs[i])
		histories[i] = engine.MemberHistory{Membership: m, Today: today, Loc: locs[i]}
		if joined := entity.DayIn(m.JoinedAt, locs[i]); joined.Before(from) {
			from = joined
		}
		if today.Before(from) {
			from = today
		}
	}
	if horizon := entity.DayIn(now, time.UTC).AddDays(-engine.HistoryHorizon - 1); from.Before(horizon) {
		from = horizon
	}

	records, err := ss.activity.ListByUsersSince(ctx, memberIDs(members), from)
	if err != nil {
		return 0, storeErr("listing member activity", err)
	}
	byUser := make(map[uuid.UUID][]entity.ActivityRecord, len(members))
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	for i := range histories {
		histories[i].Records = byUser[histories[i].Membership.UserID]
	}

	streak := engine.TeamStreak(histories, space.Goals)
	if err = ss.repo.UpdateStreakCount(ctx, spaceID, streak); err != nil {
		return 0, storeErr("storing team streak", err)
	}
	return streak, nil
}

func (ss *SpaceService) refreshQuietly(ctx context.Context, spaceID uuid.UUID) {
	if _, err := ss.RefreshTeamStreak(ctx, spaceID); err != nil {
		logctx.From(ctx).Warn("team streak refresh failed",
			slog.String("space_id", spaceID.String()), slog.String("error", err.Error()))
	}
}

func memberIDs(members []entity.Membership) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids
}
