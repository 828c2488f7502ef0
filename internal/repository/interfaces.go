package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/munier-ie/stayonx/pkg/entity"
)

// RankBoard selects which best-ever rank is recorded.
type RankBoard string

const (
	BoardGlobal RankBoard = "global"
	BoardSpace  RankBoard = "space"
)

type ProfilesRepositoryI interface {
	// Creates profile with default goals unless it exists. Returns stored profile
	Ensure(ctx context.Context, id uuid.UUID, handle string) (*entity.Profile, error)
	// Looks up profile by user id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Runs mutate on the row-locked current goals, stores the result and a goal history entry
	// effective from the given day, all in one transaction
	UpdateGoals(ctx context.Context, id uuid.UUID, effective entity.Day, mutate func(current entity.GoalSet) (entity.GoalSet, error)) (*entity.GoalSet, error)
	// Lists personal goal changes ordered by day
	GoalHistory(ctx context.Context, id uuid.UUID) ([]entity.GoalChange, error)
	// Sets IANA timezone name used to derive the user's calendar day
	SetTimezone(ctx context.Context, id uuid.UUID, tz string) error
	// Keeps the lowest rank ever seen on the board
	RecordBestRank(ctx context.Context, id uuid.UUID, board RankBoard, rank int) error
}

type ActivityRepositoryI interface {
	// Adds counts to the (user, date) record, creating it if needed. Returns the merged record
	Add(ctx context.Context, rec *entity.ActivityRecord) (*entity.ActivityRecord, error)
	// Lists every record of the user ordered by date
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.ActivityRecord, error)
	// Lists records of several users starting from the given day
	ListByUsersSince(ctx context.Context, uids []uuid.UUID, from entity.Day) ([]entity.ActivityRecord, error)
	// Lifetime sum of reply counts
	TotalReplies(ctx context.Context, uid uuid.UUID) (int, error)
}

type StreaksRepositoryI interface {
	// Overwrites cached streak state; last writer wins
	Save(ctx context.Context, state *entity.StreakState) error
}

type SpacesRepositoryI interface {
	// Creates space, owner's membership and space_created event in one transaction
	Create(ctx context.Context, space *entity.Space, owner *entity.Membership) error
	// Searches space with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Space, error)
	// Lists public spaces by streak. Requires pagination params provided
	ListPublic(ctx context.Context, limit, offset int) ([]*entity.Space, error)
	// Runs mutate on the row-locked space and stores the returned goals
	UpdateGoals(ctx context.Context, id uuid.UUID, mutate func(space *entity.Space) (entity.GoalSet, error)) (*entity.Space, error)
	// Stores derived team streak
	UpdateStreakCount(ctx context.Context, id uuid.UUID, count int) error
	// Deletes space with its memberships, events and invites
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns the user's membership or nil if the user is in no space
	GetMembership(ctx context.Context, uid uuid.UUID) (*entity.Membership, error)
	// Lists memberships of a space
	ListMembers(ctx context.Context, spaceID uuid.UUID) ([]entity.Membership, error)
	// Inserts membership and member_joined event in one transaction
	Join(ctx context.Context, member *entity.Membership) error
	// Removes membership and writes member_left event at the given time in one transaction
	Leave(ctx context.Context, member *entity.Membership, at time.Time) error
	// Appends an event to the space activity log
	AppendEvent(ctx context.Context, e *entity.SpaceActivityEvent) error
	// Lists newest events first
	ListEvents(ctx context.Context, spaceID uuid.UUID, limit int) ([]entity.SpaceActivityEvent, error)
	// Stores hashed invite code
	CreateInvite(ctx context.Context, inv *entity.SpaceInvite) error
	// Lists invites that have not expired at now
	ListActiveInvites(ctx context.Context, spaceID uuid.UUID, now time.Time) ([]entity.SpaceInvite, error)
}

type BadgesRepositoryI interface {
	// Lists badges the user holds
	ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error)
	// Inserts badges, skipping ones already held. Returns ids actually inserted
	Award(ctx context.Context, uid uuid.UUID, badgeIDs []string, at time.Time) ([]string, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
