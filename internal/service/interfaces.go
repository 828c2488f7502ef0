package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type PaginationOpts struct {
	Limit  int `validate:"min=1,max=100"`
	Offset int `validate:"min=0"`
}

type SetGoalsRequest struct {
	Reply        int `validate:"min=0,max=1000"`
	Tweet        int `validate:"min=0,max=1000"`
	DM           int `validate:"min=0,max=1000"`
	DurationDays int `validate:"min=0,max=365"`
}

type TimezoneRequest struct {
	Timezone string `validate:"required,timezone"`
}

type CreateSpaceRequest struct {
	Name       string            `validate:"required,min=3,max=64"`
	Visibility entity.Visibility `validate:"required,oneof=public private"`
	Reply      int               `validate:"min=0,max=1000"`
	Tweet      int               `validate:"min=0,max=1000"`
	DM         int               `validate:"min=0,max=1000"`
	LockDays   int               `validate:"min=0,max=365"`
}

type JoinSpaceRequest struct {
	InviteCode string `validate:"omitempty,numeric,min=12,max=14"`
}

type RecordActivityRequest struct {
	// Date defaults to the user's current day
	Date    string `validate:"omitempty,calendar_day"`
	Tweets  int    `validate:"min=0,max=100000"`
	Replies int    `validate:"min=0,max=100000"`
	DMs     int    `validate:"min=0,max=100000"`
}

type RankRequest struct {
	Board repository.RankBoard `validate:"required,oneof=global space"`
	Rank  int                  `validate:"required,min=1"`
}

// ResolvedGoals is the goal set in effect for a user together with where it came from.
type ResolvedGoals struct {
	Personal  entity.GoalSet `json:"personal"`
	Effective entity.GoalSet `json:"effective"`
	Source    GoalSource     `json:"source"`
	Space     *entity.Space  `json:"space,omitempty"`
}

type GoalSource string

const (
	SourcePersonal GoalSource = "personal"
	SourceSpace    GoalSource = "space"
)

type StreakView struct {
	Today   entity.Day         `json:"today"`
	Current int                `json:"current_streak"`
	Longest int                `json:"longest_streak"`
	Goals   entity.GoalSet     `json:"goals"`
	PerDay  []engine.DayStatus `json:"per_day"`
}

type SpaceView struct {
	Space   *entity.Space       `json:"space"`
	Members []entity.Membership `json:"members"`
}

// InviteCode holds the plain code. It is shown once and only its hash is stored.
type InviteCode struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SyncResult struct {
	Record    *entity.ActivityRecord   `json:"record"`
	Streak    *entity.StreakState      `json:"streak,omitempty"`
	NewBadges []entity.BadgeDefinition `json:"new_badges"`
}

type ProfileServiceI interface {
	// Creates profile with default goals on first sight. Returns stored profile
	Ensure(ctx context.Context, uid uuid.UUID, handle string) (*entity.Profile, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	SetTimezone(ctx context.Context, uid uuid.UUID, req *TimezoneRequest) error
}

type GoalServiceI interface {
	// Returns personal and effective goals. A vanished Space falls back to personal goals
	Resolve(ctx context.Context, uid uuid.UUID) (*ResolvedGoals, error)
	// Replaces personal goals unless they are locked. Starts a new commitment window
	SetGoals(ctx context.Context, uid uuid.UUID, req *SetGoalsRequest) (*entity.GoalSet, error)
	History(ctx context.Context, uid uuid.UUID) ([]entity.GoalChange, error)
}

type StreakServiceI interface {
	// Computes streaks from the activity log. Read only
	Compute(ctx context.Context, uid uuid.UUID) (*StreakView, error)
	// Computes and stores streak state
	Recompute(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error)
}

type BadgeServiceI interface {
	// Scores every catalogue badge against current metrics. Read only
	Evaluate(ctx context.Context, uid uuid.UUID) ([]engine.BadgeProgress, error)
	// Records badges that newly qualify. Returns only badges inserted by this call,
	// including the ones inserted before a store error
	AwardNew(ctx context.Context, uid uuid.UUID) ([]entity.BadgeDefinition, error)
	ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error)
	// Keeps the best rank ever reached on a board
	RecordRank(ctx context.Context, uid uuid.UUID, req *RankRequest) error
}

type SpaceServiceI interface {
	// Creates space with the caller as owner and first member
	Create(ctx context.Context, uid uuid.UUID, req *CreateSpaceRequest) (*entity.Space, error)
	Get(ctx context.Context, spaceID uuid.UUID) (*SpaceView, error)
	ListPublic(ctx context.Context, pagination PaginationOpts) ([]*entity.Space, error)
	Join(ctx context.Context, uid, spaceID uuid.UUID, req *JoinSpaceRequest) (*entity.Membership, error)
	Quit(ctx context.Context, uid, spaceID uuid.UUID) error
	// Owner only
	Delete(ctx context.Context, uid, spaceID uuid.UUID) error
	// Owner only, under the space's commitment lock
	UpdateGoals(ctx context.Context, uid, spaceID uuid.UUID, req *SetGoalsRequest) (*entity.Space, error)
	CreateInvite(ctx context.Context, uid, spaceID uuid.UUID) (*InviteCode, error)
	// Newest events first
	Feed(ctx context.Context, spaceID uuid.UUID, limit int) ([]entity.SpaceActivityEvent, error)
	// Recomputes and stores the team streak
	RefreshTeamStreak(ctx context.Context, spaceID uuid.UUID) (int, error)
}

type ActivityServiceI interface {
	// Adds daily counts, then refreshes derived state best-effort
	Record(ctx context.Context, uid uuid.UUID, req *RecordActivityRequest) (*SyncResult, error)
}

type SyncServiceI interface {
	// Current session, goals and space as sent to the extension
	Snapshot(ctx context.Context, uid uuid.UUID) (*extsync.Message, error)
	Subscribe(uid uuid.UUID) (<-chan extsync.Message, func())
	MarkReady(uid uuid.UUID)
	AwaitReady(ctx context.Context, uid uuid.UUID) extsync.HandshakeState
}

// Publisher pushes the latest sync message to a user's connected extensions.
type Publisher interface {
	Publish(ctx context.Context, uid uuid.UUID)
}
