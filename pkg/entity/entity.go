package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default personal goals for a freshly created profile.
const (
	DefaultReplyGoal = 5
	DefaultTweetGoal = 1
	DefaultDMGoal    = 1
)

type Profile struct {
	ID                      uuid.UUID `json:"id"`
	Handle                  string    `json:"handle"`
	Timezone                string    `json:"timezone"`
	Goals                   GoalSet   `json:"goals"`
	BestLeaderboardPosition *int      `json:"best_leaderboard_position,omitempty"`
	BestSpacePosition       *int      `json:"best_space_position,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

// GoalSet is a daily target per component. A zero component is disabled and always satisfied.
type GoalSet struct {
	Reply int `json:"reply"`
	Tweet int `json:"tweet"`
	DM    int `json:"dm"`
	// LockDuration is the commitment window in days chosen with these goals.
	LockDuration int        `json:"lock_duration,omitempty"`
	LockUntil    *time.Time `json:"lock_until,omitempty"`
}

func DefaultGoals() GoalSet {
	return GoalSet{Reply: DefaultReplyGoal, Tweet: DefaultTweetGoal, DM: DefaultDMGoal}
}

// Degenerate reports whether every component is disabled.
func (g GoalSet) Degenerate() bool {
	return g.Reply <= 0 && g.Tweet <= 0 && g.DM <= 0
}

// Targets strips the lock metadata.
func (g GoalSet) Targets() GoalSet {
	return GoalSet{Reply: g.Reply, Tweet: g.Tweet, DM: g.DM}
}

// GoalChange is one entry of a user's personal goal history.
type GoalChange struct {
	UserID        uuid.UUID `json:"uid"`
	EffectiveFrom Day       `json:"effective_from"`
	Goals         GoalSet   `json:"goals"`
}

type ActivityCounts struct {
	Tweets  int `json:"tweets"`
	Replies int `json:"replies"`
	DMs     int `json:"dms"`
}

type ActivityRecord struct {
	UserID uuid.UUID `json:"uid"`
	Date   Day       `json:"date"`
	ActivityCounts
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Space struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Visibility  Visibility `json:"visibility"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Goals       GoalSet    `json:"goals"`
	StreakCount int        `json:"streak_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Membership struct {
	SpaceID  uuid.UUID `json:"space_id"`
	UserID   uuid.UUID `json:"uid"`
	JoinedAt time.Time `json:"joined_at"`
	// LockUntil is fixed at join time from the Space's lock duration.
	LockUntil *time.Time `json:"lock_until,omitempty"`
}

type StreakState struct {
	UserID        uuid.UUID `json:"uid"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BadgeCategory string

const (
	BadgeStreak      BadgeCategory = "streak"
	BadgeConsistency BadgeCategory = "consistency"
	BadgeLeaderboard BadgeCategory = "leaderboard"
	BadgeSpace       BadgeCategory = "space"
	BadgeReplies     BadgeCategory = "replies"
)

type BadgeDefinition struct {
	ID          string        `json:"id" yaml:"id"`
	Category    BadgeCategory `json:"category" yaml:"category"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	IconPath    string        `json:"icon_path" yaml:"icon"`
	Threshold   int           `json:"threshold" yaml:"threshold"`
}

type EarnedBadge struct {
	UserID   uuid.UUID `json:"uid"`
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}

type SpaceEventType string

const (
	EventMemberJoined SpaceEventType = "member_joined"
	EventMemberLeft   SpaceEventType = "member_left"
	EventBadgeEarned  SpaceEventType = "badge_earned"
	EventSpaceCreated SpaceEventType = "space_created"
)

type SpaceActivityEvent struct {
	ID        int64          `json:"id"`
	SpaceID   uuid.UUID      `json:"space_id"`
	UserID    uuid.UUID      `json:"uid"`
	EventType SpaceEventType `json:"event_type"`
	EventData map[string]any `json:"event_data"`
	CreatedAt time.Time      `json:"created_at"`
}

type SpaceInvite struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"space_id"`
	CodeHash  string    `json:"-"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
