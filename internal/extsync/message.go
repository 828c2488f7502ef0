// Package extsync keeps browser extensions in step with the authoritative goal state.
// Messages are full snapshots, so any of them can be re-sent or dropped in favour of a newer one.
package extsync

import (
	"time"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/pkg/entity"
)

// MessageType is the type tag the extension listens for.
const MessageType = "STAYONX_SESSION_SYNC"

type Message struct {
	Type     string    `json:"type"`
	Session  Session   `json:"session"`
	Goals    Goals     `json:"goals"`
	Space    *Space    `json:"space"`
	IssuedAt time.Time `json:"issued_at"`
}

type Session struct {
	UserID   uuid.UUID `json:"uid"`
	Handle   string    `json:"handle"`
	Timezone string    `json:"timezone"`
}

type Goals struct {
	Reply int `json:"reply"`
	Tweet int `json:"tweet"`
	DM    int `json:"dm"`
}

type Space struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	LockUntil *time.Time `json:"lock_until,omitempty"`
}

// NewMessage builds a snapshot. space and membership may be nil.
func NewMessage(p *entity.Profile, goals entity.GoalSet, space *entity.Space, m *entity.Membership, at time.Time) Message {
	msg := Message{
		Type: MessageType,
		Session: Session{
			UserID:   p.ID,
			Handle:   p.Handle,
			Timezone: p.Timezone,
		},
		Goals:    Goals{Reply: goals.Reply, Tweet: goals.Tweet, DM: goals.DM},
		IssuedAt: at,
	}
	if space != nil {
		msg.Space = &Space{ID: space.ID, Name: space.Name}
		if m != nil {
			msg.Space.LockUntil = m.LockUntil
		}
	}
	return msg
}
