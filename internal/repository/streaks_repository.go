package repository

import (
	"context"
	"errors"

	"github.com/munier-ie/stayonx/pkg/entity"
)

// StreaksRepository caches derived streak state. It is never the source of truth.
type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Save(ctx context.Context, state *entity.StreakState) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO streaks (user_id, current_streak, longest_streak, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET current_streak = EXCLUDED.current_streak, longest_streak = EXCLUDED.longest_streak, updated_at = EXCLUDED.updated_at;`,
		state.UserID,
		state.CurrentStreak,
		state.LongestStreak,
		state.UpdatedAt,
	)
	if err != nil {
		return errors.New("saving streak error: " + err.Error())
	}
	return nil
}

