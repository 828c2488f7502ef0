package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(conn PgConnection) *BadgesRepository {
	mustPing(conn, "badgesRepo")
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error) {
	rows, err := br.conn.Query(
		ctx,
		`SELECT badge_id, earned_at FROM earned_badges WHERE user_id = $1 ORDER BY earned_at;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing earned badges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.EarnedBadge, 0)
	for rows.Next() {
		b := entity.EarnedBadge{UserID: uid}
		if err = rows.Scan(&b.BadgeID, &b.EarnedAt); err != nil {
			return nil, errors.New("earned badge row parsing error: " + err.Error())
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected earned badge rows error: " + err.Error())
	}
	return result, nil
}

// Award relies on the (user_id, badge_id) primary key: a concurrent duplicate insert
// affects no rows and is left out of the result.
func (br *BadgesRepository) Award(ctx context.Context, uid uuid.UUID, badgeIDs []string, at time.Time) ([]string, error) {
	inserted := make([]string, 0, len(badgeIDs))
	for _, id := range badgeIDs {
		ct, err := br.conn.Exec(
			ctx,
			`INSERT INTO earned_badges (user_id, badge_id, earned_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, badge_id) DO NOTHING;`,
			uid,
			id,
			at,
		)
		if err != nil {
			return inserted, errors.New("awarding badge error: " + err.Error())
		}
		if ct.RowsAffected() == 1 {
			inserted = append(inserted, id)
		}
	}
	return inserted, nil
}
