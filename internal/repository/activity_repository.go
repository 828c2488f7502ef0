package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/pkg/entity"
)

// ActivityRepository is the ActivityStore: per-user, per-calendar-day counters.
type ActivityRepository struct {
	conn PgConnection
}

func NewActivityRepo(conn PgConnection) *ActivityRepository {
	mustPing(conn, "activityRepo")
	return &ActivityRepository{
		conn: conn,
	}
}

func (ar *ActivityRepository) Add(ctx context.Context, rec *entity.ActivityRecord) (*entity.ActivityRecord, error) {
	if rec == nil {
		return nil, errors.New("activity record is nil")
	}
	date := rec.Date.Time()
	if date.IsZero() {
		return nil, errorvalues.ErrInvalidDay
	}
	merged := entity.ActivityRecord{UserID: rec.UserID, Date: rec.Date}
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO activities (user_id, date, tweet_count, reply_count, dm_count) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET
			tweet_count = activities.tweet_count + EXCLUDED.tweet_count,
			reply_count = activities.reply_count + EXCLUDED.reply_count,
			dm_count = activities.dm_count + EXCLUDED.dm_count,
			updated_at = NOW()
		RETURNING tweet_count, reply_count, dm_count;`,
		rec.UserID,
		date,
		rec.Tweets,
		rec.Replies,
		rec.DMs,
	)
	err := row.Scan(&merged.Tweets, &merged.Replies, &merged.DMs)
	if err != nil {
		if pgCode(err) == codeFKViolation {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("adding activity error: " + err.Error())
	}
	return &merged, nil
}

func (ar *ActivityRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.ActivityRecord, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT user_id, to_char(date, 'YYYY-MM-DD'), tweet_count, reply_count, dm_count FROM activities WHERE user_id = $1 ORDER BY date;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing activity error: " + err.Error())
	}
	return scanActivities(rows)
}

func (ar *ActivityRepository) ListByUsersSince(ctx context.Context, uids []uuid.UUID, from entity.Day) ([]entity.ActivityRecord, error) {
	if len(uids) == 0 {
		return []entity.ActivityRecord{}, nil
	}
	rows, err := ar.conn.Query(
		ctx,
		`SELECT user_id, to_char(date, 'YYYY-MM-DD'), tweet_count, reply_count, dm_count FROM activities
		WHERE user_id = ANY($1) AND date >= $2 ORDER BY user_id, date;`,
		uids,
		from.Time(),
	)
	if err != nil {
		return nil, errors.New("listing members activity error: " + err.Error())
	}
	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]entity.ActivityRecord, error) {
	defer rows.Close()
	result := make([]entity.ActivityRecord, 0)
	for rows.Next() {
		var rec entity.ActivityRecord
		var day string
		err := rows.Scan(&rec.UserID, &day, &rec.Tweets, &rec.Replies, &rec.DMs)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		rec.Date = entity.Day(day)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected activity rows error: " + err.Error())
	}
	return result, nil
}

func (ar *ActivityRepository) TotalReplies(ctx context.Context, uid uuid.UUID) (int, error) {
	var total int
	row := ar.conn.QueryRow(ctx, `SELECT COALESCE(SUM(reply_count), 0) FROM activities WHERE user_id = $1;`, uid)
	if err := row.Scan(&total); err != nil {
		return 0, errors.New("summing replies error: " + err.Error())
	}
	return total, nil
}
