package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Ensure(ctx context.Context, id uuid.UUID, handle string) (*entity.Profile, error) {
	goals, err := encodeGoals(entity.DefaultGoals())
	if err != nil {
		return nil, errors.New("encoding default goals error: " + err.Error())
	}
	_, err = pr.conn.Exec(
		ctx,
		`INSERT INTO profiles (id, handle, goals) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING;`,
		id,
		handle,
		goals,
	)
	if err != nil {
		return nil, errors.New("ensuring profile error: " + err.Error())
	}
	return pr.GetByID(ctx, id)
}

func (pr *ProfilesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p := entity.Profile{ID: id}
	var rawGoals []byte
	row := pr.conn.QueryRow(
		ctx,
		`SELECT handle, timezone, goals, best_leaderboard_position, best_space_position, created_at FROM profiles WHERE id = $1;`,
		id,
	)
	err := row.Scan(&p.Handle, &p.Timezone, &rawGoals, &p.BestLeaderboardPosition, &p.BestSpacePosition, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile by id error: " + err.Error())
	}
	p.Goals, err = decodeGoals(rawGoals)
	if err != nil {
		return nil, errors.New("decoding profile goals error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) UpdateGoals(ctx context.Context, id uuid.UUID, effective entity.Day, mutate func(current entity.GoalSet) (entity.GoalSet, error)) (*entity.GoalSet, error) {
	var result entity.GoalSet
	err := withTx(ctx, pr.conn, func(tx pgx.Tx) error {
		var raw []byte
		row := tx.QueryRow(ctx, `SELECT goals FROM profiles WHERE id = $1 FOR UPDATE;`, id)
		if err := row.Scan(&raw); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrProfileNotFound
			}
			return errors.New("locking profile goals error: " + err.Error())
		}
		current, err := decodeGoals(raw)
		if err != nil {
			return errors.New("decoding profile goals error: " + err.Error())
		}
		next, err := mutate(current)
		if err != nil {
			return err
		}
		encoded, err := encodeGoals(next)
		if err != nil {
			return errors.New("encoding goals error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE profiles SET goals = $1 WHERE id = $2;`, encoded, id)
		if err != nil {
			return errors.New("updating profile goals error: " + err.Error())
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO goal_history (user_id, effective_from, goals) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, effective_from) DO UPDATE SET goals = EXCLUDED.goals;`,
			id,
			effective.Time(),
			encoded,
		)
		if err != nil {
			return errors.New("writing goal history error: " + err.Error())
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *ProfilesRepository) GoalHistory(ctx context.Context, id uuid.UUID) ([]entity.GoalChange, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT to_char(effective_from, 'YYYY-MM-DD'), goals FROM goal_history WHERE user_id = $1 ORDER BY effective_from;`,
		id,
	)
	if err != nil {
		return nil, errors.New("getting goal history error: " + err.Error())
	}
	defer rows.Close()
	history := make([]entity.GoalChange, 0)
	for rows.Next() {
		var day string
		var raw []byte
		if err = rows.Scan(&day, &raw); err != nil {
			return nil, errors.New("goal history row parsing error: " + err.Error())
		}
		goals, err := decodeGoals(raw)
		if err != nil {
			return nil, errors.New("decoding goal history error: " + err.Error())
		}
		history = append(history, entity.GoalChange{UserID: id, EffectiveFrom: entity.Day(day), Goals: goals})
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected goal history rows error: " + err.Error())
	}
	return history, nil
}

func (pr *ProfilesRepository) SetTimezone(ctx context.Context, id uuid.UUID, tz string) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET timezone = $1 WHERE id = $2;`, tz, id)
	if err != nil {
		return errors.New("updating timezone error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (pr *ProfilesRepository) RecordBestRank(ctx context.Context, id uuid.UUID, board RankBoard, rank int) error {
	var query string
	switch board {
	case BoardGlobal:
		query = `UPDATE profiles SET best_leaderboard_position = LEAST(COALESCE(best_leaderboard_position, $1), $1) WHERE id = $2;`
	case BoardSpace:
		query = `UPDATE profiles SET best_space_position = LEAST(COALESCE(best_space_position, $1), $1) WHERE id = $2;`
	default:
		return errors.New("unknown rank board: " + string(board))
	}
	ct, err := pr.conn.Exec(ctx, query, rank, id)
	if err != nil {
		return errors.New("recording best rank error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
