package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/pkg/entity"
)

type SpacesRepository struct {
	conn PgConnection
}

func NewSpacesRepo(conn PgConnection) *SpacesRepository {
	mustPing(conn, "spacesRepo")
	return &SpacesRepository{
		conn: conn,
	}
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertEvent(ctx context.Context, db execer, e *entity.SpaceActivityEvent) error {
	data, err := encodeEventData(e.EventData)
	if err != nil {
		return errors.New("encoding event data error: " + err.Error())
	}
	_, err = db.Exec(
		ctx,
		`INSERT INTO space_activity (space_id, user_id, event_type, event_data, created_at) VALUES ($1, $2, $3, $4, $5);`,
		e.SpaceID,
		e.UserID,
		string(e.EventType),
		data,
		e.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeFKViolation {
			return errorvalues.ErrSpaceNotFound
		}
		return errors.New("writing space event error: " + err.Error())
	}
	return nil
}

func insertMembership(ctx context.Context, db execer, m *entity.Membership) error {
	_, err := db.Exec(
		ctx,
		`INSERT INTO members (space_id, user_id, joined_at, lock_until) VALUES ($1, $2, $3, $4);`,
		m.SpaceID,
		m.UserID,
		m.JoinedAt,
		m.LockUntil,
	)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return errorvalues.NewPrecondition(errorvalues.ErrAlreadyMember, nil)
		case codeFKViolation:
			return errorvalues.ErrSpaceNotFound
		}
		return errors.New("creating membership error: " + err.Error())
	}
	return nil
}

func (sr *SpacesRepository) Create(ctx context.Context, space *entity.Space, owner *entity.Membership) error {
	goals, err := encodeGoals(space.Goals)
	if err != nil {
		return errors.New("encoding space goals error: " + err.Error())
	}
	return withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO spaces (id, name, visibility, owner_id, goals, streak_count, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			space.ID,
			space.Name,
			string(space.Visibility),
			space.OwnerID,
			goals,
			space.StreakCount,
			space.CreatedAt,
		)
		if err != nil {
			return errors.New("creating space error: " + err.Error())
		}
		if err = insertMembership(ctx, tx, owner); err != nil {
			return err
		}
		return insertEvent(ctx, tx, &entity.SpaceActivityEvent{
			SpaceID:   space.ID,
			UserID:    space.OwnerID,
			EventType: entity.EventSpaceCreated,
			EventData: map[string]any{"space_name": space.Name},
			CreatedAt: space.CreatedAt,
		})
	})
}

func (sr *SpacesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Space, error) {
	space := entity.Space{ID: id}
	var visibility string
	var goals []byte
	row := sr.conn.QueryRow(
		ctx,
		`SELECT name, visibility, owner_id, goals, streak_count, created_at FROM spaces WHERE id = $1;`,
		id,
	)
	err := row.Scan(&space.Name, &visibility, &space.OwnerID, &goals, &space.StreakCount, &space.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSpaceNotFound
		}
		return nil, errors.New("getting space by id error: " + err.Error())
	}
	space.Visibility = entity.Visibility(visibility)
	space.Goals, err = decodeGoals(goals)
	if err != nil {
		return nil, errors.New("decoding space goals error: " + err.Error())
	}
	return &space, nil
}

func (sr *SpacesRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.Space, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, name, visibility, owner_id, goals, streak_count, created_at FROM spaces
		WHERE visibility = 'public' ORDER BY streak_count DESC, created_at LIMIT $1 OFFSET $2;`,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("listing spaces error: " + err.Error())
	}
	defer rows.Close()
	spaces := make([]*entity.Space, 0)
	for rows.Next() {
		s := entity.Space{}
		var visibility string
		var goals []byte
		err = rows.Scan(&s.ID, &s.Name, &visibility, &s.OwnerID, &goals, &s.StreakCount, &s.CreatedAt)
		if err != nil {
			return nil, errors.New("space row parsing error: " + err.Error())
		}
		s.Visibility = entity.Visibility(visibility)
		if s.Goals, err = decodeGoals(goals); err != nil {
			return nil, errors.New("decoding space goals error: " + err.Error())
		}
		spaces = append(spaces, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected space rows error: " + err.Error())
	}
	return spaces, nil
}

func (sr *SpacesRepository) UpdateGoals(ctx context.Context, id uuid.UUID, mutate func(space *entity.Space) (entity.GoalSet, error)) (*entity.Space, error) {
	var updated *entity.Space
	err := withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		space := entity.Space{ID: id}
		var raw []byte
		row := tx.QueryRow(ctx, `SELECT owner_id, goals FROM spaces WHERE id = $1 FOR UPDATE;`, id)
		if err := row.Scan(&space.OwnerID, &raw); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrSpaceNotFound
			}
			return errors.New("locking space goals error: " + err.Error())
		}
		current, err := decodeGoals(raw)
		if err != nil {
			return errors.New("decoding space goals error: " + err.Error())
		}
		space.Goals = current
		next, err := mutate(&space)
		if err != nil {
			return err
		}
		encoded, err := encodeGoals(next)
		if err != nil {
			return errors.New("encoding space goals error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE spaces SET goals = $1 WHERE id = $2;`, encoded, id)
		if err != nil {
			return errors.New("updating space goals error: " + err.Error())
		}
		space.Goals = next
		updated = &space
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (sr *SpacesRepository) UpdateStreakCount(ctx context.Context, id uuid.UUID, count int) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE spaces SET streak_count = $1 WHERE id = $2;`, count, id)
	if err != nil {
		return errors.New("updating space streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSpaceNotFound
	}
	return nil
}

// Delete leaves members' activity records untouched; they belong to the users.
func (sr *SpacesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		for _, q := range []string{
			`DELETE FROM space_activity WHERE space_id = $1;`,
			`DELETE FROM space_invites WHERE space_id = $1;`,
			`DELETE FROM members WHERE space_id = $1;`,
		} {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return errors.New("deleting space dependents error: " + err.Error())
			}
		}
		ct, err := tx.Exec(ctx, `DELETE FROM spaces WHERE id = $1;`, id)
		if err != nil {
			return errors.New("deleting space error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrSpaceNotFound
		}
		return nil
	})
}

func (sr *SpacesRepository) GetMembership(ctx context.Context, uid uuid.UUID) (*entity.Membership, error) {
	m := entity.Membership{UserID: uid}
	row := sr.conn.QueryRow(ctx, `SELECT space_id, joined_at, lock_until FROM members WHERE user_id = $1;`, uid)
	if err := row.Scan(&m.SpaceID, &m.JoinedAt, &m.LockUntil); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting membership error: " + err.Error())
	}
	return &m, nil
}

func (sr *SpacesRepository) ListMembers(ctx context.Context, spaceID uuid.UUID) ([]entity.Membership, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT user_id, joined_at, lock_until FROM members WHERE space_id = $1 ORDER BY joined_at;`,
		spaceID,
	)
	if err != nil {
		return nil, errors.New("listing members error: " + err.Error())
	}
	defer rows.Close()
	members := make([]entity.Membership, 0)
	for rows.Next() {
		m := entity.Membership{SpaceID: spaceID}
		if err = rows.Scan(&m.UserID, &m.JoinedAt, &m.LockUntil); err != nil {
			return nil, errors.New("member row parsing error: " + err.Error())
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected member rows error: " + err.Error())
	}
	return members, nil
}

// Join depends on the unique index over members.user_id; a concurrent second join fails
// there and rolls back, leaving no event behind.
func (sr *SpacesRepository) Join(ctx context.Context, member *entity.Membership) error {
	return withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		if err := insertMembership(ctx, tx, member); err != nil {
			return err
		}
		return insertEvent(ctx, tx, &entity.SpaceActivityEvent{
			SpaceID:   member.SpaceID,
			UserID:    member.UserID,
			EventType: entity.EventMemberJoined,
			CreatedAt: member.JoinedAt,
		})
	})
}

func (sr *SpacesRepository) Leave(ctx context.Context, member *entity.Membership, at time.Time) error {
	return withTx(ctx, sr.conn, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `DELETE FROM members WHERE space_id = $1 AND user_id = $2;`, member.SpaceID, member.UserID)
		if err != nil {
			return errors.New("deleting membership error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.NewPrecondition(errorvalues.ErrNotMember, nil)
		}
		return insertEvent(ctx, tx, &entity.SpaceActivityEvent{
			SpaceID:   member.SpaceID,
			UserID:    member.UserID,
			EventType: entity.EventMemberLeft,
			CreatedAt: at,
		})
	})
}

func (sr *SpacesRepository) AppendEvent(ctx context.Context, e *entity.SpaceActivityEvent) error {
	return insertEvent(ctx, sr.conn, e)
}

func (sr *SpacesRepository) ListEvents(ctx context.Context, spaceID uuid.UUID, limit int) ([]entity.SpaceActivityEvent, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, event_type, event_data, created_at FROM space_activity
		WHERE space_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2;`,
		spaceID,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing space events error: " + err.Error())
	}
	defer rows.Close()
	events := make([]entity.SpaceActivityEvent, 0)
	for rows.Next() {
		e := entity.SpaceActivityEvent{SpaceID: spaceID}
		var eventType string
		var data []byte
		if err = rows.Scan(&e.ID, &e.UserID, &eventType, &data, &e.CreatedAt); err != nil {
			return nil, errors.New("space event row parsing error: " + err.Error())
		}
		e.EventType = entity.SpaceEventType(eventType)
		if e.EventData, err = decodeEventData(data); err != nil {
			return nil, errors.New("decoding event data error: " + err.Error())
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected space event rows error: " + err.Error())
	}
	return events, nil
}

func (sr *SpacesRepository) CreateInvite(ctx context.Context, inv *entity.SpaceInvite) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO space_invites (id, space_id, code_hash, created_by, created_at, expires_at) VALUES ($1, $2, $3, $4, $5, $6);`,
		inv.ID,
		inv.SpaceID,
		inv.CodeHash,
		inv.CreatedBy,
		inv.CreatedAt,
		inv.ExpiresAt,
	)
	if err != nil {
		if pgCode(err) == codeFKViolation {
			return errorvalues.ErrSpaceNotFound
		}
		return errors.New("creating invite error: " + err.Error())
	}
	return nil
}

func (sr *SpacesRepository) ListActiveInvites(ctx context.Context, spaceID uuid.UUID, now time.Time) ([]entity.SpaceInvite, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, code_hash, created_by, created_at, expires_at FROM space_invites WHERE space_id = $1 AND expires_at > $2;`,
		spaceID,
		now,
	)
	if err != nil {
		return nil, errors.New("listing invites error: " + err.Error())
	}
	defer rows.Close()
	invites := make([]entity.SpaceInvite, 0)
	for rows.Next() {
		inv := entity.SpaceInvite{SpaceID: spaceID}
		if err = rows.Scan(&inv.ID, &inv.CodeHash, &inv.CreatedBy, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
			return nil, errors.New("invite row parsing error: " + err.Error())
		}
		invites = append(invites, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected invite rows error: " + err.Error())
	}
	return invites, nil
}
