package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID       = uuid.New()
	defaultGoals = []byte(`{"reply":5,"tweet":1,"dm":1}`)
	profileCols  = []string{"handle", "timezone", "goals", "best_leaderboard_position", "best_space_position", "created_at"}
)

func intPtr(v int) *int {
	return &v
}

func TestEnsureProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	insertQuery := regexp.QuoteMeta(`INSERT INTO profiles (id, handle, goals) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING;`)
	selectQuery := regexp.QuoteMeta(`SELECT handle, timezone, goals, best_leaderboard_position, best_space_position, created_at FROM profiles WHERE id = $1;`)
	createdAt := time.Now()
	ctx := context.Background()
	t.Run("created with default goals", func(t *testing.T) {
		mock.ExpectExec(insertQuery).
			WithArgs(userID, "tester", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(selectQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(profileCols).
				AddRow("tester", "UTC", defaultGoals, (*int)(nil), (*int)(nil), createdAt))
		p, err := repo.Ensure(ctx, userID, "tester")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultGoals(), p.Goals)
		assert.Equal(t, "UTC", p.Timezone)
		assert.Nil(t, p.BestLeaderboardPosition)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(insertQuery).
			WithArgs(userID, "tester", pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		_, err := repo.Ensure(ctx, userID, "tester")
		assert.EqualError(t, err, "ensuring profile error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	query := regexp.QuoteMeta(`SELECT handle, timezone, goals, best_leaderboard_position, best_space_position, created_at FROM profiles WHERE id = $1;`)
	createdAt := time.Now()
	testCases := []struct {
		Desc            string
		Error           error
		Expected        *entity.Profile
		MockPrepareFunc func()
	}{
		{
			Desc:  "found",
			Error: nil,
			Expected: &entity.Profile{
				ID:                      userID,
				Handle:                  "tester",
				Timezone:                "Europe/Berlin",
				Goals:                   entity.GoalSet{Reply: 10, Tweet: 2},
				BestLeaderboardPosition: intPtr(8),
				CreatedAt:               createdAt,
			},
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(profileCols).
						AddRow("tester", "Europe/Berlin", []byte(`{"reply":10,"tweet":2,"dm":0}`), intPtr(8), (*int)(nil), createdAt))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrProfileNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting profile by id error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			p, err := repo.GetByID(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, p)
		})
	}
}

func TestUpdateProfileGoals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	lockQuery := regexp.QuoteMeta(`SELECT goals FROM profiles WHERE id = $1 FOR UPDATE;`)
	updateQuery := regexp.QuoteMeta(`UPDATE profiles SET goals = $1 WHERE id = $2;`)
	historyQuery := regexp.QuoteMeta(`INSERT INTO goal_history (user_id, effective_from, goals) VALUES ($1, $2, $3)`)
	day := entity.Day("2025-03-20")
	next := entity.GoalSet{Reply: 12, Tweet: 1, DM: 1, LockDuration: 7}
	ctx := context.Background()

	t.Run("stored with history entry", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"goals"}).AddRow(defaultGoals))
		mock.ExpectExec(updateQuery).WithArgs(pgxmock.AnyArg(), userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(historyQuery).WithArgs(userID, day.Time(), pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		var seen entity.GoalSet
		g, err := repo.UpdateGoals(ctx, userID, day, func(current entity.GoalSet) (entity.GoalSet, error) {
			seen = current
			return next, nil
		})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultGoals(), seen)
		assert.Equal(t, next, *g)
	})
	t.Run("mutation rejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"goals"}).AddRow(defaultGoals))
		mock.ExpectRollback()
		_, err := repo.UpdateGoals(ctx, userID, day, func(entity.GoalSet) (entity.GoalSet, error) {
			return entity.GoalSet{}, errorvalues.NewPrecondition(errorvalues.ErrGoalsLocked, nil)
		})
		assert.ErrorIs(t, err, errorvalues.ErrGoalsLocked)
	})
	t.Run("profile not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		_, err := repo.UpdateGoals(ctx, userID, day, func(entity.GoalSet) (entity.GoalSet, error) {
			return next, nil
		})
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("history write fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"goals"}).AddRow(defaultGoals))
		mock.ExpectExec(updateQuery).WithArgs(pgxmock.AnyArg(), userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(historyQuery).WithArgs(userID, day.Time(), pgxmock.AnyArg()).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.UpdateGoals(ctx, userID, day, func(entity.GoalSet) (entity.GoalSet, error) {
			return next, nil
		})
		assert.EqualError(t, err, "writing goal history error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	query := regexp.QuoteMeta(`SELECT to_char(effective_from, 'YYYY-MM-DD'), goals FROM goal_history WHERE user_id = $1 ORDER BY effective_from;`)
	mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(
		pgxmock.NewRows([]string{"effective_from", "goals"}).
			AddRow("2025-03-01", defaultGoals).
			AddRow("2025-03-10", []byte(`{"reply":12,"tweet":1,"dm":1,"lock_duration":7}`)),
	)
	history, err := repo.GoalHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.Day("2025-03-01"), history[0].EffectiveFrom)
	assert.Equal(t, entity.DefaultGoals(), history[0].Goals)
	assert.Equal(t, 12, history[1].Goals.Reply)
	assert.Equal(t, 7, history[1].Goals.LockDuration)
}

func TestRecordBestRank(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	globalQuery := regexp.QuoteMeta(`UPDATE profiles SET best_leaderboard_position = LEAST(COALESCE(best_leaderboard_position, $1), $1) WHERE id = $2;`)
	spaceQuery := regexp.QuoteMeta(`UPDATE profiles SET best_space_position = LEAST(COALESCE(best_space_position, $1), $1) WHERE id = $2;`)
	testCases := []struct {
		Desc            string
		Board           repository.RankBoard
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "global board",
			Board: repository.BoardGlobal,
			MockPrepareFunc: func() {
				mock.ExpectExec(globalQuery).WithArgs(4, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "space board",
			Board: repository.BoardSpace,
			MockPrepareFunc: func() {
				mock.ExpectExec(spaceQuery).WithArgs(4, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:            "unknown board",
			Board:           repository.RankBoard("weekly"),
			Error:           errors.New("unknown rank board: weekly"),
			MockPrepareFunc: func() {},
		},
		{
			Desc:  "profile not found",
			Board: repository.BoardGlobal,
			Error: errorvalues.ErrProfileNotFound,
			MockPrepareFunc: func() {
				mock.ExpectExec(globalQuery).WithArgs(4, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.RecordBestRank(ctx, userID, tc.Board, 4)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
