package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munier-ie/stayonx/pkg/cleanup"
	"github.com/munier-ie/stayonx/pkg/entity"
)

const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

// Connect opens a shared pool and registers it for cleanup. Fails hard if the database is unreachable.
func Connect(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repo string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repo + ": " + err.Error())
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func withTx(ctx context.Context, conn PgConnection, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

func encodeGoals(g entity.GoalSet) ([]byte, error) {
	return sonic.ConfigDefault.Marshal(g)
}

func decodeGoals(raw []byte) (entity.GoalSet, error) {
	var g entity.GoalSet
	if len(raw) == 0 {
		return g, nil
	}
	err := sonic.ConfigDefault.Unmarshal(raw, &g)
	return g, err
}

func encodeEventData(data map[string]any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	return sonic.ConfigDefault.Marshal(data)
}

func decodeEventData(raw []byte) (map[string]any, error) {
	data := map[string]any{}
	if len(raw) == 0 {
		return data, nil
	}
	err := sonic.ConfigDefault.Unmarshal(raw, &data)
	return data, err
}
