package cli

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

type MigrateOptions struct {
	*RootOptions
	Dir     string
	SSLMode string
}

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MigrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "migrate [up|down|status|version]",
		Short: "Apply database migrations",
		Long: `Run goose migrations against the configured Postgres database.

Examples:
  stayonxctl migrate
  stayonxctl migrate status
  stayonxctl migrate down --dir ./migrations`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return runMigrate(opts, command)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	cmd.Flags().StringVar(&opts.SSLMode, "sslmode", "disable", "postgres sslmode")

	return cmd
}

func runMigrate(opts *MigrateOptions, command string) error {
	cfg := opts.Config()
	dir := opts.Dir
	if dir == "" {
		dir = cfg.MigrationsDir
	}
	pgCfg := pgConfig(opts.RootOptions)
	conn, err := sql.Open("postgres", pgCfg.ConnString()+"?sslmode="+opts.SSLMode)
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	slog.Info("running migrations", slog.String("command", command), slog.String("dir", dir))
	if err = goose.Run(command, conn, dir); err != nil {
		return errors.New("migration error: " + err.Error())
	}
	return nil
}

func pgConfig(opts *RootOptions) *repository.PGCfg {
	cfg := opts.Config()
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
}
