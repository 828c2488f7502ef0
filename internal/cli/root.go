// Package cli holds the stayonxctl operator commands.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/config"
	"github.com/spf13/cobra"
)

const defaultEnvFile = "./configs/.env"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
	Verbose bool

	cfg *config.Config
}

// Config is available once the root pre-run has loaded it.
func (o *RootOptions) Config() *config.Config {
	return o.cfg
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stayonxctl",
		Short: "StayOnX operator tool",
		Long:  "Operator commands for the StayOnX consistency engine: migrations, recomputation and tokens.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			service.InitValidator()
			cfg, err := config.Load(opts.EnvFile)
			if err != nil {
				return errors.New("loading config error: " + err.Error())
			}
			opts.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", defaultEnvFile, "dotenv file to load")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewRecomputeCommand(opts))
	cmd.AddCommand(NewRecordRankCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}
