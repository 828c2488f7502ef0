package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtservice "github.com/munier-ie/stayonx/pkg/jwt_service"
	"github.com/spf13/cobra"
)

type TokenOptions struct {
	*RootOptions
	User   string
	Handle string
	TTL    time.Duration
}

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token",
		Long: `Sign a bearer token for the API with JWT_SECRET. Useful for local testing.

Examples:
  stayonxctl token --user 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --handle jack`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(opts.User)
			if err != nil {
				return errors.New("invalid --user: " + err.Error())
			}
			cfg := opts.Config()
			if err = cfg.RequireSecret(); err != nil {
				return err
			}
			token, err := jwtservice.New(cfg.JWTSecret).WithTTL(opts.TTL).GenerateToken(uid, opts.Handle)
			if err != nil {
				return errors.New("signing token error: " + err.Error())
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "user id (required)")
	cmd.Flags().StringVar(&opts.Handle, "handle", "", "X handle carried in the token")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
