package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/spf13/cobra"
)

type RecordRankOptions struct {
	*RootOptions
	User  string
	Board string
	Rank  int
}

// NewRecordRankCommand feeds leaderboard ranks computed elsewhere into badge metrics.
func NewRecordRankCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordRankOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record-rank",
		Short: "Record a leaderboard rank for a user",
		Long: `Keep the best rank a user has reached on a leaderboard. Worse ranks are ignored.

Examples:
  stayonxctl record-rank --user 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --board global --rank 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(opts.User)
			if err != nil {
				return errors.New("invalid --user: " + err.Error())
			}
			req := &service.RankRequest{Board: repository.RankBoard(opts.Board), Rank: opts.Rank}
			if err = service.Validate(req); err != nil {
				return err
			}
			eng := connect(opts.RootOptions)
			defer closeAll()
			if err = eng.badges.RecordRank(cmd.Context(), uid, req); err != nil {
				return errors.New("recording rank error: " + err.Error())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rank recorded: board=%s rank=%d\n", req.Board, req.Rank)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "user id (required)")
	cmd.Flags().StringVar(&opts.Board, "board", string(repository.BoardGlobal), "leaderboard (global|space)")
	cmd.Flags().IntVar(&opts.Rank, "rank", 0, "rank reached, 1 is best (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("rank")

	return cmd
}
