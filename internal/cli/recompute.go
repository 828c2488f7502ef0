package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type RecomputeOptions struct {
	*RootOptions
	User string
}

func NewRecomputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecomputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute streaks and badges for a user",
		Long: `Recompute the stored personal streak, the team streak of the user's Space
and award any badges that newly qualify.

Examples:
  stayonxctl recompute --user 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(opts.User)
			if err != nil {
				return errors.New("invalid --user: " + err.Error())
			}
			eng := connect(opts.RootOptions)
			defer closeAll()
			return runRecompute(cmd.Context(), cmd, eng, uid)
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "user id (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runRecompute(ctx context.Context, cmd *cobra.Command, eng *engine, uid uuid.UUID) error {
	state, err := eng.streaks.Recompute(ctx, uid)
	if err != nil {
		return errors.New("recomputing streak error: " + err.Error())
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "streak: current=%d longest=%d\n", state.CurrentStreak, state.LongestStreak)

	m, err := eng.spacesRepo.GetMembership(ctx, uid)
	switch {
	case err != nil:
		return errors.New("loading membership error: " + err.Error())
	case m != nil:
		team, err := eng.spaces.RefreshTeamStreak(ctx, m.SpaceID)
		if err != nil {
			return errors.New("refreshing team streak error: " + err.Error())
		}
		fmt.Fprintf(out, "team streak: space=%s count=%d\n", m.SpaceID, team)
	}

	awarded, err := eng.badges.AwardNew(ctx, uid)
	if err != nil {
		return errors.New("awarding badges error: " + err.Error())
	}
	for _, b := range awarded {
		fmt.Fprintf(out, "badge awarded: %s\n", b.ID)
	}
	slog.Debug("recompute finished", slog.String("uid", uid.String()), slog.Int("awarded", len(awarded)))
	return nil
}
