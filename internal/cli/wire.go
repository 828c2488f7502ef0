package cli

import (
	"log/slog"

	"github.com/munier-ie/stayonx/internal/badges"
	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/cleanup"
)

type engine struct {
	spacesRepo repository.SpacesRepositoryI
	streaks    service.StreakServiceI
	spaces     service.SpaceServiceI
	badges     service.BadgeServiceI
}

// connect wires the services a one-shot command needs. Nobody subscribes to the hub,
// so sync publishes are skipped.
func connect(opts *RootOptions) *engine {
	cfg := opts.Config()
	pool := repository.Connect(pgConfig(opts))
	profilesRepo := repository.NewProfilesRepo(pool)
	activityRepo := repository.NewActivityRepo(pool)
	spacesRepo := repository.NewSpacesRepo(pool)

	syncService := service.NewSyncService(profilesRepo, spacesRepo, extsync.NewHub(), extsync.NewHandshakes(cfg.HandshakeTimeout))
	streaks := service.NewStreakService(profilesRepo, spacesRepo, activityRepo, repository.NewStreaksRepo(pool))
	return &engine{
		spacesRepo: spacesRepo,
		streaks:    streaks,
		spaces:     service.NewSpaceService(spacesRepo, profilesRepo, activityRepo, syncService),
		badges:     service.NewBadgeService(badges.Default(), streaks, profilesRepo, activityRepo, spacesRepo, repository.NewBadgesRepo(pool)),
	}
}

func closeAll() {
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup error", slog.String("error", err.Error()))
	}
}
