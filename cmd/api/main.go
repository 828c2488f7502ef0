// @title StayOnX API
// @description Consistency engine behind the StayOnX extension: goals, streaks, badges and Spaces
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/munier-ie/stayonx/internal/api"
	"github.com/munier-ie/stayonx/internal/badges"
	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/cleanup"
	"github.com/munier-ie/stayonx/pkg/config"
	jwtservice "github.com/munier-ie/stayonx/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if err := cfg.RequireSecret(); err != nil {
		log.Fatal("config error: " + err.Error())
	}

	pool := repository.Connect(&repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	})
	profilesRepo := repository.NewProfilesRepo(pool)
	activityRepo := repository.NewActivityRepo(pool)
	spacesRepo := repository.NewSpacesRepo(pool)
	streaksRepo := repository.NewStreaksRepo(pool)
	badgesRepo := repository.NewBadgesRepo(pool)

	hub := extsync.NewHub()
	cleanup.Register(&cleanup.Job{Name: "closing sync hub", F: hub.Close})

	syncService := service.NewSyncService(profilesRepo, spacesRepo, hub, extsync.NewHandshakes(cfg.HandshakeTimeout))
	streakService := service.NewStreakService(profilesRepo, spacesRepo, activityRepo, streaksRepo)
	badgeService := service.NewBadgeService(badges.Default(), streakService, profilesRepo, activityRepo, spacesRepo, badgesRepo)
	spaceService := service.NewSpaceService(spacesRepo, profilesRepo, activityRepo, syncService)

	serv := api.New(&api.ServicesList{
		ProfileService:  service.NewProfileService(profilesRepo, syncService),
		GoalService:     service.NewGoalService(profilesRepo, spacesRepo, syncService),
		StreakService:   streakService,
		BadgeService:    badgeService,
		SpaceService:    spaceService,
		ActivityService: service.NewActivityService(profilesRepo, spacesRepo, activityRepo, streakService, spaceService, badgeService),
		SyncService:     syncService,
		JwtService:      jwtservice.New(cfg.JWTSecret),
		RequestTimeout:  cfg.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup error", slog.String("error", err.Error()))
	}
}
