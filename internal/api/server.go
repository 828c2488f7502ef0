package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/munier-ie/stayonx/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx              *chi.Mux
	profileService  service.ProfileServiceI
	goalService     service.GoalServiceI
	streakService   service.StreakServiceI
	badgeService    service.BadgeServiceI
	spaceService    service.SpaceServiceI
	activityService service.ActivityServiceI
	syncService     service.SyncServiceI
	jwtService      JWTServiceI
	requestTimeout  time.Duration
}

type ServicesList struct {
	ProfileService  service.ProfileServiceI
	GoalService     service.GoalServiceI
	StreakService   service.StreakServiceI
	BadgeService    service.BadgeServiceI
	SpaceService    service.SpaceServiceI
	ActivityService service.ActivityServiceI
	SyncService     service.SyncServiceI
	JwtService      JWTServiceI
	// RequestTimeout bounds service calls of a single request. Streams are not bounded.
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		profileService:  servicesOptions.ProfileService,
		goalService:     servicesOptions.GoalService,
		streakService:   servicesOptions.StreakService,
		badgeService:    servicesOptions.BadgeService,
		spaceService:    servicesOptions.SpaceService,
		activityService: servicesOptions.ActivityService,
		syncService:     servicesOptions.SyncService,
		jwtService:      servicesOptions.JwtService,
		requestTimeout:  servicesOptions.RequestTimeout,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/me", s.GetProfile)
		r.Put("/me/timezone", s.SetTimezone)
		r.Get("/me/goals", s.GetGoals)
		r.Put("/me/goals", s.SetGoals)
		r.Get("/me/goals/history", s.GetGoalHistory)
		r.Get("/me/streak", s.GetStreak)
		r.Get("/me/badges", s.GetBadges)
		r.Post("/me/badges/award", s.AwardBadges)

		r.Post("/activity", s.RecordActivity)

		r.Get("/spaces", s.ListSpaces)
		r.Post("/spaces", s.CreateSpace)
		r.Get("/spaces/{id}", s.GetSpace)
		r.Delete("/spaces/{id}", s.DeleteSpace)
		r.Put("/spaces/{id}/goals", s.UpdateSpaceGoals)
		r.Post("/spaces/{id}/join", s.JoinSpace)
		r.Post("/spaces/{id}/quit", s.QuitSpace)
		r.Post("/spaces/{id}/invites", s.CreateInvite)
		r.Get("/spaces/{id}/activity", s.GetSpaceFeed)

		r.Get("/sync", s.GetSyncSnapshot)
		r.Get("/sync/stream", s.SyncStream)
		r.Post("/sync/ready", s.SyncReady)
		r.Get("/sync/handshake", s.SyncHandshake)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
