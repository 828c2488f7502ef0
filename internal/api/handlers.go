package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/engine"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/httputil"
)

type SetGoalsRequest struct {
	Reply        int `json:"reply"`
	Tweet        int `json:"tweet"`
	DM           int `json:"dm"`
	DurationDays int `json:"duration_days"`
}

type TimezoneRequest struct {
	Timezone string `json:"timezone"`
}

type RecordActivityRequest struct {
	Date    string `json:"date"`
	Tweets  int    `json:"tweets"`
	Replies int    `json:"replies"`
	DMs     int    `json:"dms"`
}

type BadgesResponse struct {
	Earned   []entity.EarnedBadge   `json:"earned"`
	Progress []engine.BadgeProgress `json:"progress"`
}

type AwardResponse struct {
	Awarded []entity.BadgeDefinition `json:"awarded"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "get profile")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	p, err := s.profileService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
}

func (s *Server) SetTimezone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "set timezone")
	if !ok {
		return
	}
	var req TimezoneRequest
	if !decodeBody(w, r, &req, "set timezone") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	err := s.profileService.SetTimezone(ctx, uid, &service.TimezoneRequest{Timezone: req.Timezone})
	if err != nil {
		writeServiceError(w, logger, "set timezone", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("timezone updated", slog.String("timezone", req.Timezone))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "get goals")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	goals, err := s.goalService.Resolve(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

func (s *Server) SetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "set goals")
	if !ok {
		return
	}
	var req SetGoalsRequest
	if !decodeBody(w, r, &req, "set goals") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	goals, err := s.goalService.SetGoals(ctx, uid, &service.SetGoalsRequest{
		Reply:        req.Reply,
		Tweet:        req.Tweet,
		DM:           req.DM,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		writeServiceError(w, logger, "set goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
	logger.Info("goals updated")
}

func (s *Server) GetGoalHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "get goal history")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	history, err := s.goalService.History(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get goal history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "get streak")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	view, err := s.streakService.Compute(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "get badges")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	progress, err := s.badgeService.Evaluate(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get badges", err)
		return
	}
	earned, err := s.badgeService.ListEarned(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BadgesResponse{Earned: earned, Progress: progress})
}

func (s *Server) AwardBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "award badges")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	awarded, err := s.badgeService.AwardNew(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "award badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AwardResponse{Awarded: awarded})
	if len(awarded) > 0 {
		logger.Info("badges awarded", slog.Int("count", len(awarded)))
	}
}

func (s *Server) RecordActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "record activity")
	if !ok {
		return
	}
	var req RecordActivityRequest
	if !decodeBody(w, r, &req, "record activity") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	res, err := s.activityService.Record(ctx, uid, &service.RecordActivityRequest{
		Date:    req.Date,
		Tweets:  req.Tweets,
		Replies: req.Replies,
		DMs:     req.DMs,
	})
	if err != nil {
		writeServiceError(w, logger, "record activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) timeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

func (s *Server) requireUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err == nil && len(body) > 0 {
		err = sonic.Unmarshal(body, dst)
	}
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op+" error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid space id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

// writeServiceError maps service outcomes to HTTP. Rejected transitions answer 409 and say
// until when they stay rejected.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var pf *errorvalues.PreconditionFailed
	switch {
	case errors.As(err, &pf):
		logger.Warn(op+" rejected", slog.String("reason", pf.Cause.Error()))
		httputil.WritePreconditionResponse(w, pf.Cause.Error(), nil, pf.Until)
	case errors.Is(err, errorvalues.ErrSpaceNotFound):
		logger.Error(op + " error: unexist space")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "space doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		logger.Error(op + " error: unexist profile")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDay):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
