package api

import (
	"log/slog"
	"net/http"

	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/httputil"
)

type CreateSpaceRequest struct {
	Name       string            `json:"name"`
	Visibility entity.Visibility `json:"visibility"`
	Reply      int               `json:"reply"`
	Tweet      int               `json:"tweet"`
	DM         int               `json:"dm"`
	LockDays   int               `json:"lock_days"`
}

type JoinSpaceRequest struct {
	InviteCode string `json:"invite_code"`
}

type ListSpacesResponse struct {
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Spaces []*entity.Space `json:"spaces"`
}

func (s *Server) ListSpaces(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	spaces, err := s.spaceService.ListPublic(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "list spaces", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListSpacesResponse{Page: page, Limit: limit, Spaces: spaces})
}

func (s *Server) CreateSpace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "create space")
	if !ok {
		return
	}
	var req CreateSpaceRequest
	if !decodeBody(w, r, &req, "create space") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	space, err := s.spaceService.Create(ctx, uid, &service.CreateSpaceRequest{
		Name:       req.Name,
		Visibility: req.Visibility,
		Reply:      req.Reply,
		Tweet:      req.Tweet,
		DM:         req.DM,
		LockDays:   req.LockDays,
	})
	if err != nil {
		writeServiceError(w, logger, "create space", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, space)
	logger.Info("space created", slog.String("space_id", space.ID.String()))
}

func (s *Server) GetSpace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, "get space")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	view, err := s.spaceService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get space", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "space deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "space deletion")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	if err := s.spaceService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "space deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("space deleted", slog.String("space_id", id.String()))
}

func (s *Server) UpdateSpaceGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "update space goals")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "update space goals")
	if !ok {
		return
	}
	var req SetGoalsRequest
	if !decodeBody(w, r, &req, "update space goals") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	space, err := s.spaceService.UpdateGoals(ctx, uid, id, &service.SetGoalsRequest{
		Reply:        req.Reply,
		Tweet:        req.Tweet,
		DM:           req.DM,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		writeServiceError(w, logger, "update space goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, space)
}

func (s *Server) JoinSpace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "join space")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "join space")
	if !ok {
		return
	}
	var req JoinSpaceRequest
	if !decodeBody(w, r, &req, "join space") {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	m, err := s.spaceService.Join(ctx, uid, id, &service.JoinSpaceRequest{InviteCode: req.InviteCode})
	if err != nil {
		writeServiceError(w, logger, "join space", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, m)
	logger.Info("joined space", slog.String("space_id", id.String()))
}

func (s *Server) QuitSpace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "quit space")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "quit space")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	if err := s.spaceService.Quit(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "quit space", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("left space", slog.String("space_id", id.String()))
}

func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "create invite")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "create invite")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	inv, err := s.spaceService.CreateInvite(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "create invite", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, inv)
}

func (s *Server) GetSpaceFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, "get space feed")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	events, err := s.spaceService.Feed(ctx, id, queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, logger, "get space feed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
}
