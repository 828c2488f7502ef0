package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/pkg/httputil"
)

const (
	syncEvent         = "sync"
	keepAliveEvent    = "ping"
	keepAliveInterval = 30 * time.Second
)

func (s *Server) GetSyncSnapshot(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "sync snapshot")
	if !ok {
		return
	}
	ctx, cancel := s.timeout(r)
	defer cancel()
	msg, err := s.syncService.Snapshot(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "sync snapshot", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, msg)
}

// SyncStream sends the current snapshot, then every newer one, as server-sent events.
func (s *Server) SyncStream(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, "sync stream")
	if !ok {
		return
	}
	if _, ok := w.(http.Flusher); !ok {
		logger.Error("sync stream error: streaming unsupported")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}
	// subscribe first so nothing published after the snapshot is missed
	msgs, unsubscribe := s.syncService.Subscribe(uid)
	defer unsubscribe()
	ctx, cancel := s.timeout(r)
	first, err := s.syncService.Snapshot(ctx, uid)
	cancel()
	if err != nil {
		writeServiceError(w, logger, "sync stream", err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err = httputil.WriteEvent(w, syncEvent, first); err != nil {
		logger.Warn("sync stream closed", slog.String("error", err.Error()))
		return
	}
	logger.Info("sync stream opened")

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			logger.Info("sync stream closed by client")
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			err = httputil.WriteEvent(w, syncEvent, msg)
		case <-ticker.C:
			err = httputil.WriteEvent(w, keepAliveEvent, map[string]any{})
		}
		if err != nil {
			logger.Warn("sync stream closed", slog.String("error", err.Error()))
			return
		}
	}
}

// SyncReady is the extension's one-shot presence announcement.
func (s *Server) SyncReady(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "sync ready")
	if !ok {
		return
	}
	s.syncService.MarkReady(uid)
	w.WriteHeader(http.StatusNoContent)
}

// SyncHandshake waits for the extension and reports ready or timeout.
func (s *Server) SyncHandshake(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "sync handshake")
	if !ok {
		return
	}
	state := s.syncService.AwaitReady(r.Context(), uid)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]extsync.HandshakeState{"state": state})
}
