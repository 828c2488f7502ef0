package service

import (
	"context"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/internal/repository"
	"github.com/munier-ie/stayonx/pkg/logctx"
)

type SyncService struct {
	profiles   repository.ProfilesRepositoryI
	spaces     repository.SpacesRepositoryI
	hub        *extsync.Hub
	handshakes *extsync.Handshakes
	opts       options
}

func NewSyncService(
	profilesRepo repository.ProfilesRepositoryI,
	spacesRepo repository.SpacesRepositoryI,
	hub *extsync.Hub,
	handshakes *extsync.Handshakes,
	opts ...Option,
) *SyncService {
	if profilesRepo == nil || spacesRepo == nil {
		log.Fatal("provided nil repository to sync service")
	}
	if hub == nil || handshakes == nil {
		log.Fatal("provided nil hub or handshakes to sync service")
	}
	return &SyncService{
		profiles:   profilesRepo,
		spaces:     spacesRepo,
		hub:        hub,
		handshakes: handshakes,
		opts:       buildOptions(opts),
	}
}

func (ss *SyncService) Snapshot(ctx context.Context, uid uuid.UUID) (*extsync.Message, error) {
	uc, err := loadUserContext(ctx, ss.profiles, ss.spaces, uid)
	if err != nil {
		return nil, err
	}
	msg := extsync.NewMessage(uc.profile, uc.effectiveGoals(), uc.space, uc.membership, ss.opts.now())
	return &msg, nil
}

// Publish sends a fresh snapshot to the user's open streams. A failed snapshot is logged;
// the extension picks up the state on its next request.
func (ss *SyncService) Publish(ctx context.Context, uid uuid.UUID) {
	if ss.hub.Subscribers(uid) == 0 {
		return
	}
	msg, err := ss.Snapshot(ctx, uid)
	if err != nil {
		logctx.From(ctx).Warn("sync snapshot not published",
			slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return
	}
	ss.hub.Publish(uid, *msg)
}

func (ss *SyncService) Subscribe(uid uuid.UUID) (<-chan extsync.Message, func()) {
	return ss.hub.Subscribe(uid)
}

func (ss *SyncService) MarkReady(uid uuid.UUID) {
	ss.handshakes.Ready(uid)
}

// AwaitReady consumes the handshake: a later wait starts a new one.
func (ss *SyncService) AwaitReady(ctx context.Context, uid uuid.UUID) extsync.HandshakeState {
	return ss.handshakes.Await(ctx, uid)
}
