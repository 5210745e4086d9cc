package services

import (
	"context"
	"log/slog"
	"realtime-relay/domain"
	"realtime-relay/runtime"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
)

// recordingSink keeps every envelope it receives.
type recordingSink struct {
	mu       sync.Mutex
	received []domain.Envelope
}

func (s *recordingSink) Consume(_ context.Context, e domain.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, e)
	return nil
}

func (s *recordingSink) events() []domain.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Envelope(nil), s.received...)
}

type fixture struct {
	log      *slog.Logger
	registry *runtime.Registry
	hub      *runtime.Hub
	router   *RoomRouter
	sessions *SessionService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	hub := runtime.NewHub()
	return fixture{
		log:      log,
		registry: registry,
		hub:      hub,
		router:   NewRoomRouter(log, registry, hub),
		sessions: NewSessionService(log, registry, hub, nil),
	}
}

// connect opens a socket and, when actorType is set, identifies it.
func (f fixture) connect(connectionID, actorID string, actorType domain.ActorType) *recordingSink {
	sink := &recordingSink{}
	f.sessions.Connect(connectionID, sink)
	if actorType != "" {
		id := domain.NewID(actorID)
		f.sessions.Identify(connectionID, id, domain.Actor{ID: id, Type: actorType})
	}
	return sink
}
