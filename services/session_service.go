package services

import (
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/observability"
	"time"
)

// SessionService follows a transport connection from open to close.
type SessionService struct {
	log      *slog.Logger
	registry contract.IRegistry
	hub      contract.IHub
	journal  contract.ISessionJournal
}

func NewSessionService(log *slog.Logger, registry contract.IRegistry, hub contract.IHub, journal contract.ISessionJournal) *SessionService {
	return &SessionService{log: log, registry: registry, hub: hub, journal: journal}
}

func (s *SessionService) Connect(connectionID string, sink contract.EventSink) {
	s.hub.Attach(connectionID, sink)
	observability.RecordSocketOpened()
	s.log.Info("Client connected", "socket_id", connectionID)
}

// Identify binds the connection to an actor, replacing any previous binding.
func (s *SessionService) Identify(connectionID string, actorID domain.ID, actor domain.Actor) domain.Connection {
	conn := s.registry.Identify(connectionID, actorID, actor)
	s.record(domain.SessionIdentified, conn)
	s.log.Info("Client identified",
		"socket_id", connectionID,
		"type", actor.Type,
		"user_id", actorID.String())
	return conn
}

// Disconnect removes every trace of the connection, whether it identified or not.
func (s *SessionService) Disconnect(connectionID string) {
	conn, identified := s.registry.Get(connectionID)
	s.registry.Remove(connectionID)
	if s.hub.Detach(connectionID) {
		observability.RecordSocketClosed()
	}
	if identified {
		s.record(domain.SessionDisconnected, conn)
	}
	s.log.Info("Client disconnected", "socket_id", connectionID, "identified", identified)
}

func (s *SessionService) record(kind domain.SessionKind, conn domain.Connection) {
	if s.journal == nil {
		return
	}
	s.journal.Record(domain.SessionEvent{
		Kind:         kind,
		ConnectionID: conn.ConnectionID,
		ActorID:      conn.ActorID,
		ActorType:    conn.Actor.Type,
		At:           time.Now().UTC(),
	})
}
