package services

import (
	"context"
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/observability"
)

// RoomRouter keeps room membership consistent between the registry and the
// transport delivery groups, and broadcasts into those groups.
type RoomRouter struct {
	log      *slog.Logger
	registry contract.IRegistry
	hub      contract.IHub
}

func NewRoomRouter(log *slog.Logger, registry contract.IRegistry, hub contract.IHub) *RoomRouter {
	return &RoomRouter{log: log, registry: registry, hub: hub}
}

// Join attaches the connection to room. An unknown connection is a no-op:
// it already disconnected, or it never identified and only the transport membership is kept.
func (r *RoomRouter) Join(connectionID, room string) {
	attached := r.hub.Join(connectionID, room)
	identified := r.registry.AddRoom(connectionID, room)
	if !attached {
		r.log.Debug("Join ignored", "socket_id", connectionID, "room", room, "error", errors.ErrUnknownConnection)
		return
	}
	r.log.Info("Client joined room", "socket_id", connectionID, "room", room, "identified", identified)
}

func (r *RoomRouter) Leave(connectionID, room string) {
	attached := r.hub.Leave(connectionID, room)
	r.registry.RemoveRoom(connectionID, room)
	if !attached {
		r.log.Debug("Leave ignored", "socket_id", connectionID, "room", room, "error", errors.ErrUnknownConnection)
		return
	}
	r.log.Info("Client left room", "socket_id", connectionID, "room", room)
}

// Broadcast hands the event to every socket currently in room and returns how
// many accepted it. An empty room is a successful no-op.
func (r *RoomRouter) Broadcast(ctx context.Context, room, event string, payload any) int {
	delivered := r.deliver(ctx, r.hub.Sinks(room), domain.NewEnvelope(event, payload))
	observability.RecordBroadcast(observability.BroadcastRoom, delivered)
	r.log.Info("Emitted event to room", "event", event, "room", room, "delivered", delivered)
	return delivered
}

// BroadcastToActors delivers to every live connection of each actor, whatever rooms they joined.
func (r *RoomRouter) BroadcastToActors(ctx context.Context, actorIDs []domain.ID, event string, payload any) int {
	envelope := domain.NewEnvelope(event, payload)
	delivered := 0
	for _, connectionID := range r.registry.ConnectionIDsForActors(actorIDs) {
		delivered += r.deliver(ctx, r.hub.Sinks(connectionID), envelope)
	}
	observability.RecordBroadcast(observability.BroadcastDirect, delivered)
	r.log.Info("Emitted event to actors", "event", event, "targets", len(actorIDs), "delivered", delivered)
	return delivered
}

func (r *RoomRouter) deliver(ctx context.Context, sinks []contract.EventSink, envelope domain.Envelope) int {
	delivered := 0
	for _, sink := range sinks {
		if err := sink.Consume(ctx, envelope); err != nil {
			r.log.Debug("Delivery dropped", "event", envelope.Event, "error", err)
			continue
		}
		delivered++
	}
	return delivered
}
