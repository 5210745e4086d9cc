package services

import (
	"context"
	"log/slog"
	"maps"
	"realtime-relay/domain"
	"time"
)

// EmitRequest is an event pushed by the backend.
type EmitRequest struct {
	Event     string         `json:"event" validate:"required"`
	Data      map[string]any `json:"data" validate:"required"`
	Room      *string        `json:"room,omitempty"`
	OrderID   *domain.ID     `json:"orderId,omitempty"`
	DriverID  *domain.ID     `json:"driverId,omitempty"`
	TargetIDs []domain.ID    `json:"targetIds,omitempty"`
}

type EmitResult struct {
	Success   bool   `json:"success"`
	Event     string `json:"event"`
	Room      string `json:"room"`
	Timestamp string `json:"timestamp"`
}

type EventIngress struct {
	log    *slog.Logger
	router *RoomRouter
	now    func() time.Time
}

func NewEventIngress(log *slog.Logger, router *RoomRouter) *EventIngress {
	return &EventIngress{log: log, router: router, now: time.Now}
}

// Emit broadcasts the event to its room and, when targets are named, to each
// target's connections as well. A target that is also in the room receives it twice.
// Nothing is broadcast when the request is invalid.
func (e *EventIngress) Emit(ctx context.Context, req EmitRequest) (EmitResult, error) {
	if err := Validate(req); err != nil {
		e.log.Warn("Rejected emit request", "event", req.Event, "error", err)
		return EmitResult{}, err
	}

	room := domain.DeriveRoom(req.Room, req.Event, withRoutingHints(req))
	timestamp := domain.Timestamp(e.now())

	payload := maps.Clone(req.Data)
	payload["timestamp"] = timestamp
	e.router.Broadcast(ctx, room, req.Event, payload)

	if len(req.TargetIDs) > 0 {
		e.router.BroadcastToActors(ctx, req.TargetIDs, req.Event, req.Data)
	}

	return EmitResult{Success: true, Event: req.Event, Room: room, Timestamp: timestamp}, nil
}

// withRoutingHints lets the top-level orderId/driverId steer room derivation when data names neither.
func withRoutingHints(req EmitRequest) map[string]any {
	if domain.HasOrderID(req.Data) || domain.HasDriverID(req.Data) {
		return req.Data
	}
	hinted := req.Data
	if req.OrderID != nil && !req.OrderID.IsZero() {
		hinted = maps.Clone(req.Data)
		hinted["orderId"] = req.OrderID.String()
	} else if req.DriverID != nil && !req.DriverID.IsZero() {
		hinted = maps.Clone(req.Data)
		hinted["driverId"] = req.DriverID.String()
	}
	return hinted
}
