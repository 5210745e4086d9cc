package gateway

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/observability"
	"realtime-relay/services"
)

const (
	EventIdentify = "identify"
	EventJoin     = "join"
	EventLeave    = "leave"
)

// HandlerFunc answers one inbound message. The returned value is sent back as the ack payload.
type HandlerFunc func(ctx context.Context, connectionID string, data json.RawMessage) (any, error)

type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type identifyRequest struct {
	UserID domain.ID     `json:"userId" validate:"required"`
	User   *domain.Actor `json:"user" validate:"required"`
}

type identifyResult struct {
	Success  bool   `json:"success"`
	SocketID string `json:"socketId"`
}

type roomRequest struct {
	Room string `json:"room" validate:"required"`
}

type roomResult struct {
	Success bool   `json:"success"`
	Room    string `json:"room"`
}

// Dispatcher routes inbound messages by name. Handlers never tear the connection down:
// errors and panics become {success:false, error} responses.
type Dispatcher struct {
	log      *slog.Logger
	handlers map[string]HandlerFunc
}

func NewDispatcher(log *slog.Logger, sessions *services.SessionService, router *services.RoomRouter, relay *services.LocationRelay) *Dispatcher {
	d := &Dispatcher{log: log, handlers: make(map[string]HandlerFunc)}
	d.Handle(EventIdentify, identifyHandler(sessions))
	d.Handle(EventJoin, joinHandler(router))
	d.Handle(EventLeave, leaveHandler(router))
	d.Handle(domain.EventDriverLocation, locationHandler(relay))
	return d
}

func (d *Dispatcher) Handle(event string, h HandlerFunc) {
	d.handlers[event] = h
}

// Dispatch returns the response to acknowledge with.
func (d *Dispatcher) Dispatch(ctx context.Context, connectionID, event string, data json.RawMessage) (resp any) {
	h, ok := d.handlers[event]
	if !ok {
		observability.RecordSocketMessage(observability.MessageUnknown, observability.MessageRejected)
		d.log.Debug("Unknown event", "socket_id", connectionID, "event", event)
		return failure{Error: fmt.Errorf("%w: %q", errors.ErrUnknownEvent, event).Error()}
	}

	defer func() {
		if r := recover(); r != nil {
			observability.RecordSocketMessage(event, observability.MessagePanicked)
			d.log.Error("Handler panicked", "socket_id", connectionID, "event", event, "panic", r)
			resp = failure{Error: fmt.Errorf("%w: %v", errors.ErrHandlerPanic, r).Error()}
		}
	}()

	resp, err := h(ctx, connectionID, data)
	if err != nil {
		observability.RecordSocketMessage(event, observability.MessageRejected)
		level := slog.LevelWarn
		if stderrors.Is(err, errors.ErrInvalidRequest) {
			level = slog.LevelDebug
		}
		d.log.Log(ctx, level, "Handler failed", "socket_id", connectionID, "event", event, "error", err)
		return failure{Error: err.Error()}
	}
	observability.RecordSocketMessage(event, observability.MessageHandled)
	return resp
}

func decode[T any](data json.RawMessage) (T, error) {
	var req T
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return req, nil
}

func identifyHandler(sessions *services.SessionService) HandlerFunc {
	return func(_ context.Context, connectionID string, data json.RawMessage) (any, error) {
		req, err := decode[identifyRequest](data)
		if err != nil {
			return nil, err
		}
		if err = services.Validate(req); err != nil {
			return nil, err
		}
		sessions.Identify(connectionID, req.UserID, *req.User)
		return identifyResult{Success: true, SocketID: connectionID}, nil
	}
}

func joinHandler(router *services.RoomRouter) HandlerFunc {
	return func(_ context.Context, connectionID string, data json.RawMessage) (any, error) {
		req, err := decode[roomRequest](data)
		if err != nil {
			return nil, err
		}
		if err = services.Validate(req); err != nil {
			return nil, err
		}
		router.Join(connectionID, req.Room)
		return roomResult{Success: true, Room: req.Room}, nil
	}
}

func leaveHandler(router *services.RoomRouter) HandlerFunc {
	return func(_ context.Context, connectionID string, data json.RawMessage) (any, error) {
		req, err := decode[roomRequest](data)
		if err != nil {
			return nil, err
		}
		if err = services.Validate(req); err != nil {
			return nil, err
		}
		router.Leave(connectionID, req.Room)
		return roomResult{Success: true, Room: req.Room}, nil
	}
}

func locationHandler(relay *services.LocationRelay) HandlerFunc {
	return func(ctx context.Context, _ string, data json.RawMessage) (any, error) {
		update, err := decode[domain.LocationUpdate](data)
		if err != nil {
			return nil, err
		}
		return relay.Relay(ctx, update), nil
	}
}
