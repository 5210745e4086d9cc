// Package gateway is the websocket transport of the relay.
// Each socket gets a read pump (inbound messages, dispatched in order) and a
// write pump (the only writer, draining the socket's sink and sending pings).
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"realtime-relay/domain"
	"realtime-relay/services"
	"realtime-relay/sink"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	DefaultPingInterval = 25 * time.Second
	DefaultPongTimeout  = 60 * time.Second
	DefaultBufferSize   = 256

	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024
)

type Config struct {
	BufferSize   int
	PingInterval time.Duration
	PongTimeout  time.Duration
}

type Gateway struct {
	log        *slog.Logger
	upgrader   websocket.Upgrader
	sessions   *services.SessionService
	dispatcher *Dispatcher
	config     Config

	mu      sync.Mutex
	conns   map[string]*websocket.Conn
	closing bool
	// handlers counts ServeHTTP calls that have not finished their disconnect yet.
	handlers sync.WaitGroup
}

func NewGateway(log *slog.Logger, sessions *services.SessionService, dispatcher *Dispatcher, config Config) *Gateway {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}
	if config.PingInterval <= 0 {
		config.PingInterval = DefaultPingInterval
	}
	if config.PongTimeout <= 0 {
		config.PongTimeout = DefaultPongTimeout
	}
	return &Gateway{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sessions:   sessions,
		dispatcher: dispatcher,
		config:     config,
		conns:      make(map[string]*websocket.Conn),
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	id := uuid.NewString()
	s := sink.NewSocketSink(id, g.config.BufferSize)
	done := make(chan struct{})

	if !g.track(id, ws) {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = ws.Close()
		return
	}
	defer g.handlers.Done()

	g.sessions.Connect(id, s)
	defer func() {
		g.sessions.Disconnect(id)
		g.untrack(id)
		close(done)
		_ = ws.Close()
	}()

	go g.writePump(ws, s, done)
	g.readPump(r.Context(), ws, s)
}

// Shutdown refuses new sockets, closes the open ones and waits until every
// handler has run its disconnect, or until ctx is done.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closing = true
	for id, ws := range g.conns {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = ws.Close()
		g.log.Debug("Closed socket on shutdown", "socket_id", id)
	}
	g.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		g.handlers.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// track registers the socket and its handler, unless the gateway is shutting down.
func (g *Gateway) track(id string, ws *websocket.Conn) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closing {
		return false
	}
	g.handlers.Add(1)
	g.conns[id] = ws
	return true
}

func (g *Gateway) untrack(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.conns, id)
}

func (g *Gateway) readPump(ctx context.Context, ws *websocket.Conn, s *sink.SocketSink) {
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(g.config.PongTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(g.config.PongTimeout))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				g.log.Warn("Websocket read failed", "socket_id", s.ConnectionID, "error", err)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(g.config.PongTimeout))

		var frame inboundFrame
		if err = json.Unmarshal(raw, &frame); err != nil {
			g.log.Debug("Malformed frame ignored", "socket_id", s.ConnectionID, "error", err)
			continue
		}

		resp := g.dispatcher.Dispatch(ctx, s.ConnectionID, frame.Event, frame.Data)
		if !frame.wantsAck() {
			continue
		}
		if err = s.Consume(ctx, domain.NewAck(frame.ID, resp)); err != nil {
			g.log.Debug("Ack dropped", "socket_id", s.ConnectionID, "event", frame.Event, "error", err)
		}
	}
}

func (g *Gateway) writePump(ws *websocket.Conn, s *sink.SocketSink, done <-chan struct{}) {
	ticker := time.NewTicker(g.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case envelope := <-s.Outbound:
			data, err := encode(envelope)
			if err != nil {
				g.log.Error("Cannot encode envelope", "socket_id", s.ConnectionID, "event", envelope.Event, "error", err)
				continue
			}
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err = ws.WriteMessage(websocket.TextMessage, data); err != nil {
				g.log.Debug("Websocket write failed", "socket_id", s.ConnectionID, "error", err)
				_ = ws.Close()
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = ws.Close()
				return
			}
		}
	}
}
