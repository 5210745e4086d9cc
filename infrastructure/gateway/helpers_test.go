package gateway

import (
	"log/slog"
	"realtime-relay/runtime"
	"realtime-relay/services"
	"testing"

	"github.com/mama165/sdk-go/logs"
)

type fixture struct {
	registry   *runtime.Registry
	hub        *runtime.Hub
	router     *services.RoomRouter
	sessions   *services.SessionService
	dispatcher *Dispatcher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	hub := runtime.NewHub()
	router := services.NewRoomRouter(log, registry, hub)
	sessions := services.NewSessionService(log, registry, hub, nil)
	relay := services.NewLocationRelay(log, router, nil, 0, 0)
	return fixture{
		registry:   registry,
		hub:        hub,
		router:     router,
		sessions:   sessions,
		dispatcher: NewDispatcher(log, sessions, router, relay),
	}
}
