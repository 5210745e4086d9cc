package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomRouter_Join_Join_Leave(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.connect("c1", "1", domain.ActorClient)

	// When the connection joins r1, r2 then leaves r1
	f.router.Join("c1", "r1")
	f.router.Join("c1", "r2")
	f.router.Leave("c1", "r1")

	// Then its room set is {r2} in both the registry and the delivery groups
	conn, ok := f.registry.Get("c1")
	req.True(ok)
	req.Equal(domain.Set{"r2": {}}, conn.Rooms)
	req.Equal(map[string]int{"r2": 1}, f.hub.RoomSizes())
}

func TestRoomRouter_Join_Unknown_Connection_Is_NoOp(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// When a disconnected socket tries to join
	f.router.Join("ghost", "r1")
	f.router.Leave("ghost", "r1")

	// Then nothing is created
	req.Empty(f.hub.RoomSizes())
}

func TestRoomRouter_Unknown_Connection_Is_Logged(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	var out bytes.Buffer
	router := NewRoomRouter(slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})), f.registry, f.hub)

	// When a socket that is gone joins then leaves
	router.Join("ghost", "r1")
	router.Leave("ghost", "r1")

	// Then both attempts are logged with the unknown connection error
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Len(lines, 2)
	for _, line := range lines {
		var entry map[string]any
		req.NoError(json.Unmarshal([]byte(line), &entry))
		req.Equal(errors.ErrUnknownConnection.Error(), entry["error"])
		req.Equal("ghost", entry["socket_id"])
	}
}

func TestRoomRouter_Join_Before_Identify_Is_Transport_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sink := f.connect("c1", "", "")

	// When an unidentified socket joins a room
	f.router.Join("c1", "order-9")

	// Then it receives broadcasts to that room
	f.router.Broadcast(context.Background(), "order-9", "order.updated", map[string]any{})
	req.Len(sink.events(), 1)
	// But it is invisible to the registry
	_, ok := f.registry.Get("c1")
	req.False(ok)
}

func TestRoomRouter_Broadcast_Empty_Room(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sink := f.connect("c1", "1", domain.ActorClient)

	delivered := f.router.Broadcast(context.Background(), "nobody-here", "x", nil)

	req.Zero(delivered)
	req.Empty(sink.events())
}

func TestRoomRouter_Broadcast_Only_Reaches_Members(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	member := f.connect("c1", "1", domain.ActorClient)
	outsider := f.connect("c2", "2", domain.ActorClient)
	f.router.Join("c1", "order-1")

	delivered := f.router.Broadcast(context.Background(), "order-1", "order.updated", map[string]any{"status": "ready"})

	req.Equal(1, delivered)
	req.Len(member.events(), 1)
	req.Equal("order.updated", member.events()[0].Event)
	req.Empty(outsider.events())
}

func TestRoomRouter_Broadcast_Continues_After_Full_Sink(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	full := mocks.NewMockEventSink(ctrl)
	f.sessions.Connect("slow", full)
	f.router.Join("slow", "r1")
	fast := f.connect("fast", "", "")
	f.router.Join("fast", "r1")

	// Given one socket buffer is full
	full.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(errors.ErrSinkFull).Times(1)

	// Then the other member still gets the event
	delivered := f.router.Broadcast(context.Background(), "r1", "x", nil)
	req.Equal(1, delivered)
	req.Len(fast.events(), 1)
}

func TestRoomRouter_BroadcastToActors_Reaches_Every_Device(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	phone := f.connect("phone", "7", domain.ActorClient)
	tablet := f.connect("tablet", "7", domain.ActorClient)
	other := f.connect("other", "8", domain.ActorClient)

	delivered := f.router.BroadcastToActors(context.Background(), []domain.ID{domain.NewNumericID(7)}, "promo", map[string]any{})

	req.Equal(2, delivered)
	req.Len(phone.events(), 1)
	req.Len(tablet.events(), 1)
	req.Empty(other.events())
}

func TestSessionService_Disconnect_Removes_Everything(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.connect("c1", "1", domain.ActorDriver)
	f.router.Join("c1", "order-1")

	f.sessions.Disconnect("c1")

	_, ok := f.registry.Get("c1")
	req.False(ok)
	req.Empty(f.hub.RoomSizes())

	// A late join does not resurrect anything
	f.router.Join("c1", "order-1")
	req.Empty(f.hub.RoomSizes())
	_, ok = f.registry.Get("c1")
	req.False(ok)
}

func TestSessionService_Journals_Identified_Sessions(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockISessionJournal(ctrl)
	sessions := NewSessionService(f.log, f.registry, f.hub, journal)

	var kinds []domain.SessionKind
	journal.EXPECT().Record(gomock.Any()).Do(func(evt domain.SessionEvent) {
		req.Equal("c1", evt.ConnectionID)
		req.Equal(domain.ActorDriver, evt.ActorType)
		kinds = append(kinds, evt.Kind)
	}).Times(2)

	// Given an identified session and an anonymous one
	sessions.Connect("c1", &recordingSink{})
	sessions.Connect("anon", &recordingSink{})
	id := domain.NewID("d-1")
	sessions.Identify("c1", id, domain.Actor{ID: id, Type: domain.ActorDriver})

	// When both disconnect
	sessions.Disconnect("c1")
	sessions.Disconnect("anon")

	// Then only the identified one was journaled
	req.Equal([]domain.SessionKind{domain.SessionIdentified, domain.SessionDisconnected}, kinds)
}
