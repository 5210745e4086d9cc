package runtime

import (
	"context"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

type Sink struct {
	id string
}

func (s Sink) Consume(_ context.Context, _ domain.Envelope) error {
	return nil
}

func TestHub_Attach_Creates_Private_Group(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	sink := Sink{id: "c1"}

	// When a socket attaches
	hub.Attach("c1", sink)

	// Then it can be reached directly
	req.Equal([]Sink{sink}, toSinks(hub.Sinks("c1")))
	// And its private group is not a room
	req.Empty(hub.RoomSizes())
}

func TestHub_Join_Leave(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	hub.Attach("c1", Sink{id: "c1"})
	hub.Attach("c2", Sink{id: "c2"})

	// When both join a room
	req.True(hub.Join("c1", "order-1"))
	req.True(hub.Join("c2", "order-1"))
	req.True(hub.Join("c2", "order-1"))

	// Then
	req.Equal(map[string]int{"order-1": 2}, hub.RoomSizes())
	req.Len(hub.Sinks("order-1"), 2)

	// When one leaves
	req.True(hub.Leave("c1", "order-1"))
	req.Equal(map[string]int{"order-1": 1}, hub.RoomSizes())

	// When the last member leaves the room disappears
	req.True(hub.Leave("c2", "order-1"))
	req.Empty(hub.RoomSizes())
	req.Nil(hub.Sinks("order-1"))
}

func TestHub_Detach_Removes_All_Memberships(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	hub.Attach("c1", Sink{id: "c1"})
	hub.Join("c1", "r1")
	hub.Join("c1", "r2")

	req.True(hub.Detach("c1"))

	req.Empty(hub.RoomSizes())
	req.Nil(hub.Sinks("c1"))
	req.Nil(hub.Sinks("r1"))
	req.False(hub.Detach("c1"))
}

func TestHub_Unknown_Socket_Cannot_Join(t *testing.T) {
	req := require.New(t)
	hub := NewHub()

	req.False(hub.Join("ghost", "r1"))
	req.False(hub.Leave("ghost", "r1"))
	req.Empty(hub.RoomSizes())
}

func TestHub_Leaving_Private_Group_Is_Ignored(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	hub.Attach("c1", Sink{id: "c1"})

	req.True(hub.Leave("c1", "c1"))
	req.Len(hub.Sinks("c1"), 1)
}

func TestHub_RoomSizes_Skips_Labels_Naming_A_Socket(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	hub.Attach("c1", Sink{id: "c1"})
	hub.Attach("c2", Sink{id: "c2"})

	// Given c2 joins a room whose label is c1's id
	hub.Join("c2", "c1")
	hub.Join("c2", "general")

	// Then that label never shows up as a room
	sizes := hub.RoomSizes()
	req.NotContains(sizes, "c1")
	req.NotContains(sizes, "c2")
	req.Equal(1, sizes["general"])
}

func toSinks(sinks []contract.EventSink) []Sink {
	res := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		res = append(res, s.(Sink))
	}
	return res
}
