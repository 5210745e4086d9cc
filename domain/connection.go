package domain

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

type Set map[string]struct{}

// Connection is one identified transport session.
type Connection struct {
	ConnectionID string
	ActorID      ID
	Actor        Actor
	Rooms        Set
	ConnectedAt  time.Time
}

func NewConnection(connectionID string, actorID ID, actor Actor, at time.Time) *Connection {
	return &Connection{
		ConnectionID: connectionID,
		ActorID:      actorID,
		Actor:        actor,
		Rooms:        make(Set),
		ConnectedAt:  at,
	}
}

// Clone copies the room set so the result can leave the registry lock.
func (c Connection) Clone() Connection {
	rooms := make(Set, len(c.Rooms))
	for r := range c.Rooms {
		rooms[r] = struct{}{}
	}
	c.Rooms = rooms
	return c
}

func (c Connection) View() ConnectionView {
	rooms := lo.Keys(c.Rooms)
	slices.Sort(rooms)
	return ConnectionView{
		SocketID:    c.ConnectionID,
		UserID:      c.ActorID,
		User:        c.Actor,
		Rooms:       rooms,
		ConnectedAt: c.ConnectedAt,
	}
}

// ConnectionView is the JSON shape exposed to operators.
type ConnectionView struct {
	SocketID    string    `json:"socketId"`
	UserID      ID        `json:"userId"`
	User        Actor     `json:"user"`
	Rooms       []string  `json:"rooms"`
	ConnectedAt time.Time `json:"connectedAt"`
}

type ConnectionCounts struct {
	Total   int `json:"total"`
	Clients int `json:"clients"`
	Drivers int `json:"drivers"`
	Admins  int `json:"admins"`
}
