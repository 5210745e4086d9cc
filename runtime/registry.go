package runtime

import (
	"cmp"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry maps live connection ids to the actor they identified as.
// A connection that never sent identify has no entry.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]*domain.Connection
	now         func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[string]*domain.Connection),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Identify inserts or replaces the entry for connectionID.
// Re-identifying starts again from an empty room set.
func (r *Registry) Identify(connectionID string, actorID domain.ID, actor domain.Actor) domain.Connection {
	conn := domain.NewConnection(connectionID, actorID, actor, r.now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[connectionID] = conn
	return conn.Clone()
}

// Remove reports whether an entry existed.
func (r *Registry) Remove(connectionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.connections[connectionID]
	delete(r.connections, connectionID)
	return ok
}

func (r *Registry) Get(connectionID string) (domain.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connections[connectionID]
	if !ok {
		return domain.Connection{}, false
	}
	return conn.Clone(), true
}

// ListAll returns every identified connection, oldest first.
// An empty filter returns all actor types.
func (r *Registry) ListAll(filter domain.ActorType) []domain.Connection {
	r.mu.RLock()
	res := make([]domain.Connection, 0, len(r.connections))
	for _, conn := range r.connections {
		if filter == "" || conn.Actor.Type == filter {
			res = append(res, conn.Clone())
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(res, func(a, b domain.Connection) int {
		if c := a.ConnectedAt.Compare(b.ConnectedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ConnectionID, b.ConnectionID)
	})
	return res
}

func (r *Registry) CountsByType() domain.ConnectionCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := domain.ConnectionCounts{Total: len(r.connections)}
	for _, conn := range r.connections {
		switch conn.Actor.Type {
		case domain.ActorClient:
			counts.Clients++
		case domain.ActorDriver:
			counts.Drivers++
		case domain.ActorAdmin:
			counts.Admins++
		}
	}
	return counts
}

// AddRoom records room on an identified connection.
// Returns false when the connection is unknown, which callers treat as already-correct state.
func (r *Registry) AddRoom(connectionID, room string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[connectionID]
	if !ok {
		return false
	}
	conn.Rooms[room] = struct{}{}
	return true
}

func (r *Registry) RemoveRoom(connectionID, room string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[connectionID]
	if !ok {
		return false
	}
	delete(conn.Rooms, room)
	return true
}

// ConnectionIDsForActors resolves actor ids to every live connection they own.
// Ids match on their string form, so 7 and "7" designate the same actor.
func (r *Registry) ConnectionIDsForActors(actorIDs []domain.ID) []string {
	if len(actorIDs) == 0 {
		return nil
	}
	wanted := lo.SliceToMap(actorIDs, func(id domain.ID) (string, struct{}) {
		return id.String(), struct{}{}
	})

	r.mu.RLock()
	var res []string
	for id, conn := range r.connections {
		if _, ok := wanted[conn.ActorID.String()]; ok {
			res = append(res, id)
		}
	}
	r.mu.RUnlock()

	slices.Sort(res)
	return res
}
