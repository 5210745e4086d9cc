package runtime

import (
	"realtime-relay/contract"
	"realtime-relay/domain"
	"sync"
)

var _ contract.IHub = (*Hub)(nil)

// Hub owns the transport delivery groups.
// Every attached socket is a member of its own private group, labelled with its
// connection id, which is how direct delivery reaches a single socket.
// Named rooms exist only while they have at least one member.
type Hub struct {
	mu          sync.RWMutex
	sinks       map[string]contract.EventSink // connection -> sink
	groups      map[string]domain.Set         // label -> connections
	memberships map[string]domain.Set         // connection -> labels
}

func NewHub() *Hub {
	return &Hub{
		sinks:       make(map[string]contract.EventSink),
		groups:      make(map[string]domain.Set),
		memberships: make(map[string]domain.Set),
	}
}

func (h *Hub) Attach(connectionID string, sink contract.EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sinks[connectionID] = sink
	if _, ok := h.memberships[connectionID]; !ok {
		h.memberships[connectionID] = make(domain.Set)
	}
	h.add(connectionID, connectionID)
}

// Detach removes the socket from every group it belongs to.
func (h *Hub) Detach(connectionID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sinks[connectionID]; !ok {
		return false
	}
	for label := range h.memberships[connectionID] {
		h.remove(connectionID, label)
	}
	delete(h.memberships, connectionID)
	delete(h.sinks, connectionID)
	return true
}

// Join returns false when the socket is not attached.
func (h *Hub) Join(connectionID, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sinks[connectionID]; !ok {
		return false
	}
	h.add(connectionID, room)
	return true
}

func (h *Hub) Leave(connectionID, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sinks[connectionID]; !ok {
		return false
	}
	// The private group is left only on Detach.
	if room == connectionID {
		return true
	}
	h.remove(connectionID, room)
	return true
}

// Sinks snapshots the members of a group. Delivery happens outside the lock.
func (h *Hub) Sinks(label string) []contract.EventSink {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.groups[label]
	if !ok {
		return nil
	}
	res := make([]contract.EventSink, 0, len(members))
	for connectionID := range members {
		if sink, exists := h.sinks[connectionID]; exists {
			res = append(res, sink)
		}
	}
	return res
}

// RoomSizes counts members per group, skipping labels that name a live socket.
func (h *Hub) RoomSizes() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	res := make(map[string]int, len(h.groups))
	for label, members := range h.groups {
		if _, isSocket := h.sinks[label]; isSocket {
			continue
		}
		res[label] = len(members)
	}
	return res
}

func (h *Hub) add(connectionID, label string) {
	if _, ok := h.groups[label]; !ok {
		h.groups[label] = make(domain.Set)
	}
	h.groups[label][connectionID] = struct{}{}
	h.memberships[connectionID][label] = struct{}{}
}

func (h *Hub) remove(connectionID, label string) {
	if members, ok := h.groups[label]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(h.groups, label)
		}
	}
	delete(h.memberships[connectionID], label)
}
