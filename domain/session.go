package domain

import "time"

type SessionKind string

const (
	SessionIdentified   SessionKind = "identified"
	SessionDisconnected SessionKind = "disconnected"
)

// SessionEvent is one entry of the connection lifecycle journal.
type SessionEvent struct {
	Kind         SessionKind `json:"kind"`
	ConnectionID string      `json:"socketId"`
	ActorID      ID          `json:"userId"`
	ActorType    ActorType   `json:"type"`
	At           time.Time   `json:"at"`
}
