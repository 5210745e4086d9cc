// Package domain contains the core concepts of the relay: actors, connections,
// rooms and the payloads that travel between them.
// No transport or storage logic should be added here.
package domain

import (
	"fmt"
	"realtime-relay/errors"
)

type ActorType string

const (
	ActorClient ActorType = "client"
	ActorDriver ActorType = "driver"
	ActorAdmin  ActorType = "admin"
)

func (t ActorType) Valid() bool {
	switch t {
	case ActorClient, ActorDriver, ActorAdmin:
		return true
	}
	return false
}

// ParseActorType accepts an empty string as "no filter".
func ParseActorType(s string) (ActorType, error) {
	t := ActorType(s)
	if s == "" || t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown actor type %q", errors.ErrInvalidRequest, s)
}

// Actor is who claims to be behind a connection. It is not verified here.
type Actor struct {
	ID    ID        `json:"id" validate:"required"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
	Type  ActorType `json:"type" validate:"required,oneof=client driver admin"`
}
