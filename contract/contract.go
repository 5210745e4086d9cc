//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"realtime-relay/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one transport connection.
// Consume must not block on a slow client.
type EventSink interface {
	Consume(ctx context.Context, e domain.Envelope) error
}

// IRegistry tracks identified connections.
type IRegistry interface {
	Identify(connectionID string, actorID domain.ID, actor domain.Actor) domain.Connection
	Remove(connectionID string) bool
	Get(connectionID string) (domain.Connection, bool)
	ListAll(filter domain.ActorType) []domain.Connection
	CountsByType() domain.ConnectionCounts
	AddRoom(connectionID, room string) bool
	RemoveRoom(connectionID, room string) bool
	ConnectionIDsForActors(actorIDs []domain.ID) []string
}

// IHub holds transport delivery groups, including the private group of every live socket.
type IHub interface {
	Attach(connectionID string, sink EventSink)
	Detach(connectionID string) bool
	Join(connectionID, room string) bool
	Leave(connectionID, room string) bool
	Sinks(label string) []EventSink
	RoomSizes() map[string]int
}

type IRelayClient interface {
	Forward(ctx context.Context, payload domain.RelayPayload) error
}

type ISessionRepository interface {
	Store(evt domain.SessionEvent) error
	List(limit int) ([]domain.SessionEvent, error)
}

type ISessionJournal interface {
	Record(evt domain.SessionEvent)
}
