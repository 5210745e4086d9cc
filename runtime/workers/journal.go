package workers

import (
	"context"
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
)

var _ contract.Worker = (*JournalWorker)(nil)

// JournalWorker persists connection lifecycle events away from the websocket handlers.
// A storage failure is logged and the event is lost. On cancellation the events
// already buffered in the channel are stored before Run returns.
type JournalWorker struct {
	log        *slog.Logger
	repository contract.ISessionRepository
	events     <-chan domain.SessionEvent
}

func NewJournalWorker(log *slog.Logger, repository contract.ISessionRepository, events <-chan domain.SessionEvent) *JournalWorker {
	return &JournalWorker{log: log, repository: repository, events: events}
}

func (w *JournalWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			drained := w.drain()
			w.log.Debug("Stopping journal worker", "drained", drained)
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Journal channel is closed")
				return nil
			}
			w.store(evt)
		}
	}
}

// drain stores whatever is pending without blocking and reports how many events it took.
func (w *JournalWorker) drain() int {
	n := 0
	for {
		select {
		case evt, ok := <-w.events:
			if !ok {
				return n
			}
			w.store(evt)
			n++
		default:
			return n
		}
	}
}

func (w *JournalWorker) store(evt domain.SessionEvent) {
	if err := w.repository.Store(evt); err != nil {
		w.log.Error("Failed to store session event",
			"socket_id", evt.ConnectionID,
			"kind", evt.Kind,
			"error", err)
	}
}
