package sink

import (
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
)

var _ contract.ISessionJournal = (*JournalSink)(nil)

// JournalSink hands lifecycle events to the journal worker without blocking the caller.
type JournalSink struct {
	log    *slog.Logger
	events chan domain.SessionEvent
}

func NewJournalSink(log *slog.Logger, bufferSize int) *JournalSink {
	return &JournalSink{log: log, events: make(chan domain.SessionEvent, bufferSize)}
}

func (j *JournalSink) Events() <-chan domain.SessionEvent { return j.events }

func (j *JournalSink) Record(evt domain.SessionEvent) {
	select {
	case j.events <- evt:
	default:
		j.log.Debug("Session journal full, event lost", "socket_id", evt.ConnectionID, "kind", evt.Kind)
	}
}
