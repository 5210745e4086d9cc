package sink

import (
	"context"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/observability"
)

var _ contract.EventSink = (*SocketSink)(nil)

// SocketSink buffers envelopes for one websocket connection.
// The write pump of that connection is the only reader of Outbound.
type SocketSink struct {
	ConnectionID string
	Outbound     chan domain.Envelope
}

func NewSocketSink(connectionID string, bufferSize int) *SocketSink {
	return &SocketSink{ConnectionID: connectionID, Outbound: make(chan domain.Envelope, bufferSize)}
}

// Consume never waits for the client: a full buffer drops the envelope.
func (s *SocketSink) Consume(ctx context.Context, e domain.Envelope) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case s.Outbound <- e:
		return nil
	default:
		observability.RecordDroppedDelivery()
		return errors.ErrSinkFull
	}
}
