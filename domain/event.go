package domain

import (
	"encoding/json"
	"time"
)

const EventAck = "ack"

// Envelope is what a sink delivers to one transport connection.
// AckID is set only on acknowledgements and echoes the id of the inbound message.
type Envelope struct {
	Event   string
	Payload any
	AckID   json.RawMessage
}

func NewEnvelope(event string, payload any) Envelope {
	return Envelope{Event: event, Payload: payload}
}

func NewAck(id json.RawMessage, payload any) Envelope {
	return Envelope{Event: EventAck, Payload: payload, AckID: id}
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp renders t in UTC with millisecond precision, e.g. 2025-01-02T10:04:05.123Z.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
