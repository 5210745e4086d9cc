package gateway

import (
	"encoding/json"
	"realtime-relay/domain"
)

// inboundFrame is a text frame sent by a client.
// An id asks for an acknowledgement carrying the handler's response.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
	ID    json.RawMessage `json:"id,omitempty"`
}

func (f inboundFrame) wantsAck() bool {
	return len(f.ID) > 0 && string(f.ID) != "null"
}

type outboundFrame struct {
	Event string          `json:"event"`
	ID    json.RawMessage `json:"id,omitempty"`
	Data  any             `json:"data"`
}

func encode(e domain.Envelope) ([]byte, error) {
	return json.Marshal(outboundFrame{Event: e.Event, ID: e.AckID, Data: e.Payload})
}
