package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeRelay(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/ws/stats", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"rooms":{"order-7":2,"driver-locations":1},"connections":{"total":3,"clients":2,"drivers":1,"admins":0}}`))
	})
	mux.HandleFunc("GET /api/v1/ws/connections", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "driver" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"statusCode":400,"error":"Bad Request","message":"type expected"}`))
			return
		}
		_, _ = w.Write([]byte(`{"total":1,"type":"driver","connections":[{"socketId":"sock-1","userId":42,"user":{"id":42,"name":"Sam","type":"driver"},"rooms":["order-7","driver-42"],"connectedAt":"2025-03-01T10:00:00Z"}]}`))
	})
	mux.HandleFunc("GET /api/v1/ws/sessions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"total":1,"sessions":[{"kind":"disconnected","socketId":"sock-9","userId":"u9","type":"client","at":"2025-03-01T10:05:00Z"}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func runWith(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RELAYCTL_ADDR", fakeRelay(t).URL)
	t.Setenv("RELAYCTL_COLOURS", "false")
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRelayctl_Stats(t *testing.T) {
	req := require.New(t)

	out, err := runWith(t, "stats")

	req.NoError(err)
	req.Contains(out, "CONNECTIONS")
	req.Contains(out, "driver-locations")
	req.Contains(out, "order-7")
}

func TestRelayctl_Connections(t *testing.T) {
	req := require.New(t)

	out, err := runWith(t, "connections", "-type", "driver")

	req.NoError(err)
	req.Contains(out, "sock-1")
	req.Contains(out, "Sam")
	req.Contains(out, "order-7,driver-42")
}

func TestRelayctl_Sessions(t *testing.T) {
	req := require.New(t)

	out, err := runWith(t, "sessions", "-limit", "5")

	req.NoError(err)
	req.Contains(out, "sock-9")
	req.Contains(out, "disconnected")
}

func TestRelayctl_Errors(t *testing.T) {
	req := require.New(t)

	_, err := runWith(t, "connections", "-type", "pilot")
	req.Error(err)

	_, err = runWith(t, "connections")
	req.ErrorContains(err, "type expected")

	_, err = runWith(t, "reboot")
	req.ErrorContains(err, "unknown command")

	_, err = runWith(t)
	req.ErrorContains(err, "usage")
}
