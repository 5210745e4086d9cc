package workers

import (
	"bytes"
	"context"
	"log/slog"
	"realtime-relay/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedStats struct{}

func (fixedStats) ConnectionCounts() domain.ConnectionCounts {
	return domain.ConnectionCounts{Total: 3, Clients: 1, Drivers: 1, Admins: 1}
}

func (fixedStats) RoomCounts() map[string]int {
	return map[string]int{"order-1": 2, "driver-locations": 1}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestHeartbeatWorker_Logs_Summary_Until_Canceled(t *testing.T) {
	req := require.New(t)
	out := &lockedBuffer{}
	log := slog.New(slog.NewTextHandler(out, nil))
	worker := NewHeartbeatWorker(log, fixedStats{}, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	req.Eventually(func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Relay heartbeat"))
	}, time.Second, 5*time.Millisecond)
	cancel()

	req.ErrorIs(<-done, context.Canceled)
	req.Contains(out.String(), "connections=3")
	req.Contains(out.String(), "rooms=2")
}
