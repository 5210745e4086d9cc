package workers

import (
	"context"
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/observability"
	"time"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// RelayStats is the read side the heartbeat summarizes.
type RelayStats interface {
	ConnectionCounts() domain.ConnectionCounts
	RoomCounts() map[string]int
}

// HeartbeatWorker logs a summary of the relay state at a fixed interval.
type HeartbeatWorker struct {
	log      *slog.Logger
	stats    RelayStats
	monitor  *observability.ProcessMonitor
	interval time.Duration
}

// NewHeartbeatWorker accepts a nil monitor, process figures are then left out.
func NewHeartbeatWorker(log *slog.Logger, stats RelayStats, monitor *observability.ProcessMonitor, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, stats: stats, monitor: monitor, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat()
		}
	}
}

func (w *HeartbeatWorker) beat() {
	counts := w.stats.ConnectionCounts()
	attrs := []any{
		"connections", counts.Total,
		"clients", counts.Clients,
		"drivers", counts.Drivers,
		"admins", counts.Admins,
		"rooms", len(w.stats.RoomCounts()),
	}
	if w.monitor != nil {
		if p, err := w.monitor.Snapshot(); err == nil {
			attrs = append(attrs, "rss_bytes", p.RSSBytes, "cpu_percent", p.CPUPercent, "goroutines", p.Goroutines)
		} else {
			w.log.Debug("Failed to collect self stats", "error", err)
		}
	}
	w.log.Info("Relay heartbeat", attrs...)
}
