package services

import (
	"context"
	stderrors "errors"
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"realtime-relay/observability"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	DefaultRelayTimeout     = 3000 * time.Millisecond
	DefaultRelayMaxInFlight = 256
)

// LocationRelay broadcasts driver positions to their order room and forwards them,
// best effort, to the persistence endpoint.
type LocationRelay struct {
	log      *slog.Logger
	router   *RoomRouter
	client   contract.IRelayClient
	timeout  time.Duration
	inflight *semaphore.Weighted
	now      func() time.Time

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewLocationRelay accepts a nil client, in which case positions are only broadcast.
func NewLocationRelay(log *slog.Logger, router *RoomRouter, client contract.IRelayClient,
	timeout time.Duration, maxInFlight int) *LocationRelay {
	if timeout <= 0 {
		timeout = DefaultRelayTimeout
	}
	if maxInFlight <= 0 {
		maxInFlight = DefaultRelayMaxInFlight
	}
	return &LocationRelay{
		log:      log,
		router:   router,
		client:   client,
		timeout:  timeout,
		inflight: semaphore.NewWeighted(int64(maxInFlight)),
		now:      time.Now,
	}
}

// Relay returns as soon as the realtime broadcast is done.
// The outbound call runs detached and its outcome never changes the result.
func (l *LocationRelay) Relay(ctx context.Context, update domain.LocationUpdate) domain.LocationResult {
	if err := Validate(update); err != nil {
		return domain.LocationResult{Success: false, Error: err.Error()}
	}

	room := domain.OrderRoom(update.OrderID)
	l.router.Broadcast(ctx, room, domain.EventDriverLocation, domain.LocationBroadcast{
		OrderID:   update.OrderID,
		DriverID:  update.DriverID,
		Latitude:  *update.Latitude,
		Longitude: *update.Longitude,
		Timestamp: domain.Timestamp(l.now()),
	})

	l.forward(domain.RelayPayload{
		DriverID:  update.DriverID,
		OrderID:   update.OrderID,
		Latitude:  *update.Latitude,
		Longitude: *update.Longitude,
	})

	return domain.LocationResult{Success: true, Room: room}
}

// Wait blocks until outstanding relay calls have finished.
func (l *LocationRelay) Wait() {
	l.wg.Wait()
}

// Close stops starting relay calls and waits for the outstanding ones.
// Positions received afterwards are still broadcast.
func (l *LocationRelay) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *LocationRelay) forward(payload domain.RelayPayload) {
	if l.client == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.log.Debug("Location relay skipped, relay is closed", "order_id", payload.OrderID.String())
		return
	}
	if !l.inflight.TryAcquire(1) {
		l.mu.Unlock()
		observability.RecordRelay(observability.RelaySaturated, 0)
		l.log.Warn("Location relay dropped",
			"order_id", payload.OrderID.String(),
			"error", errors.ErrRelaySaturated)
		return
	}
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer l.inflight.Release(1)
		defer func() {
			if r := recover(); r != nil {
				l.log.Error("Location relay panicked", "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		start := time.Now()
		err := l.client.Forward(ctx, payload)
		elapsed := time.Since(start)

		switch {
		case err == nil:
			observability.RecordRelay(observability.RelaySuccess, elapsed.Seconds())
			l.log.Debug("Location relayed",
				"order_id", payload.OrderID.String(),
				"driver_id", payload.DriverID.String(),
				"duration", elapsed)
		case stderrors.Is(err, errors.ErrRelayTimeout), stderrors.Is(err, context.DeadlineExceeded):
			observability.RecordRelay(observability.RelayTimeout, elapsed.Seconds())
			l.log.Warn("Location relay timed out",
				"order_id", payload.OrderID.String(),
				"timeout", l.timeout)
		default:
			observability.RecordRelay(observability.RelayFailure, elapsed.Seconds())
			l.log.Warn("Location relay failed",
				"order_id", payload.OrderID.String(),
				"error", err)
		}
	}()
}
