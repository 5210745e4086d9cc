package services

import (
	"context"
	stderrors "errors"
	"realtime-relay/domain"
	"realtime-relay/mocks"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validUpdate() domain.LocationUpdate {
	return domain.LocationUpdate{
		OrderID:   domain.NewNumericID(12),
		DriverID:  domain.NewID("d-3"),
		Latitude:  lo.ToPtr(48.85),
		Longitude: lo.ToPtr(2.35),
	}
}

func TestLocationRelay_Broadcasts_And_Forwards(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)
	watcher := f.connect("c1", "1", domain.ActorClient)
	f.router.Join("c1", "order-12")

	client.EXPECT().
		Forward(gomock.Any(), domain.RelayPayload{
			DriverID:  domain.NewID("d-3"),
			OrderID:   domain.NewNumericID(12),
			Latitude:  48.85,
			Longitude: 2.35,
		}).
		Return(nil).
		Times(1)

	relay := NewLocationRelay(f.log, f.router, client, time.Second, 4)
	res := relay.Relay(context.Background(), validUpdate())
	relay.Wait()

	req.Equal(domain.LocationResult{Success: true, Room: "order-12"}, res)
	events := watcher.events()
	req.Len(events, 1)
	req.Equal(domain.EventDriverLocation, events[0].Event)
	broadcast := events[0].Payload.(domain.LocationBroadcast)
	req.Equal(48.85, broadcast.Latitude)
	req.NotEmpty(broadcast.Timestamp)
}

func TestLocationRelay_Hanging_Endpoint_Does_Not_Block(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)

	// Given an endpoint that would hang for 10s
	client.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RelayPayload) error {
			select {
			case <-time.After(10 * time.Second):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}).
		Times(1)

	relay := NewLocationRelay(f.log, f.router, client, 200*time.Millisecond, 4)

	// When a position is relayed
	start := time.Now()
	res := relay.Relay(context.Background(), validUpdate())
	elapsed := time.Since(start)

	// Then the handler answers right away with success
	req.True(res.Success)
	req.Less(elapsed, 100*time.Millisecond)

	// And the detached call is abandoned at its timeout
	waited := make(chan struct{})
	go func() {
		relay.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		req.Fail("relay call was not bounded by its timeout")
	}
}

func TestLocationRelay_Failure_Is_Swallowed(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)
	client.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(stderrors.New("connection refused")).Times(1)

	relay := NewLocationRelay(f.log, f.router, client, time.Second, 4)
	res := relay.Relay(context.Background(), validUpdate())
	relay.Wait()

	req.Equal(domain.LocationResult{Success: true, Room: "order-12"}, res)
}

func TestLocationRelay_Saturated_Drops_Without_Blocking(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)

	release := make(chan struct{})
	var calls sync.WaitGroup
	calls.Add(1)
	// Only one call fits in flight; the second update is dropped
	client.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RelayPayload) error {
			calls.Done()
			<-release
			return nil
		}).
		Times(1)

	relay := NewLocationRelay(f.log, f.router, client, time.Second, 1)
	req.True(relay.Relay(context.Background(), validUpdate()).Success)
	calls.Wait()
	req.True(relay.Relay(context.Background(), validUpdate()).Success)

	close(release)
	relay.Wait()
}

func TestLocationRelay_Malformed_Update(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)
	client.EXPECT().Forward(gomock.Any(), gomock.Any()).Times(0)
	relay := NewLocationRelay(f.log, f.router, client, time.Second, 4)

	missingOrder := validUpdate()
	missingOrder.OrderID = domain.ID{}
	missingLatitude := validUpdate()
	missingLatitude.Latitude = nil
	missingDriver := validUpdate()
	missingDriver.DriverID = domain.ID{}

	for name, update := range map[string]domain.LocationUpdate{
		"missing order":    missingOrder,
		"missing latitude": missingLatitude,
		"missing driver":   missingDriver,
	} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			res := relay.Relay(context.Background(), update)
			req.False(res.Success)
			req.NotEmpty(res.Error)
			req.Empty(res.Room)
		})
	}
}

func TestLocationRelay_Without_Client_Only_Broadcasts(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	watcher := f.connect("c1", "1", domain.ActorAdmin)
	f.router.Join("c1", "order-12")

	res := NewLocationRelay(f.log, f.router, nil, 0, 0).Relay(context.Background(), validUpdate())

	req.True(res.Success)
	req.Len(watcher.events(), 1)
}

func TestLocationRelay_Accepts_Any_Coordinates(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)
	client.EXPECT().Forward(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Given a position outside the usual latitude and longitude bounds
	update := validUpdate()
	update.Latitude = lo.ToPtr(123.0)
	update.Longitude = lo.ToPtr(200.0)

	relay := NewLocationRelay(f.log, f.router, client, time.Second, 4)
	res := relay.Relay(context.Background(), update)
	relay.Wait()

	// Then it is relayed like any other position
	req.Equal(domain.LocationResult{Success: true, Room: "order-12"}, res)
}

func TestLocationRelay_Close_Stops_Forwarding(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockIRelayClient(ctrl)
	watcher := f.connect("c1", "1", domain.ActorClient)
	f.router.Join("c1", "order-12")

	release := make(chan struct{})
	started := make(chan struct{})
	client.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RelayPayload) error {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	// Given one relay call in flight
	relay := NewLocationRelay(f.log, f.router, client, time.Second, 4)
	req.True(relay.Relay(context.Background(), validUpdate()).Success)
	<-started

	closed := make(chan struct{})
	go func() {
		relay.Close()
		close(closed)
	}()

	// When positions keep arriving while the relay closes
	req.Eventually(func() bool {
		relay.mu.Lock()
		defer relay.mu.Unlock()
		return relay.closed
	}, time.Second, 5*time.Millisecond)
	for i := 0; i < 10; i++ {
		req.True(relay.Relay(context.Background(), validUpdate()).Success)
	}

	// Then Close waits for the call in flight and no new call is started
	select {
	case <-closed:
		req.Fail("Close should wait for the call in flight")
	default:
	}
	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		req.Fail("Close should return once the call in flight is done")
	}
	req.Len(watcher.events(), 11)
}
