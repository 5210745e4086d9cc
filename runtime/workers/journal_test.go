package workers

import (
	"context"
	"errors"
	"log/slog"
	"realtime-relay/domain"
	"realtime-relay/mocks"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournalWorker_Stores_Events_Until_Channel_Closed(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISessionRepository(ctrl)

	events := make(chan domain.SessionEvent, 2)
	first := domain.SessionEvent{Kind: domain.SessionIdentified, ConnectionID: "c1", At: time.Now()}
	second := domain.SessionEvent{Kind: domain.SessionDisconnected, ConnectionID: "c1", At: time.Now()}
	events <- first
	events <- second
	close(events)

	// Given the first store fails, the worker carries on
	gomock.InOrder(
		repo.EXPECT().Store(first).Return(errors.New("disk full")),
		repo.EXPECT().Store(second).Return(nil),
	)

	err := NewJournalWorker(log, repo, events).Run(context.Background())
	req.NoError(err)
}

func TestJournalWorker_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISessionRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewJournalWorker(log, repo, make(chan domain.SessionEvent)).Run(ctx)
	req.ErrorIs(err, context.Canceled)
}

func TestJournalWorker_Drains_Buffered_Events_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISessionRepository(ctrl)

	// Given five disconnect events queued before the worker is stopped
	events := make(chan domain.SessionEvent, 8)
	for i := 0; i < 5; i++ {
		events <- domain.SessionEvent{Kind: domain.SessionDisconnected, ConnectionID: "c1", At: time.Now()}
	}
	repo.EXPECT().Store(gomock.Any()).Return(nil).Times(5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When the worker runs with an already canceled context
	err := NewJournalWorker(log, repo, events).Run(ctx)

	// Then every buffered event is stored and nothing is left behind
	req.ErrorIs(err, context.Canceled)
	req.Empty(events)
}
