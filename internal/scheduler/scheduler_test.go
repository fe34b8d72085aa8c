package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SeatReserve/internal/domain"
	"github.com/stpnv0/SeatReserve/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesPastEvents(t *testing.T) {
	completer := mocks.NewMockEventCompleter(t)
	s := New(completer, 50*time.Millisecond, newTestLogger(t))

	done := []*domain.Event{{ID: "e1", Title: "Finished", Status: domain.EventStatusPast}}
	completer.EXPECT().CompletePastEvents(mock.Anything).Return(done, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockEventCompleter(t)
	s := New(completer, 50*time.Millisecond, newTestLogger(t))

	completer.EXPECT().CompletePastEvents(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_RunsImmediately(t *testing.T) {
	completer := mocks.NewMockEventCompleter(t)
	s := New(completer, time.Hour, newTestLogger(t))

	called := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completer.EXPECT().CompletePastEvents(mock.Anything).
		RunAndReturn(func(context.Context) ([]*domain.Event, error) {
			close(called)
			cancel()
			return nil, nil
		}).Once()

	go s.Start(ctx)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("first pass did not run before the first tick")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockEventCompleter(t)
	s := New(completer, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockEventCompleter(t)
	s := New(completer, 30*time.Millisecond, newTestLogger(t))

	completer.EXPECT().CompletePastEvents(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 3)
}
