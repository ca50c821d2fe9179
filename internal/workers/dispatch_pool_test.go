package workers_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"orderagent/internal/core/application/usecases/commands"
	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"
	"orderagent/internal/workers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderStore is a mock implementation of ports.OrderStore.
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Put(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderStore) Patch(ctx context.Context, id kernel.UUID, patch order.Patch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int), args.Error(1)
}

// MockCourierClient is a mock implementation of ports.CourierClient.
type MockCourierClient struct {
	mock.Mock
}

func (m *MockCourierClient) Send(ctx context.Context, request ports.DispatchRequest) (ports.DispatchResult, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.DispatchResult), args.Error(1)
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		json.RawMessage(`{"name":"Alice"}`),
		json.RawMessage(`["pizza"]`),
	)
	require.NoError(t, err)
	return aggregate
}

func newPool(store *MockOrderStore, courier *MockCourierClient, workerCount, queueSize int) *workers.DispatchPool {
	logger := slog.New(slog.DiscardHandler)
	handler := commands.NewDispatchOrderCommandHandler(store, courier, logger)
	return workers.NewDispatchPool(handler, workerCount, queueSize, logger)
}

func TestDispatchPool_ProcessesScheduledAttempt(t *testing.T) {
	// Given
	store := new(MockOrderStore)
	courier := new(MockCourierClient)
	aggregate := newOrder(t)

	patched := make(chan struct{})
	courier.On("Send", mock.Anything, mock.AnythingOfType("ports.DispatchRequest")).
		Return(ports.DispatchResult{TrackingID: "courier-42"}, nil).Once()
	store.On("Patch", mock.Anything, aggregate.ID(), mock.AnythingOfType("order.Patch")).
		Run(func(mock.Arguments) { close(patched) }).
		Return(true, nil).Once()

	pool := newPool(store, courier, 2, 8)
	pool.Start()
	defer pool.Stop()

	// When
	require.NoError(t, pool.Schedule(t.Context(), aggregate))

	// Then
	select {
	case <-patched:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch attempt was not processed")
	}

	patch := store.Calls[0].Arguments.Get(2).(order.Patch)
	require.NotNil(t, patch.Status)
	assert.Equal(t, order.SentToCourier, *patch.Status)
	require.NotNil(t, patch.IfDispatchSeq)
	assert.Equal(t, aggregate.DispatchSeq(), *patch.IfDispatchSeq)

	store.AssertExpectations(t)
	courier.AssertExpectations(t)
}

func TestDispatchPool_ProcessesAttemptsQueuedBeforeStart(t *testing.T) {
	store := new(MockOrderStore)
	courier := new(MockCourierClient)

	processed := make(chan struct{}, 3)
	courier.On("Send", mock.Anything, mock.Anything).
		Return(ports.DispatchResult{TrackingID: "t"}, nil).Times(3)
	store.On("Patch", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { processed <- struct{}{} }).
		Return(true, nil).Times(3)

	pool := newPool(store, courier, 1, 8)

	for range 3 {
		require.NoError(t, pool.Schedule(t.Context(), newOrder(t)))
	}

	pool.Start()
	defer pool.Stop()

	for range 3 {
		select {
		case <-processed:
		case <-time.After(2 * time.Second):
			t.Fatal("queued attempt was not processed after start")
		}
	}
}

func TestDispatchPool_Schedule_RejectsNonDispatchableOrder(t *testing.T) {
	trackingID := "courier-42"
	sent, err := order.RestoreOrder(
		kernel.NewUUID(),
		json.RawMessage(`{"name":"Alice"}`),
		json.RawMessage(`["pizza"]`),
		order.SentToCourier,
		&trackingID,
		nil,
		1,
	)
	require.NoError(t, err)

	pool := newPool(new(MockOrderStore), new(MockCourierClient), 1, 1)

	err = pool.Schedule(t.Context(), sent)
	require.Error(t, err)
}

func TestDispatchPool_Schedule_GivesUpOnFullQueueWhenContextEnds(t *testing.T) {
	// Pool is never started, so the single queue slot stays occupied
	pool := newPool(new(MockOrderStore), new(MockCourierClient), 1, 1)

	require.NoError(t, pool.Schedule(t.Context(), newOrder(t)))

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	err := pool.Schedule(ctx, newOrder(t))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatchPool_Stop_BeforeStartIsNoOp(t *testing.T) {
	pool := newPool(new(MockOrderStore), new(MockCourierClient), 1, 1)

	pool.Stop()
}
