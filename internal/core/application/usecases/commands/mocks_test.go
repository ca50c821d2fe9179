package commands_test

import (
	"context"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Patch(ctx context.Context, id kernel.UUID, patch order.Patch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	if counts := args.Get(0); counts != nil {
		return counts.(map[order.Status]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDispatchScheduler struct{ mock.Mock }

func (m *MockDispatchScheduler) Schedule(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockCourierClient struct{ mock.Mock }

func (m *MockCourierClient) Send(ctx context.Context, req ports.DispatchRequest) (ports.DispatchResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.DispatchResult), args.Error(1)
}
