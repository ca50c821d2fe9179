package commands_test

import (
	"errors"
	"testing"

	"orderagent/internal/core/application/usecases/commands"
	"orderagent/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validCustomer, validItems)

	store := new(MockOrderStore)
	scheduler := new(MockDispatchScheduler)
	mock.InOrder(
		store.On("Put", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		scheduler.On("Schedule", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(store, scheduler)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	store.AssertExpectations(t)
	scheduler.AssertExpectations(t)

	// The persisted aggregate carries the intake payloads in status "new".
	stored := store.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, stored.ID().IsEqual(orderID))
	assert.Equal(t, validCustomer, stored.Customer())
	assert.Equal(t, validItems, stored.Items())
	assert.Equal(t, order.New, stored.Status())
	assert.Equal(t, 1, stored.DispatchSeq())

	// The scheduled snapshot is the same freshly stored order.
	scheduled := scheduler.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, scheduled.IsEqual(stored))
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	store := new(MockOrderStore)
	scheduler := new(MockDispatchScheduler)

	h := commands.NewCreateOrderCommandHandler(store, scheduler)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PutError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validCustomer, validItems)

	store := new(MockOrderStore)
	store.On("Put", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("disk full")).Once()
	scheduler := new(MockDispatchScheduler)

	h := commands.NewCreateOrderCommandHandler(store, scheduler)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	// No dispatch is scheduled for an order that was never persisted.
	scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ScheduleError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validCustomer, validItems)

	store := new(MockOrderStore)
	scheduler := new(MockDispatchScheduler)
	mock.InOrder(
		store.On("Put", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		scheduler.On("Schedule", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("queue closed")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(store, scheduler)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	store.AssertExpectations(t)
	scheduler.AssertExpectations(t)
}
