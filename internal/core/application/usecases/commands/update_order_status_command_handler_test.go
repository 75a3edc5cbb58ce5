package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func persistedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateOrderNumber(time.Now()),
		validSubmission(),
	)
	require.NoError(t, err)
	return o
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("rejects_status_outside_enumeration", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "shipped", order.AdminUpdate{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_value_order_id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, "confirmed", order.AdminUpdate{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := persistedOrder(t)
	driver := "Deniz"

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), "on_the_way", order.AdminUpdate{
		AssignedDriver: &driver,
	})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("OrderUpdated", existing).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusOnTheWay, updated.Status())
	assert.Equal(t, driver, updated.AssignedDriver())
	assert.WithinDuration(t, time.Now(), updated.UpdatedAt(), time.Second)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	notFound := errs.NewObjectNotFoundError("order", id.String())

	cmd, err := commands.NewUpdateOrderStatusCommand(id, "confirmed", order.AdminUpdate{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(nil, notFound).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "OrderUpdated", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	var cmd commands.UpdateOrderStatusCommand

	h := commands.NewUpdateOrderStatusCommandHandler(new(MockOrderUoWFactory), new(MockEventPublisher))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
