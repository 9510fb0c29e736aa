package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressTestOrder(t *testing.T, tailorID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItemDesign(kernel.NewUUID(), "Agbada", "", nil, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), false,
		[]order.ItemDesign{item}, "", time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)
	require.NoError(t, o.AssignTailor(tailorID))
	return o
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	workingTailor, err := tailor.RestoreTailor(kernel.NewUUID(), "Chinedu Eze", nil, 3, 1)
	require.NoError(t, err)
	testOrder := inProgressTestOrder(t, workingTailor.ID())

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		tailorRepo.On("Get", ctx, workingTailor.ID()).Return(workingTailor, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tailorRepo.On("Update", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, 0, workingTailor.ActiveOrders())
	orderRepo.AssertExpectations(t)
	tailorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteOrderCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewItemDesign(kernel.NewUUID(), "Agbada", "", nil, nil)
	require.NoError(t, err)
	awaiting, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), false,
		[]order.ItemDesign{item}, "", time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)

	cmd, err := commands.NewCompleteOrderCommand(awaiting.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		orderRepo.On("Get", ctx, awaiting.ID()).Return(awaiting, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.AwaitingAssignment, awaiting.Status())
}

func TestNewCompleteOrderCommand_InvalidID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewCompleteOrderCommand(invalidID)

	require.Error(t, err)
}
