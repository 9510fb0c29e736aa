package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignTailorRepository struct{ mock.Mock }

func (m *MockAssignTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAssignTailorRepository) Update(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAssignTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockAssignTailorRepository) GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tailor.Tailor), args.Error(1)
}

type MockAssignOrderRepository struct{ mock.Mock }

func (m *MockAssignOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetFirstInAwaitingAssignment(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductionUoW struct{ mock.Mock }

func (m *MockProductionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockProductionUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionUoW)
}

func awaitingTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItemDesign(kernel.NewUUID(), "Agbada", "", nil, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), false,
		[]order.ItemDesign{item}, "", time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)
	return o
}

func TestAssignTailorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	testOrder := awaitingTestOrder(t)
	testTailor, err := tailor.NewTailor(kernel.NewUUID(), "Chinedu Eze", nil)
	require.NoError(t, err)
	testTailors := []*tailor.Tailor{testTailor}

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(testOrder, nil).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return(testTailors, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tailorRepo.On("Update", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
	assert.Equal(t, 1, testTailor.ActiveOrders())
	orderRepo.AssertExpectations(t)
	tailorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignTailorCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignTailorCommand{} // not constructed properly

	factory := new(MockProductionUoWFactory)
	handler := commands.NewAssignTailorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignTailorCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignTailorCommandHandler_Handle_NoOrderFound(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoOrderFound)
}

func TestAssignTailorCommandHandler_Handle_NoFreeTailors(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	testOrder := awaitingTestOrder(t)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(testOrder, nil).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoFreeTailorsFound)
}

func TestAssignTailorCommandHandler_Handle_UpdateOrderError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	testOrder := awaitingTestOrder(t)
	testTailor, err := tailor.NewTailor(kernel.NewUUID(), "Chinedu Eze", nil)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(testOrder, nil).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{testTailor}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}

func TestAssignTailorCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	testOrder := awaitingTestOrder(t)
	testTailor, err := tailor.NewTailor(kernel.NewUUID(), "Chinedu Eze", nil)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(testOrder, nil).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{testTailor}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tailorRepo.On("Update", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}

func TestAssignTailorCommandHandler_Handle_LeastLoadedTailorWins(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignTailorCommand()

	testOrder := awaitingTestOrder(t)

	busyTailor, err := tailor.RestoreTailor(kernel.NewUUID(), "Chinedu Eze", nil, 3, 2)
	require.NoError(t, err)
	freeTailorID := kernel.NewUUID()
	freeTailor, err := tailor.RestoreTailor(freeTailorID, "Amara Obi", nil, 3, 0)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	tailorRepo := new(MockAssignTailorRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInAwaitingAssignment", ctx).Return(testOrder, nil).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{busyTailor, freeTailor}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tailorRepo.On("Update", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updateCall := tailorRepo.Calls[1]
	updatedTailor := updateCall.Arguments[1].(*tailor.Tailor)
	assert.Equal(t, freeTailorID, updatedTailor.ID())
}
