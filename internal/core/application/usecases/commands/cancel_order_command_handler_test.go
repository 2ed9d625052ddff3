package commands_test

import (
	"context"
	"testing"
	"time"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelCourierRepository struct{ mock.Mock }

func (m *MockCancelCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCancelCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCancelCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCancelCourierRepository) GetAllFree(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockCancelOrderRepository struct{ mock.Mock }

func (m *MockCancelOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCancelOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCancelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockCancelOrderRepository) GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockCancelOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockCancelOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCancelUoW struct{ mock.Mock }

func (m *MockCancelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCancelUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "12 Baker St", "221B Baker St", 3.5, 154, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	courierRepo := new(MockCancelCourierRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	courierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AssignedOrderFreesCourier(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "12 Baker St", "221B Baker St", 3.5, 154, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, testOrder.Assign(courierID, time.Now().UTC()))

	testCourier, err := courier.NewCourier(courierID, "John Doe", courier.TransportBicycle)
	require.NoError(t, err)
	require.NoError(t, testCourier.Take(testOrder.ID()))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	courierRepo := new(MockCancelCourierRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.True(t, testCourier.IsFree())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "12 Baker St", "221B Baker St", 3.5, 154, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, testOrder.Assign(courierID, time.Now().UTC()))
	require.NoError(t, testOrder.PickUp(time.Now().UTC()))
	require.NoError(t, testOrder.StartTransit(time.Now().UTC()))
	require.NoError(t, testOrder.CompleteDelivery(time.Now().UTC()))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	courierRepo := new(MockCancelCourierRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockCancelUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
