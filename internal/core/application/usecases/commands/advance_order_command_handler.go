package commands

import (
	"context"
	"time"

	"delivery/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles order lifecycle progression.
// Moves an order one step forward and, when the order reaches "delivered"
// status, releases its courier for new assignments.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order progression operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order progression command.
// Loads the order, advances its status with the current timestamp, and frees
// the courier when delivery completes. All updates happen in one transaction.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(time.Now().UTC()); err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered && aggregate.Courier() != nil {
		assignedCourier, courierErr := courierRepo.Get(ctx, *aggregate.Courier())
		if courierErr != nil {
			return courierErr
		}

		if courierErr = assignedCourier.Free(); courierErr != nil {
			return courierErr
		}

		if courierErr = courierRepo.Update(ctx, assignedCourier); courierErr != nil {
			return courierErr
		}
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
