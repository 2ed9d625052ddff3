package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles order cancellation.
// Marks the order as cancelled and releases its courier, if one was assigned,
// so the courier becomes available for new orders.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Loads the order, cancels it with the current timestamp, and frees the
// assigned courier. All updates happen in one transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if aggregate.Courier() != nil {
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
