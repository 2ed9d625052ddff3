package services

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch: either no couriers were provided or none of them are free.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service responsible for finding and assigning
// the optimal courier for a delivery order based on shortest estimated
// delivery time.
//
// Business rules:
//   - Orders must be valid and assignable before dispatch
//   - Only free couriers are considered
//   - Selection prioritizes minimum delivery time for the order's distance
//   - Order and courier are updated together: the selected courier takes the
//     order and the order is assigned to the courier
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds the optimal courier for the given order and executes the
// assignment workflow, stamping the assignment at the given time.
//
// Returns ErrCourierNotFound if no free courier exists, or a validation or
// assignment error.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	couriers []*courier.Courier,
	at time.Time,
) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(o, couriers)
	if err != nil {
		return nil, err
	}

	if err = best.Take(o.ID()); err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID(), at); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier selects the free courier with the minimum estimated
// delivery time for the order's distance.
func (d OrderDispatcher) findBestCourier(
	o *order.Order,
	couriers []*courier.Courier,
) (*courier.Courier, error) {
	var best *courier.Courier
	var bestTime time.Duration

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsFree() {
			continue
		}

		deliveryTime, err := c.DeliveryTime(o.DistanceKM())
		if err != nil {
			return nil, err
		}

		if best == nil || deliveryTime < bestTime {
			best = c
			bestTime = deliveryTime
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}
