package order

import (
	"errors"
	"fmt"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from creation through courier assignment to delivery.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for the order and the customer
//   - Pickup and delivery addresses must be non-empty
//   - Distance and price must be non-negative
//   - Status transitions follow the canonical sequence defined by Status
//   - Stage timestamps are monotonically non-decreasing along the canonical
//     sequence; reaching a stage stamps its timestamp
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// pickupAddress is where the courier collects the order
	pickupAddress string

	// deliveryAddress is the destination
	deliveryAddress string

	// distanceKM is the delivery distance in kilometers
	distanceKM float64

	// price is the order price
	price float64

	// status represents the current state in the order lifecycle
	status Status

	// Stage timestamps. createdAt is always set; the rest are stamped as
	// the order reaches each stage.
	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh order, ensuring all business invariants are maintained.
//
// The order is created in Created status with no courier assigned and its
// creation timestamp set to createdAt.
//
// Returns a validation error if any identifier is invalid, an address is
// empty, or distance/price is negative.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	distanceKM float64,
	price float64,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPickupAddress(pickupAddress),
		order.setDeliveryAddress(deliveryAddress),
		order.setDistanceKM(distanceKM),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts any valid status and the full set of stage
// timestamps, preserving the order's state at the time of persistence.
//
// Timestamp gaps relative to the status (possible for data written before
// a stage was recorded) are tolerated here; consumers that derive tracking
// views degrade gracefully instead of failing.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierID *kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	distanceKM float64,
	price float64,
	status Status,
	timestamps Timestamps,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPickupAddress(pickupAddress),
		order.setDeliveryAddress(deliveryAddress),
		order.setDistanceKM(distanceKM),
		order.setPrice(price),
		order.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	order.createdAt = timestamps.CreatedAt.UTC()
	order.assignedAt = timestamps.AssignedAt
	order.pickedUpAt = timestamps.PickedUpAt
	order.inTransitAt = timestamps.InTransitAt
	order.deliveredAt = timestamps.DeliveredAt
	order.cancelledAt = timestamps.CancelledAt

	return order, nil
}

// Timestamps carries the per-stage timestamps of an order across the
// persistence boundary. CreatedAt is mandatory; the rest are optional.
type Timestamps struct {
	CreatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// PickupAddress returns the address where the courier collects the order.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DistanceKM returns the delivery distance in kilometers.
func (o *Order) DistanceKM() float64 {
	return o.distanceKM
}

// Price returns the order price.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CancelledAt returns the cancellation timestamp, or nil if the order was
// not cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// StageTimestamp returns the timestamp recorded for a canonical stage and
// whether it is present. Cancelled and Unknown are not canonical stages and
// always report absent.
func (o *Order) StageTimestamp(status Status) (time.Time, bool) {
	var ts *time.Time
	switch status {
	case Created:
		return o.createdAt, true
	case Assigned:
		ts = o.assignedAt
	case PickedUp:
		ts = o.pickedUpAt
	case InTransit:
		ts = o.inTransitAt
	case Delivered:
		ts = o.deliveredAt
	default:
		return time.Time{}, false
	}

	if ts == nil {
		return time.Time{}, false
	}
	return *ts, true
}

// ValidateAssign checks whether the order can currently be assigned to a courier.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign assigns the order to a courier, updates the status to Assigned, and
// stamps the assignment timestamp.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be in Created or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
func (o *Order) Assign(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.assignedAt = o.stamp(at)
	return nil
}

// PickUp marks the order as collected at the pickup address.
// The order must be in Assigned status.
func (o *Order) PickUp(at time.Time) error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickedUpAt = o.stamp(at)
	return nil
}

// StartTransit marks the order as on its way to the delivery address.
// The order must be in PickedUp status.
func (o *Order) StartTransit(at time.Time) error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.inTransitAt = o.stamp(at)
	return nil
}

// CompleteDelivery marks the order as delivered.
// The order must be in InTransit status. Delivered is a final state.
func (o *Order) CompleteDelivery(at time.Time) error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = o.stamp(at)
	return nil
}

// Advance moves the order to the next stage in the canonical sequence and
// stamps the corresponding timestamp. Created orders cannot be advanced this
// way: assignment requires a courier and goes through Assign.
func (o *Order) Advance(at time.Time) error {
	switch o.status {
	case Assigned:
		return o.PickUp(at)
	case PickedUp:
		return o.StartTransit(at)
	case InTransit:
		return o.CompleteDelivery(at)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be advanced", o.status.String()),
		)
	}
}

// Cancel cancels the order from any non-terminal status and stamps the
// cancellation timestamp. Stage timestamps recorded before cancellation are
// preserved so tracking views can report the progress reached.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = o.stamp(at)
	return nil
}

// stamp normalizes a lifecycle timestamp and clamps it so stage timestamps
// never decrease, even when callers pass a clock reading that lags a
// previously recorded stage.
func (o *Order) stamp(at time.Time) *time.Time {
	ts := at.UTC()
	if last, ok := o.lastStageTime(); ok && ts.Before(last) {
		ts = last
	}
	return &ts
}

// lastStageTime returns the latest stage timestamp recorded so far.
func (o *Order) lastStageTime() (time.Time, bool) {
	last := o.createdAt
	found := !last.IsZero()
	for _, ts := range []*time.Time{o.assignedAt, o.pickedUpAt, o.inTransitAt, o.deliveredAt, o.cancelledAt} {
		if ts != nil && ts.After(last) {
			last = *ts
			found = true
		}
	}
	return last, found
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setPickupAddress validates and sets the pickup address.
func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	o.pickupAddress = address
	return nil
}

// setDeliveryAddress validates and sets the delivery address.
func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

// setDistanceKM validates and sets the delivery distance.
// Distance must be non-negative.
func (o *Order) setDistanceKM(distanceKM float64) error {
	if distanceKM < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%f is negative", distanceKM))
	}
	o.distanceKM = distanceKM
	return nil
}

// setPrice validates and sets the order price.
// Price must be non-negative.
func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	o.price = price
	return nil
}

// setStatus validates and sets the status together with the courier
// reference during restoration from persistence.
func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	o.status = status
	o.courierID = courierID
	return nil
}
