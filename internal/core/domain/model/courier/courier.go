package courier

import (
	"errors"
	"fmt"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsBusy is returned when a busy courier is asked to take another order.
	ErrCourierIsBusy = errors.New("courier is busy")
	// ErrCourierIsFree is returned when freeing a courier that has no current order.
	ErrCourierIsFree = errors.New("courier is not carrying an order")
)

// CourierStatus represents the availability of a courier.
type CourierStatus int

const (
	// CourierStatusUnknown represents an invalid or undefined courier status.
	CourierStatusUnknown CourierStatus = iota

	// CourierStatusFree indicates the courier is available for assignment.
	CourierStatusFree

	// CourierStatusBusy indicates the courier is carrying an order.
	CourierStatusBusy
)

// String returns the wire name of the courier status.
func (s CourierStatus) String() string {
	switch s {
	case CourierStatusFree:
		return "FREE"
	case CourierStatusBusy:
		return "BUSY"
	default:
		return "UNKNOWN"
	}
}

// Validate checks if the CourierStatus value is valid.
func (s CourierStatus) Validate() error {
	if s != CourierStatusFree && s != CourierStatusBusy {
		return errs.NewValueIsInvalidErrorWithCause("courier status is invalid",
			fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability, and
// delivery-time estimation.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and valid transport
//   - A free courier can take exactly one order at a time
//   - A busy courier must be freed before taking another order
//   - Delivery time estimates derive from the transport's average speed
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// transport determines the courier's average speed
	transport Transport
	// status is the courier's current availability
	status CourierStatus
	// currentOrderID references the order the courier is carrying (nil when free)
	currentOrderID *kernel.UUID
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// The courier starts free with no current order.
//
// Returns a validation error if the ID is invalid, the name is empty, or the
// transport is not recognized. Multiple validation failures are aggregated.
func NewCourier(id kernel.UUID, name string, transport Transport) (*Courier, error) {
	courier := &Courier{
		status: CourierStatusFree,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setTransport(transport),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability and current order at the time of persistence.
func RestoreCourier(
	id kernel.UUID,
	name string,
	transport Transport,
	status CourierStatus,
	currentOrderID *kernel.UUID,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setTransport(transport),
		courier.setStatus(status, currentOrderID),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate ensures the Courier instance was properly constructed through a
// constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Transport returns the courier's transport.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Status returns the courier's current availability.
func (c *Courier) Status() CourierStatus {
	return c.status
}

// CurrentOrder returns the ID of the order the courier is carrying,
// or nil if the courier is free.
func (c *Courier) CurrentOrder() *kernel.UUID {
	return c.currentOrderID
}

// IsFree reports whether the courier is available for assignment.
func (c *Courier) IsFree() bool {
	return c.status == CourierStatusFree
}

// DeliveryTime estimates how long the courier needs to deliver an order over
// the given distance, based on the transport's average speed.
func (c *Courier) DeliveryTime(distanceKM float64) (time.Duration, error) {
	if distanceKM < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%f is negative", distanceKM))
	}

	hours := distanceKM / c.transport.SpeedKMH()
	return time.Duration(hours * float64(time.Hour)), nil
}

// Take marks the courier busy with the given order.
// Returns ErrCourierIsBusy if the courier is already carrying an order.
func (c *Courier) Take(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if c.status == CourierStatusBusy {
		return ErrCourierIsBusy
	}

	c.status = CourierStatusBusy
	c.currentOrderID = &orderID
	return nil
}

// Free releases the courier after a delivery is completed or cancelled.
// Returns ErrCourierIsFree if the courier is not carrying an order.
func (c *Courier) Free() error {
	if c.status != CourierStatusBusy {
		return ErrCourierIsFree
	}

	c.status = CourierStatusFree
	c.currentOrderID = nil
	return nil
}

// setID validates and sets the courier's unique identifier.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setTransport validates and sets the courier's transport.
func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}

// setStatus validates and sets the availability together with the current
// order reference during restoration from persistence.
func (c *Courier) setStatus(status CourierStatus, currentOrderID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == CourierStatusBusy && currentOrderID == nil {
		return errs.NewValueIsRequiredError("current order for busy courier")
	}
	if status == CourierStatusFree && currentOrderID != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier status is invalid",
			fmt.Errorf("free courier cannot carry order %s", currentOrderID.String()))
	}
	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	c.currentOrderID = currentOrderID
	return nil
}
