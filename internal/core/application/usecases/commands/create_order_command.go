package commands

import (
	"errors"
	"fmt"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrDistanceIsInvalid         = errors.New("distance must not be negative")
	ErrPriceIsInvalid            = errors.New("price must not be negative")
)

// CreateOrderCommand represents a request to create a new delivery order.
// Encapsulates order details: the customer, pickup and delivery addresses,
// delivery distance, and price.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    "12 Baker Street", "221B Baker Street", 3.5, 154)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	pickupAddress   string
	deliveryAddress string
	distanceKM      float64
	price           float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that both IDs are valid, addresses are not empty, and distance
// and price are non-negative. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	distanceKM float64,
	price float64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setPickupAddress(pickupAddress),
		command.setDeliveryAddress(deliveryAddress),
		command.setDistanceKM(distanceKM),
		command.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer ID from the command.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the pickup address from the command.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery address from the command.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DistanceKM returns the delivery distance from the command.
func (c CreateOrderCommand) DistanceKM() float64 {
	return c.distanceKM
}

// Price returns the order price from the command.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customer ID: %w", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setDistanceKM(distanceKM float64) error {
	if distanceKM < 0 {
		return ErrDistanceIsInvalid
	}
	c.distanceKM = distanceKM
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}
