// Package courier provides domain entities and business logic for courier management
// in the delivery platform. It implements the Courier aggregate root with availability
// tracking and delivery-time estimation.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity, availability, and current order
//   - Transport: A value object describing the courier's vehicle and its average speed
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and transport
//   - A courier carries at most one order at a time
//   - Delivery time estimates derive from the transport's average speed and the order distance
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
