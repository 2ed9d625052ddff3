// Package order provides domain entities and business logic for order management
// in the delivery platform. It implements the Order aggregate root with lifecycle
// management, state transitions, and per-stage timestamps.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have valid identifiers, non-empty addresses, and non-negative distance and price
//   - Order status follows the canonical sequence: Created -> Assigned -> PickedUp -> InTransit -> Delivered
//   - Cancellation is possible from any non-terminal status and preserves progress timestamps
//   - Reaching a stage stamps its timestamp; timestamps never decrease along the sequence
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
