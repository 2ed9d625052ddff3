package ports

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its status, courier assignment,
	// and stage timestamps.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves the oldest order in Created status.
	// Used by the assignment workflow to find pending orders.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves all orders currently in progress with a courier
	// (Assigned, PickedUp, or InTransit).
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves all orders sorted by creation time.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
