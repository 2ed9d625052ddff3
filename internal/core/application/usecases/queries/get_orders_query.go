// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/domain/services"
	"delivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list filtered by status and sorted by
// the requested key. The filter accepts every status, the "active" shorthand
// for orders currently with a courier, or a single specific status.
//
// Example:
//
//	filter, _ := services.ParseStatusFilter("active")
//	query := NewGetOrdersQuery(filter, services.SortKeyPrice, services.SortAscending)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct {
	filter    services.StatusFilter
	sortKey   services.SortKey
	direction services.SortDirection

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list with the given filter
// and sort settings.
func NewGetOrdersQuery(
	filter services.StatusFilter,
	sortKey services.SortKey,
	direction services.SortDirection,
) GetOrdersQuery {
	return GetOrdersQuery{
		filter:    filter,
		sortKey:   sortKey,
		direction: direction,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the status filter of the query.
func (q GetOrdersQuery) Filter() services.StatusFilter {
	return q.filter
}

// SortKey returns the sort key of the query.
func (q GetOrdersQuery) SortKey() services.SortKey {
	return q.sortKey
}

// Direction returns the sort direction of the query.
func (q GetOrdersQuery) Direction() services.SortDirection {
	return q.direction
}

// GetOrdersQueryResponse represents one order in the list read model.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CourierID       *kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	DistanceKM      float64
	Price           float64
	Status          order.Status
	CreatedAt       time.Time
}
