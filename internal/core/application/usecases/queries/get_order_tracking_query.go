package queries

import (
	"errors"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the tracking view of a single order:
// its completion percentage and the per-stage step list.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderTrackingQueryHandler(db, cache, ttl, logger)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve tracking: %w", err)
//	}
//	fmt.Printf("Order is %d%% complete\n", tracking.Percentage)
type GetOrderTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking query for the given order.
// Validates that the order ID is valid.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	query := GetOrderTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTrackingQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.orderID = id
	return nil
}

// GetOrderTrackingQueryResponse is the tracking read model of one order.
// Steps always cover the five canonical stages in order; a cancelled order
// has no current step and keeps the percentage it reached before
// cancellation.
type GetOrderTrackingQueryResponse struct {
	OrderID     string                 `json:"orderId"`
	Status      string                 `json:"status"`
	StatusLabel string                 `json:"statusLabel"`
	Percentage  int                    `json:"percentage"`
	Steps       []TrackingStepResponse `json:"steps"`
}

// TrackingStepResponse is one stage of the tracking read model.
type TrackingStepResponse struct {
	Status    string     `json:"status"`
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
