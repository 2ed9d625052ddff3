package queries

import (
	"context"
	"database/sql"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list from the database.
// Restores full aggregates so that filtering and sorting run through the
// domain services and stay consistent with the rest of the system.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery(services.StatusFilterAll(), services.SortKeyDate, services.SortDescending)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the filtered and sorted order list.
// Orders come from the database sorted by creation time; the requested filter
// and sort are applied on top through the domain services.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			courier_id,
			pickup_address,
			delivery_address,
			distance_km,
			price,
			status,
			created_at,
			assigned_at,
			picked_up_at,
			in_transit_at,
			delivered_at,
			cancelled_at
		FROM orders
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		aggregate, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	orders = services.FilterOrders(orders, query.Filter())
	orders = services.SortOrders(orders, query.SortKey(), query.Direction())

	responses := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, GetOrdersQueryResponse{
			ID:              aggregate.ID(),
			CustomerID:      aggregate.CustomerID(),
			CourierID:       aggregate.Courier(),
			PickupAddress:   aggregate.PickupAddress(),
			DeliveryAddress: aggregate.DeliveryAddress(),
			DistanceKM:      aggregate.DistanceKM(),
			Price:           aggregate.Price(),
			Status:          aggregate.Status(),
			CreatedAt:       aggregate.CreatedAt(),
		})
	}

	return responses, nil
}

func scanOrder(rows *sql.Rows) (*order.Order, error) {
	var (
		id              uuid.UUID
		customerID      uuid.UUID
		courierID       uuid.NullUUID
		pickupAddress   string
		deliveryAddress string
		distanceKM      float64
		price           float64
		status          int
		createdAt       time.Time
		assignedAt      sql.NullTime
		pickedUpAt      sql.NullTime
		inTransitAt     sql.NullTime
		deliveredAt     sql.NullTime
		cancelledAt     sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&courierID,
		&pickupAddress,
		&deliveryAddress,
		&distanceKM,
		&price,
		&status,
		&createdAt,
		&assignedAt,
		&pickedUpAt,
		&inTransitAt,
		&deliveredAt,
		&cancelledAt,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	orderCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}

	var orderCourierID *kernel.UUID
	if courierID.Valid {
		cid, cidErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if cidErr != nil {
			return nil, cidErr
		}
		orderCourierID = &cid
	}

	return order.RestoreOrder(
		orderID,
		orderCustomerID,
		orderCourierID,
		pickupAddress,
		deliveryAddress,
		distanceKM,
		price,
		order.Status(status),
		order.Timestamps{
			CreatedAt:   createdAt,
			AssignedAt:  nullTimePtr(assignedAt),
			PickedUpAt:  nullTimePtr(pickedUpAt),
			InTransitAt: nullTimePtr(inTransitAt),
			DeliveredAt: nullTimePtr(deliveredAt),
			CancelledAt: nullTimePtr(cancelledAt),
		},
	)
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time.UTC()
	return &value
}
