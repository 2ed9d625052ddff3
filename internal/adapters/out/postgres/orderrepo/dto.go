// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string
	DeliveryAddress string
	DistanceKM      float64 `gorm:"column:distance_km"`
	Price           float64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	InTransitAt     *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and the
// per-stage timestamps.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CourierID:       courierID,
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DistanceKM:      aggregate.DistanceKM(),
		Price:           aggregate.Price(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		AssignedAt:      stageTimestamp(aggregate, order.Assigned),
		PickedUpAt:      stageTimestamp(aggregate, order.PickedUp),
		InTransitAt:     stageTimestamp(aggregate, order.InTransit),
		DeliveredAt:     stageTimestamp(aggregate, order.Delivered),
		CancelledAt:     aggregate.CancelledAt(),
	}
}

func stageTimestamp(aggregate *order.Order, status order.Status) *time.Time {
	ts, ok := aggregate.StageTimestamp(status)
	if !ok {
		return nil
	}
	return &ts
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, courier assignment,
// and stage timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		customerID,
		courierID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.DistanceKM,
		dto.Price,
		order.Status(dto.Status),
		order.Timestamps{
			CreatedAt:   dto.CreatedAt,
			AssignedAt:  dto.AssignedAt,
			PickedUpAt:  dto.PickedUpAt,
			InTransitAt: dto.InTransitAt,
			DeliveredAt: dto.DeliveredAt,
			CancelledAt: dto.CancelledAt,
		},
	)
}
