// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Maps courier domain entities to relational database tables.
type CourierDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Transport      int        `gorm:"type:int;not null"`
	Status         int        `gorm:"type:int;not null;index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return CourierDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Transport:      int(aggregate.Transport()),
		Status:         int(aggregate.Status()),
		CurrentOrderID: currentOrderID,
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		courier.Transport(dto.Transport),
		courier.CourierStatus(dto.Status),
		currentOrderID,
	)
}
