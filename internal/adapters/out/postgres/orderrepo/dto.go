// Package orderrepo persists order aggregates in PostgreSQL via GORM.
// It handles the conversion between domain entities and their database
// representation and implements the OrderStore port on top of it.
package orderrepo

import (
	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Customer and items payloads are stored as jsonb so they round-trip verbatim.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Customer    []byte    `gorm:"type:jsonb"`
	Items       []byte    `gorm:"type:jsonb"`
	Status      int       `gorm:"index"`
	TrackingID  *string
	LastError   *string
	DispatchSeq int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Customer:    aggregate.Customer(),
		Items:       aggregate.Items(),
		Status:      int(aggregate.Status()),
		TrackingID:  aggregate.TrackingID(),
		LastError:   aggregate.LastError(),
		DispatchSeq: aggregate.DispatchSeq(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Customer,
		dto.Items,
		order.Status(dto.Status),
		dto.TrackingID,
		dto.LastError,
		dto.DispatchSeq,
	)
}
