// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery snapshot and the lines are owned rows cascaded with the order.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status    int            `gorm:"type:int;not null"`
	OrderDate time.Time      `gorm:"not null;index"`
	Delivery  DeliveryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the persisted delivery snapshot of an order.
// Holds the member's address as it was at placement time.
type DeliveryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	City    string    `gorm:"type:varchar(255);not null"`
	Street  string    `gorm:"type:varchar(255);not null"`
	ZipCode string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for delivery snapshots.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderLineDTO represents one persisted line of an order.
// The unit price is the snapshot taken at placement time, not a reference
// to the catalog price.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitPrice int       `gorm:"type:int;not null"`
	Quantity  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the aggregate together with its owned delivery snapshot and lines.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(order.Lines()))
	for _, line := range order.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   orderID,
			ItemID:    line.ItemID().Bytes(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  order.MemberID().Bytes(),
		Status:    int(order.Status()),
		OrderDate: order.OrderDate(),
		Delivery: DeliveryDTO{
			ID:      order.Delivery().ID().Bytes(),
			OrderID: orderID,
			City:    order.Delivery().Address().City(),
			Street:  order.Delivery().Address().Street(),
			ZipCode: order.Delivery().Address().ZipCode(),
		},
		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including delivery and lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, memberID, delivery, lines, order.Status(dto.Status), dto.OrderDate)
}

// deliveryToDomain converts a delivery DTO to the domain snapshot.
func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.City, dto.Street, dto.ZipCode)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, address)
}

// lineToDomain converts an order line DTO to the domain entity.
// Uses RestoreLine, which performs no stock adjustment.
func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, itemID, dto.UnitPrice, dto.Quantity)
}
