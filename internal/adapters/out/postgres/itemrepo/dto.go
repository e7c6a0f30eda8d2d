// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the catalog item aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting item aggregates.
type ItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind  int       `gorm:"type:int;not null"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Price int       `gorm:"type:int;not null"`
	Stock int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(item *item.Item) ItemDTO {
	return ItemDTO{
		ID:    item.ID().Bytes(),
		Kind:  int(item.Kind()),
		Name:  item.Name(),
		Price: item.Price(),
		Stock: item.Stock(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the aggregate using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, item.Kind(dto.Kind), dto.Name, dto.Price, dto.Stock)
}
