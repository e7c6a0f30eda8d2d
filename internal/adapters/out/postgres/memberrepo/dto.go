// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// This package implements the repository pattern for the member domain aggregate, handling
// the conversion between domain entities and database representations.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting member aggregates.
// The unique index on the name column backs the registry's name uniqueness
// guarantee against concurrent registrations.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents the embedded postal address within the member table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	ZipCode string `gorm:"type:varchar(255);not null"`
}

// fromDomain converts a member domain aggregate to its database representation.
func fromDomain(member *member.Member) MemberDTO {
	return MemberDTO{
		ID:   member.ID().Bytes(),
		Name: member.Name(),
		Address: AddressDTO{
			City:    member.Address().City(),
			Street:  member.Address().Street(),
			ZipCode: member.Address().ZipCode(),
		},
	}
}

// toDomain converts a database DTO to a member domain aggregate.
// Reconstructs the aggregate using RestoreMember.
func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.ZipCode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address)
}
