package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMembersQueryHandler retrieves all member information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMembersQueryHandler creates a handler for member retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle executes the query to retrieve all members.
// Returns a slice of member read models sorted by name.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			city,
			street,
			zip_code
		FROM members
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var memberResp GetAllMembersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&memberResp.Name,
			&memberResp.City,
			&memberResp.Street,
			&memberResp.ZipCode,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		memberResp.ID = memberID

		members = append(members, memberResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
