package queries

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler retrieves all catalog item information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for catalog retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog items.
// Returns a slice of item read models sorted by name.
// Converts database types to display types for consistency.
func (h GetAllItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllItemsQuery,
) ([]GetAllItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			name,
			price,
			stock
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetAllItemsQueryResponse
		var kind int
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&kind,
			&itemResp.Name,
			&itemResp.Price,
			&itemResp.Stock,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID
		itemResp.Kind = item.Kind(kind).String()

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
