package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler retrieves items running low on stock.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve items with stock below the threshold.
// Returns the emptiest shelves first.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]GetLowStockItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetLowStockItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			stock
		FROM items
		WHERE stock < ?
		ORDER BY stock, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetLowStockItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&itemResp.Name,
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

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
