package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchOrderSummariesQueryHandler answers order searches with flat read models.
// Runs two queries: one to window the matching orders with their member
// and delivery data, and one to fetch every line of those orders in a
// single IN batch. Lines are joined back to their order by ID, so the
// window from the first query stays intact regardless of line counts.
type SearchOrderSummariesQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrderSummariesQueryHandler creates a handler for order summary searches.
// Requires a GORM database connection for query execution.
func NewSearchOrderSummariesQueryHandler(db *gorm.DB) SearchOrderSummariesQueryHandler {
	return SearchOrderSummariesQueryHandler{db: db}
}

// Handle executes the search and returns matching order summaries,
// newest first, windowed by the filter's offset and limit.
func (h SearchOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query SearchOrderSummariesQuery,
) ([]SearchOrderSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries, orderIDs, err := h.fetchOrderWindow(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return summaries, nil
	}

	if err = h.attachLines(ctx, summaries, orderIDs); err != nil {
		return nil, err
	}

	return summaries, nil
}

// fetchOrderWindow runs the first query: orders joined with members and
// deliveries, filtered, sorted newest first and windowed. Returns the
// summaries in window order plus the IDs for the line batch.
func (h SearchOrderSummariesQueryHandler) fetchOrderWindow(
	ctx context.Context,
	filter order.SearchFilter,
) ([]SearchOrderSummariesQueryResponse, []uuid.UUID, error) {
	where := "TRUE"
	args := make([]any, 0, 2)

	if filter.HasMemberName() {
		where += " AND m.name LIKE ?"
		args = append(args, "%"+filter.MemberName()+"%")
	}
	if filter.Status() != nil {
		where += " AND o.status = ?"
		args = append(args, int(*filter.Status()))
	}
	args = append(args, filter.Offset(), filter.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			m.name,
			o.status,
			o.order_date,
			d.city,
			d.street,
			d.zip_code
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		WHERE `+where+`
		ORDER BY o.order_date DESC, o.id
		OFFSET ? LIMIT ?
	`, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]SearchOrderSummariesQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var summary SearchOrderSummariesQueryResponse
		var status int
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.MemberName,
			&status,
			&summary.OrderDate,
			&summary.City,
			&summary.Street,
			&summary.ZipCode,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status).String()
		summary.Lines = make([]OrderLineSummary, 0)

		summaries = append(summaries, summary)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return summaries, orderIDs, nil
}

// attachLines runs the second query: every line of the windowed orders
// in one IN batch, joined with items for the current catalog name.
// Each line is matched back to its summary by order ID.
func (h SearchOrderSummariesQueryHandler) attachLines(
	ctx context.Context,
	summaries []SearchOrderSummariesQueryResponse,
	orderIDs []uuid.UUID,
) error {
	byID := make(map[uuid.UUID]*SearchOrderSummariesQueryResponse, len(summaries))
	for i, id := range orderIDs {
		byID[id] = &summaries[i]
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			i.name,
			l.unit_price,
			l.quantity
		FROM order_lines l
		JOIN items i ON i.id = l.item_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineSummary
		var orderID uuid.UUID

		err = rows.Scan(
			&orderID,
			&line.ItemName,
			&line.UnitPrice,
			&line.Quantity,
		)
		if err != nil {
			return err
		}

		summary, ok := byID[orderID]
		if !ok {
			continue
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalPrice += line.UnitPrice * line.Quantity
	}

	return rows.Err()
}
