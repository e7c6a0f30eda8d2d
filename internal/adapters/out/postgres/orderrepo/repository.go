package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, cascading the delivery snapshot
// and the lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its delivery snapshot and lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Lines").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindBySearch retrieves full order aggregates matching the filter.
// The window is computed on the orders table alone (joined with members
// only when a name filter is set), so the offset and limit count orders.
// Deliveries and lines are loaded in separate batched queries, keeping
// the window immune to the row explosion a joined line fetch would cause.
func (r *GormOrderRepository) FindBySearch(
	ctx context.Context,
	filter order.SearchFilter,
) ([]*order.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Lines")

	if filter.HasMemberName() {
		// Case-sensitive containment match on the member name.
		query = query.
			Joins("JOIN members ON members.id = orders.member_id").
			Where("members.name LIKE ?", "%"+filter.MemberName()+"%")
	}
	if filter.Status() != nil {
		query = query.Where("orders.status = ?", int(*filter.Status()))
	}

	var dtos []OrderDTO
	if err := query.
		Order("orders.order_date DESC, orders.id").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
