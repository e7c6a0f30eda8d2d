package itemrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
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

// Update saves an existing item to the database.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("Kind", "Name", "Price", "Stock").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all catalog items.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	return items, nil
}
