package linerepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/line"

	"gorm.io/gorm"
)

// GormOrderLineRepository implements OrderLineRepository using GORM.
type GormOrderLineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderLineRepository creates a new GORM order-line repository.
func NewGormOrderLineRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderLineRepository {
	return &GormOrderLineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line to the database and assigns the store-generated key
// back onto the entity.
func (r *GormOrderLineRepository) Add(ctx context.Context, entity *line.Line) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if entity.ID().Validate() != nil {
		generatedID, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err = entity.AssignID(generatedID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(entity.ID().String(), entity)
	return nil
}

// GetAllByOrderID retrieves all lines belonging to an order, in insertion order.
func (r *GormOrderLineRepository) GetAllByOrderID(ctx context.Context, orderID kernel.ID) ([]*line.Line, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Value()).Error; err != nil {
		return nil, err
	}

	lines := make([]*line.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, nil
}
