package stylerepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/style"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStyleRepository implements StyleRepository using GORM.
type GormStyleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStyleRepository creates a new GORM garment style repository.
func NewGormStyleRepository(db *gorm.DB, tracker aggregateTracker) *GormStyleRepository {
	return &GormStyleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new garment style to the catalog.
func (r *GormStyleRepository) Add(ctx context.Context, aggregate *style.GarmentStyle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a garment style by ID.
func (r *GormStyleRepository) Get(ctx context.Context, id kernel.UUID) (*style.GarmentStyle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StyleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("style", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full style catalog ordered by name.
func (r *GormStyleRepository) GetAll(ctx context.Context) ([]*style.GarmentStyle, error) {
	var dtos []StyleDTO
	if err := r.db.WithContext(ctx).Order("name asc").Find(&dtos).Error; err != nil {
		return nil, err
	}

	styles := make([]*style.GarmentStyle, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}

	return styles, nil
}
