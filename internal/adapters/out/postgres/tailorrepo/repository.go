package tailorrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTailorRepository implements TailorRepository using GORM.
type GormTailorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTailorRepository creates a new GORM tailor repository.
func NewGormTailorRepository(db *gorm.DB, tracker aggregateTracker) *GormTailorRepository {
	return &GormTailorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tailor to the database.
func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
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

// Update saves an existing tailor to the database.
func (r *GormTailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// Select("*") forces zero values through so a workload dropping back to
	// zero after an order completes is not silently skipped.
	result := r.db.WithContext(ctx).
		Model(&TailorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
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

// Get retrieves a tailor by ID.
func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TailorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tailor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all tailors with free capacity.
func (r *GormTailorRepository) GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error) {
	var dtos []TailorDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active_orders < capacity").Error; err != nil {
		return nil, err
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tailors = append(tailors, t)
	}

	return tailors, nil
}
