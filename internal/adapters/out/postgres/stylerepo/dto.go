// Package stylerepo provides data transfer objects and mapping functions for
// garment style persistence. The required measurement field list is stored as
// a jsonb array since its entries are plain identifiers without identity.
package stylerepo

import (
	"encoding/json"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/style"

	"github.com/google/uuid"
)

// StyleDTO represents the database structure for persisting garment styles.
type StyleDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	RequiredMeasurementIDs []byte    `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for garment style entities.
// Overrides GORM's default naming convention to use "styles".
func (StyleDTO) TableName() string {
	return "styles"
}

// fromDomain converts a garment style aggregate to its database representation.
func fromDomain(aggregate *style.GarmentStyle) (StyleDTO, error) {
	encoded, err := json.Marshal(aggregate.RequiredMeasurementIDs())
	if err != nil {
		return StyleDTO{}, err
	}

	return StyleDTO{
		ID:                     aggregate.ID().Bytes(),
		Name:                   aggregate.Name(),
		RequiredMeasurementIDs: encoded,
	}, nil
}

// toDomain converts a database DTO to a garment style aggregate.
func toDomain(dto StyleDTO) (*style.GarmentStyle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var fieldIDs []string
	if err = json.Unmarshal(dto.RequiredMeasurementIDs, &fieldIDs); err != nil {
		return nil, err
	}

	return style.RestoreGarmentStyle(id, dto.Name, fieldIDs)
}
