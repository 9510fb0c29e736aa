// Package tailorrepo provides data transfer objects and mapping functions for tailor persistence.
// This package implements the repository pattern for the tailor domain aggregate, handling
// the conversion between domain entities and database representations. Specialty style
// references are stored as a jsonb array of UUID strings.
package tailorrepo

import (
	"encoding/json"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"

	"github.com/google/uuid"
)

// TailorDTO represents the database structure for persisting tailor aggregates.
type TailorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	SpecialtyStyleIDs []byte    `gorm:"type:jsonb;not null"`
	Capacity          int       `gorm:"type:int;not null"`
	ActiveOrders      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for tailor entities.
// Overrides GORM's default naming convention to use "tailors".
func (TailorDTO) TableName() string {
	return "tailors"
}

// fromDomain converts a tailor domain aggregate to its database representation.
func fromDomain(aggregate *tailor.Tailor) (TailorDTO, error) {
	specialties := make([]string, 0, len(aggregate.SpecialtyStyleIDs()))
	for _, id := range aggregate.SpecialtyStyleIDs() {
		specialties = append(specialties, id.String())
	}

	encoded, err := json.Marshal(specialties)
	if err != nil {
		return TailorDTO{}, err
	}

	return TailorDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		SpecialtyStyleIDs: encoded,
		Capacity:          aggregate.Capacity(),
		ActiveOrders:      aggregate.ActiveOrders(),
	}, nil
}

// toDomain converts a database DTO to a tailor domain aggregate.
// Reconstructs the complete aggregate including capacity and current workload
// using RestoreTailor.
func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var rawSpecialties []string
	if err = json.Unmarshal(dto.SpecialtyStyleIDs, &rawSpecialties); err != nil {
		return nil, err
	}

	specialties := make([]kernel.UUID, 0, len(rawSpecialties))
	for _, raw := range rawSpecialties {
		styleID, styleErr := kernel.UUIDFromString(raw)
		if styleErr != nil {
			return nil, styleErr
		}
		specialties = append(specialties, styleID)
	}

	return tailor.RestoreTailor(id, dto.Name, specialties, dto.Capacity, dto.ActiveOrders)
}
