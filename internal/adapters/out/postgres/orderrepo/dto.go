// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations. Garment items are
// stored as a jsonb document inside the order row since they have no identity of their own.
package orderrepo

import (
	"encoding/json"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and tailor assignment.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TailorID         *uuid.UUID `gorm:"type:uuid;index"`
	CourierRequested bool       `gorm:"not null"`
	ShippingAddress  string     `gorm:"type:varchar(512)"`
	Items            []byte     `gorm:"type:jsonb;not null"`
	DueDate          time.Time  `gorm:"not null"`
	Status           int        `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb encoding of one garment within an order. The JSON tags
// are a stable contract shared with the read-side queries, which unmarshal the
// same column directly into their response models.
type ItemDTO struct {
	StyleID          string             `json:"style_id"`
	StyleName        string             `json:"style_name"`
	Notes            string             `json:"notes"`
	ReferenceImages  []string           `json:"reference_images"`
	Measurements     map[string]float64 `json:"measurements"`
	AssignedTailorID *string            `json:"assigned_tailor_id"`
	DueDate          *time.Time         `json:"due_date"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional tailor assignment and the
// jsonb-encoded garment items.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var tailorID *uuid.UUID
	if id := aggregate.Tailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		TailorID:         tailorID,
		CourierRequested: aggregate.CourierRequested(),
		ShippingAddress:  aggregate.ShippingAddress(),
		Items:            encoded,
		DueDate:          aggregate.DueDate(),
		Status:           int(aggregate.Status()),
	}, nil
}

// itemFromDomain converts a garment item to its jsonb representation.
func itemFromDomain(item order.ItemDesign) ItemDTO {
	measurements := make(map[string]float64, len(item.Measurements()))
	for fieldID, m := range item.Measurements() {
		measurements[fieldID] = float64(m.Value())
	}

	var assignedTailorID *string
	if id := item.AssignedTailorID(); id != nil {
		s := id.String()
		assignedTailorID = &s
	}

	return ItemDTO{
		StyleID:          item.StyleID().String(),
		StyleName:        item.StyleName(),
		Notes:            item.Notes(),
		ReferenceImages:  item.ReferenceImages(),
		Measurements:     measurements,
		AssignedTailorID: assignedTailorID,
		DueDate:          item.DueDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, status, and tailor
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.TailorID != nil {
		tID, tailorErr := kernel.UUIDFromBytes((*dto.TailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}

		tailorID = &tID
	}

	var itemDTOs []ItemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.ItemDesign, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CourierRequested,
		items,
		dto.ShippingAddress,
		dto.DueDate,
		order.Status(dto.Status),
		tailorID,
	)
}

// itemToDomain converts a jsonb item document back to a domain garment item.
func itemToDomain(dto ItemDTO) (order.ItemDesign, error) {
	styleID, err := kernel.UUIDFromString(dto.StyleID)
	if err != nil {
		return order.ItemDesign{}, err
	}

	measurements := make(map[string]kernel.Measurement, len(dto.Measurements))
	for fieldID, value := range dto.Measurements {
		m, mErr := kernel.NewMeasurement(kernel.Centimeters(value))
		if mErr != nil {
			return order.ItemDesign{}, mErr
		}
		measurements[fieldID] = m
	}

	var assignedTailorID *kernel.UUID
	if dto.AssignedTailorID != nil {
		tID, tailorErr := kernel.UUIDFromString(*dto.AssignedTailorID)
		if tailorErr != nil {
			return order.ItemDesign{}, tailorErr
		}
		assignedTailorID = &tID
	}

	return order.RestoreItemDesign(
		styleID,
		dto.StyleName,
		dto.Notes,
		dto.ReferenceImages,
		measurements,
		assignedTailorID,
		dto.DueDate,
	)
}
