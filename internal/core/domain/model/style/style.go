package style

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Domain errors for garment style operations.
var (
	// ErrGarmentStyleIsNotConstructed is returned when a GarmentStyle instance
	// was not created through the NewGarmentStyle factory method.
	ErrGarmentStyleIsNotConstructed = errors.New("GarmentStyle must be created via NewGarmentStyle constructor")
	// ErrNameIsRequired is returned when attempting to create a style without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMeasurementFieldsAreRequired is returned when a style declares no measurement fields.
	ErrMeasurementFieldsAreRequired = errs.NewValueIsRequiredError("requiredMeasurementIDs")
	// ErrMeasurementFieldIsDuplicated is returned when a measurement field id appears twice.
	ErrMeasurementFieldIsDuplicated = errs.NewValueIsInvalidError("requiredMeasurementIDs")
)

// GarmentStyle represents one garment cut the atelier offers (agbada, kaftan,
// two-piece suit, and so on). Each style declares which measurement fields a
// tailor needs before production can start; the design editor renders exactly
// those fields.
//
// GarmentStyle follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Declares at least one required measurement field
//   - Measurement field ids are unique, insertion order preserved
type GarmentStyle struct {
	id                     kernel.UUID
	name                   string
	requiredMeasurementIDs []string

	guard guard.ConstructorGuard
}

// NewGarmentStyle creates a new GarmentStyle with validation.
//
// Example:
//
//	s, err := style.NewGarmentStyle(kernel.NewUUID(), "Agbada",
//	    []string{"chest", "shoulder", "sleeve", "length"})
//	if err != nil {
//	    // Handle validation error
//	}
func NewGarmentStyle(id kernel.UUID, name string, requiredMeasurementIDs []string) (*GarmentStyle, error) {
	s := &GarmentStyle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRequiredMeasurementIDs(requiredMeasurementIDs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreGarmentStyle reconstructs a GarmentStyle from persistence.
// It applies the same validation as NewGarmentStyle.
func RestoreGarmentStyle(id kernel.UUID, name string, requiredMeasurementIDs []string) (*GarmentStyle, error) {
	return NewGarmentStyle(id, name, requiredMeasurementIDs)
}

// Validate ensures the GarmentStyle instance was properly constructed.
func (s *GarmentStyle) Validate() error {
	if s == nil {
		return ErrGarmentStyleIsNotConstructed
	}
	return s.guard.Validate(ErrGarmentStyleIsNotConstructed)
}

// IsEqual compares two styles by their unique identifiers.
func (s *GarmentStyle) IsEqual(other *GarmentStyle) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the style's unique identifier.
func (s *GarmentStyle) ID() kernel.UUID {
	return s.id
}

// Name returns the style's display name.
func (s *GarmentStyle) Name() string {
	return s.name
}

// RequiredMeasurementIDs returns the measurement field ids this style needs,
// in declaration order. The returned slice is a copy.
func (s *GarmentStyle) RequiredMeasurementIDs() []string {
	ids := make([]string, len(s.requiredMeasurementIDs))
	copy(ids, s.requiredMeasurementIDs)
	return ids
}

// RequiresMeasurement reports whether fieldID is one of the style's
// required measurement fields.
func (s *GarmentStyle) RequiresMeasurement(fieldID string) bool {
	for _, id := range s.requiredMeasurementIDs {
		if id == fieldID {
			return true
		}
	}
	return false
}

func (s *GarmentStyle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *GarmentStyle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *GarmentStyle) setRequiredMeasurementIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrMeasurementFieldsAreRequired
	}

	seen := make(map[string]struct{}, len(ids))
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return ErrMeasurementFieldsAreRequired
		}
		if _, ok := seen[id]; ok {
			return ErrMeasurementFieldIsDuplicated
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}

	s.requiredMeasurementIDs = cleaned
	return nil
}
