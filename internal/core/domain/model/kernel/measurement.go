package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Centimeters represents a length value used for body measurements.
type Centimeters float64

const (
	// MeasurementMin is the exclusive lower bound for a valid measurement.
	MeasurementMin Centimeters = 0
	// MeasurementMax is the inclusive upper bound for a valid measurement.
	// No body measurement taken in the atelier exceeds three meters.
	MeasurementMax Centimeters = 300
)

// ErrMeasurementIsNotConstructed is returned when attempting to use an improperly initialized Measurement.
// Measurements must be created using the NewMeasurement constructor to ensure validity.
var ErrMeasurementIsNotConstructed = errs.NewValueIsRequiredError(
	"measurement must be created via NewMeasurement constructor")

// Measurement is an immutable value object representing a single validated
// body measurement in centimeters (chest, waist, inseam, sleeve, and so on).
// The zero value of Measurement is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	chest, err := kernel.NewMeasurement(96.5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Chest: %s", chest) // Output: Chest: 96.5 cm
type Measurement struct { //nolint:recvcheck //using for validation
	value Centimeters
	guard guard.ConstructorGuard
}

// NewMeasurement creates a Measurement from a centimeter value.
// The value must be greater than MeasurementMin and at most MeasurementMax.
// Returns a ValueIsOutOfRangeError if the value is outside those bounds.
//
// Example:
//
//	waist, err := NewMeasurement(82)
//	if err != nil {
//	    log.Fatal("Invalid measurement:", err)
//	}
func NewMeasurement(value Centimeters) (Measurement, error) {
	m := Measurement{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setValue(value); err != nil {
		return Measurement{}, err
	}

	return m, nil
}

// Validate checks if the Measurement was properly constructed using the constructor.
// The zero value of Measurement is invalid and will fail this validation.
func (m Measurement) Validate() error {
	return m.guard.Validate(ErrMeasurementIsNotConstructed)
}

// Value returns the measurement value in centimeters.
func (m Measurement) Value() Centimeters {
	return m.value
}

// IsEqual compares two measurements by value.
func (m Measurement) IsEqual(other Measurement) bool {
	return m.value == other.value
}

// String returns a human-readable representation such as "96.5 cm".
// Implements the fmt.Stringer interface.
func (m Measurement) String() string {
	return fmt.Sprintf("%g cm", float64(m.value))
}

func (m *Measurement) setValue(value Centimeters) error {
	if value <= MeasurementMin || value > MeasurementMax {
		return errs.NewValueIsOutOfRangeError("measurement", float64(value),
			float64(MeasurementMin), float64(MeasurementMax))
	}
	m.value = value
	return nil
}
