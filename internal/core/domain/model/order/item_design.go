package order

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// MaxReferenceImages is the upper bound on reference images per garment.
// Additions beyond the bound are truncated, not rejected: the earliest
// images survive.
const MaxReferenceImages = 5

// Domain errors for item design operations.
var (
	// ErrItemDesignIsNotConstructed is returned when an ItemDesign was not
	// created through the NewItemDesign factory method.
	ErrItemDesignIsNotConstructed = errors.New("ItemDesign must be created via NewItemDesign constructor")
	// ErrStyleNameIsRequired is returned when the denormalized style name is empty.
	ErrStyleNameIsRequired = errs.NewValueIsRequiredError("styleName")
	// ErrMeasurementFieldIsRequired is returned when a measurement key is blank.
	ErrMeasurementFieldIsRequired = errs.NewValueIsRequiredError("measurement field id")
)

// ItemDesign describes one garment within an order: the chosen style, the
// customer's measurements for that style, free-text notes, and up to
// MaxReferenceImages reference images. Production-tracking fields (assigned
// tailor, due date) are stamped by the assignment flow, never by the design
// editor.
//
// ItemDesign is a value object with deep-copy semantics: Clone produces an
// independent copy whose images and measurements do not alias the original.
type ItemDesign struct { //nolint:recvcheck //using for validation
	styleID         kernel.UUID
	styleName       string
	notes           string
	referenceImages []string
	measurements    map[string]kernel.Measurement

	// production tracking, populated on assignment
	assignedTailorID *kernel.UUID
	dueDate          *time.Time

	guard guard.ConstructorGuard
}

// NewItemDesign creates a validated ItemDesign.
//
// Reference images beyond MaxReferenceImages are silently truncated (the
// earliest survive). Measurement keys must be non-blank and values must be
// constructed measurements.
//
// Example:
//
//	chest, _ := kernel.NewMeasurement(96.5)
//	item, err := order.NewItemDesign(styleID, "Agbada", "gold embroidery",
//	    []string{"https://img.example/1.jpg"},
//	    map[string]kernel.Measurement{"chest": chest})
func NewItemDesign(
	styleID kernel.UUID,
	styleName string,
	notes string,
	referenceImages []string,
	measurements map[string]kernel.Measurement,
) (ItemDesign, error) {
	d := ItemDesign{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setStyleID(styleID),
		d.setStyleName(styleName),
		d.setMeasurements(measurements),
	); err != nil {
		return ItemDesign{}, err
	}

	d.notes = notes
	d.referenceImages = truncateImages(referenceImages)
	return d, nil
}

// RestoreItemDesign reconstructs an ItemDesign from persistence including its
// production-tracking fields.
func RestoreItemDesign(
	styleID kernel.UUID,
	styleName string,
	notes string,
	referenceImages []string,
	measurements map[string]kernel.Measurement,
	assignedTailorID *kernel.UUID,
	dueDate *time.Time,
) (ItemDesign, error) {
	d, err := NewItemDesign(styleID, styleName, notes, referenceImages, measurements)
	if err != nil {
		return ItemDesign{}, err
	}

	if assignedTailorID != nil {
		if err = assignedTailorID.Validate(); err != nil {
			return ItemDesign{}, err
		}
		id := *assignedTailorID
		d.assignedTailorID = &id
	}
	if dueDate != nil {
		due := *dueDate
		d.dueDate = &due
	}

	return d, nil
}

// Validate ensures the ItemDesign was created through a constructor.
func (d ItemDesign) Validate() error {
	return d.guard.Validate(ErrItemDesignIsNotConstructed)
}

// StyleID returns the identifier of the garment style.
func (d ItemDesign) StyleID() kernel.UUID {
	return d.styleID
}

// StyleName returns the denormalized style display name.
func (d ItemDesign) StyleName() string {
	return d.styleName
}

// Notes returns the free-text notes for the garment.
func (d ItemDesign) Notes() string {
	return d.notes
}

// WithNotes returns a copy of the design with its notes replaced.
func (d ItemDesign) WithNotes(notes string) ItemDesign {
	clone := d.Clone()
	clone.notes = notes
	return clone
}

// ReferenceImages returns the garment's reference images in insertion order.
// The returned slice is a copy.
func (d ItemDesign) ReferenceImages() []string {
	images := make([]string, len(d.referenceImages))
	copy(images, d.referenceImages)
	return images
}

// AddReferenceImage returns a copy of the design with the image appended.
// When the design already holds MaxReferenceImages images the addition is
// truncated: the earliest images survive unchanged.
func (d ItemDesign) AddReferenceImage(image string) ItemDesign {
	clone := d.Clone()
	clone.referenceImages = truncateImages(append(clone.referenceImages, image))
	return clone
}

// Measurements returns the measurement map keyed by field id.
// The returned map is a copy.
func (d ItemDesign) Measurements() map[string]kernel.Measurement {
	m := make(map[string]kernel.Measurement, len(d.measurements))
	for k, v := range d.measurements {
		m[k] = v
	}
	return m
}

// AssignedTailorID returns the assigned tailor's ID, or nil if unassigned.
func (d ItemDesign) AssignedTailorID() *kernel.UUID {
	if d.assignedTailorID == nil {
		return nil
	}
	id := *d.assignedTailorID
	return &id
}

// DueDate returns the production due date, or nil if not yet scheduled.
func (d ItemDesign) DueDate() *time.Time {
	if d.dueDate == nil {
		return nil
	}
	due := *d.dueDate
	return &due
}

// IsAssigned reports whether a tailor has been assigned to this garment.
func (d ItemDesign) IsAssigned() bool {
	return d.assignedTailorID != nil
}

// Clone returns a deep copy of the design. Mutating the clone's images or
// measurements never affects the original.
func (d ItemDesign) Clone() ItemDesign {
	clone := d
	clone.referenceImages = make([]string, len(d.referenceImages))
	copy(clone.referenceImages, d.referenceImages)

	clone.measurements = make(map[string]kernel.Measurement, len(d.measurements))
	for k, v := range d.measurements {
		clone.measurements[k] = v
	}

	if d.assignedTailorID != nil {
		id := *d.assignedTailorID
		clone.assignedTailorID = &id
	}
	if d.dueDate != nil {
		due := *d.dueDate
		clone.dueDate = &due
	}

	return clone
}

// assignTo stamps the production-tracking fields. Called by Order.AssignTailor.
func (d *ItemDesign) assignTo(tailorID kernel.UUID, dueDate time.Time) {
	id := tailorID
	d.assignedTailorID = &id
	due := dueDate
	d.dueDate = &due
}

func (d *ItemDesign) setStyleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.styleID = id
	return nil
}

func (d *ItemDesign) setStyleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrStyleNameIsRequired
	}
	d.styleName = name
	return nil
}

func (d *ItemDesign) setMeasurements(measurements map[string]kernel.Measurement) error {
	cleaned := make(map[string]kernel.Measurement, len(measurements))
	for field, value := range measurements {
		if strings.TrimSpace(field) == "" {
			return ErrMeasurementFieldIsRequired
		}
		if err := value.Validate(); err != nil {
			return err
		}
		cleaned[field] = value
	}
	d.measurements = cleaned
	return nil
}

// truncateImages pins the bounded-images policy: the earliest
// MaxReferenceImages entries survive.
func truncateImages(images []string) []string {
	n := len(images)
	if n > MaxReferenceImages {
		n = MaxReferenceImages
	}
	out := make([]string, n)
	copy(out, images[:n])
	return out
}
