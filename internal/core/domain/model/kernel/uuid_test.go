package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agbadaStyleID = "0b9fb2c6-50d1-4a63-9f6e-2f0f0f4c7d11"

func TestNewUUID(t *testing.T) {
	t.Run("should create a constructed non-nil UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.NotEqual(t, first.String(), second.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept the formats uuid.Parse accepts", func(t *testing.T) {
		// Canonical, braced, urn-prefixed, and unhyphenated forms all
		// normalize to the same canonical string.
		inputs := []string{
			agbadaStyleID,
			"{" + agbadaStyleID + "}",
			"urn:uuid:" + agbadaStyleID,
			"0b9fb2c650d14a639f6e2f0f0f4c7d11",
		}

		for _, input := range inputs {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, agbadaStyleID, id.String())
			assert.NoError(t, id.Validate())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"agbada",
			"0b9fb2c6-50d1-4a63-9f6e",
			agbadaStyleID + "-extra",
			"zz9fb2c6-50d1-4a63-9f6e-2f0f0f4c7d11",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from a stored primary key", func(t *testing.T) {
		stored := uuid.MustParse(agbadaStyleID)

		id, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.Equal(t, agbadaStyleID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject a truncated byte slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x0b, 0x9f, 0xb2})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID bytes", func(t *testing.T) {
		var nilBytes [16]byte

		_, err := kernel.UUIDFromBytes(nilBytes[:])

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should round-trip through the underlying uuid.UUID", func(t *testing.T) {
		id, _ := kernel.UUIDFromString(agbadaStyleID)
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("modifying the returned value does not affect the original", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		styleRef1, _ := kernel.UUIDFromString(agbadaStyleID)
		styleRef2, _ := kernel.UUIDFromString(agbadaStyleID)
		other := kernel.NewUUID()

		assert.True(t, styleRef1.IsEqual(styleRef2))
		assert.True(t, styleRef2.IsEqual(styleRef1))
		assert.False(t, styleRef1.IsEqual(other))
	})

	t.Run("should treat two zero values as equal", func(t *testing.T) {
		var first kernel.UUID
		var second kernel.UUID

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should pass for constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should fail for zero value UUID", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should fail for explicitly nil UUID", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_UsageAsIdentity(t *testing.T) {
	// UUID is the identity type on every aggregate; an aggregate restored
	// from its zero value must be detectable through the field.
	type fittingAppointment struct {
		ID         kernel.UUID
		CustomerID kernel.UUID
	}

	t.Run("constructed identity fields validate", func(t *testing.T) {
		appointment := fittingAppointment{
			ID:         kernel.NewUUID(),
			CustomerID: kernel.NewUUID(),
		}

		assert.NoError(t, appointment.ID.Validate())
		assert.NoError(t, appointment.CustomerID.Validate())
	})

	t.Run("zero value identity field is detected", func(t *testing.T) {
		var appointment fittingAppointment

		assert.Error(t, appointment.ID.Validate())
	})
}
