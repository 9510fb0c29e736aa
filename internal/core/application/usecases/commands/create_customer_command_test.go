package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerCommand(validID, "Amina Bello",
			"amina@example.com", "+2348012345678", "12 Adeola Odeku St, Lagos")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CustomerID().IsEqual(validID))
		assert.Equal(t, "Amina Bello", cmd.Name())
		assert.Equal(t, "amina@example.com", cmd.Email())
		assert.Equal(t, "+2348012345678", cmd.Phone())
		assert.Equal(t, "12 Adeola Odeku St, Lagos", cmd.Address())
	})

	t.Run("address is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerCommand(validID, "Amina Bello",
			"amina@example.com", "+2348012345678", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Address())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateCustomerCommand(invalidID, "Amina Bello",
			"amina@example.com", "+2348012345678", "")

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(validID, " ",
			"amina@example.com", "+2348012345678", "")

		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(validID, "Amina Bello",
			"", "+2348012345678", "")

		require.ErrorIs(t, err, commands.ErrCustomerEmailIsRequired)
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(validID, "Amina Bello",
			"amina@example.com", "", "")

		require.ErrorIs(t, err, commands.ErrCustomerPhoneIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateCustomerCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}
