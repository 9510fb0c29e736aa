package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.AwaitingAssignment, order.InProgress, order.Completed} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("should fail for out of range status", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.AwaitingAssignment, "AwaitingAssignment"},
		{order.InProgress, "InProgress"},
		{order.Completed, "Completed"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should assign from awaiting assignment", func(t *testing.T) {
		newStatus, err := order.AwaitingAssignment.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should allow reassignment while in progress", func(t *testing.T) {
		newStatus, err := order.InProgress.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should fail from completed", func(t *testing.T) {
		_, err := order.Completed.Assign()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to assign")
	})

	t.Run("should fail from unknown", func(t *testing.T) {
		_, err := order.Unknown.Assign()

		require.Error(t, err)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from in progress", func(t *testing.T) {
		newStatus, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("should fail from awaiting assignment", func(t *testing.T) {
		_, err := order.AwaitingAssignment.Complete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to complete")
	})

	t.Run("should fail from completed", func(t *testing.T) {
		_, err := order.Completed.Complete()

		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHaveTailor(t *testing.T) {
	t.Run("awaiting assignment must have no tailor", func(t *testing.T) {
		require.NoError(t, order.AwaitingAssignment.ValidateCanHaveTailor(false))
		require.Error(t, order.AwaitingAssignment.ValidateCanHaveTailor(true))
	})

	t.Run("in progress must have a tailor", func(t *testing.T) {
		require.NoError(t, order.InProgress.ValidateCanHaveTailor(true))
		require.Error(t, order.InProgress.ValidateCanHaveTailor(false))
	})

	t.Run("completed must have a tailor", func(t *testing.T) {
		require.NoError(t, order.Completed.ValidateCanHaveTailor(true))
		require.Error(t, order.Completed.ValidateCanHaveTailor(false))
	})
}
