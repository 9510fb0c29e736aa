package services_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitingOrder(t *testing.T, styleID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItemDesign(styleID, "Agbada", "", nil, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), false,
		[]order.ItemDesign{item}, "", time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)
	return o
}

func restoredTailor(t *testing.T, name string, specialties []kernel.UUID, capacity, active int) *tailor.Tailor {
	t.Helper()
	tl, err := tailor.RestoreTailor(kernel.NewUUID(), name, specialties, capacity, active)
	require.NoError(t, err)
	return tl
}

func TestTailorDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewTailorDispatcher()

	t.Run("assigns the least loaded tailor", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		busy := restoredTailor(t, "Chinedu Eze", nil, 3, 2)
		free := restoredTailor(t, "Amara Obi", nil, 3, 0)

		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{busy, free})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(free))
		assert.Equal(t, 1, free.ActiveOrders())
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.Tailor())
		assert.True(t, o.Tailor().IsEqual(free.ID()))
	})

	t.Run("skips tailors lacking the required specialty", func(t *testing.T) {
		styleID := kernel.NewUUID()
		o := awaitingOrder(t, styleID)
		wrongSpecialty := restoredTailor(t, "Chinedu Eze", []kernel.UUID{kernel.NewUUID()}, 3, 0)
		specialist := restoredTailor(t, "Amara Obi", []kernel.UUID{styleID}, 3, 1)

		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{wrongSpecialty, specialist})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(specialist))
	})

	t.Run("skips fully booked tailors", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		booked := restoredTailor(t, "Chinedu Eze", nil, 1, 1)
		free := restoredTailor(t, "Amara Obi", nil, 3, 2)

		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{booked, free})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(free))
	})

	t.Run("prefers the first tailor on workload ties", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		first := restoredTailor(t, "Chinedu Eze", nil, 3, 1)
		second := restoredTailor(t, "Amara Obi", nil, 3, 1)

		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{first, second})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(first))
	})

	t.Run("fails when no tailor can take the order", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		booked := restoredTailor(t, "Chinedu Eze", nil, 1, 1)

		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{booked})

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrTailorNotFound)
		assert.Nil(t, assigned)
		assert.Equal(t, order.AwaitingAssignment, o.Status())
	})

	t.Run("fails with no tailors at all", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())

		_, err := dispatcher.Dispatch(o, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrTailorNotFound)
	})

	t.Run("reassigns an in progress order", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		first := restoredTailor(t, "Chinedu Eze", nil, 3, 0)
		_, err := dispatcher.Dispatch(o, []*tailor.Tailor{first})
		require.NoError(t, err)

		second := restoredTailor(t, "Amara Obi", nil, 3, 0)
		assigned, err := dispatcher.Dispatch(o, []*tailor.Tailor{second})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(second))
		assert.True(t, o.Tailor().IsEqual(second.ID()))
	})

	t.Run("fails for a completed order", func(t *testing.T) {
		o := awaitingOrder(t, kernel.NewUUID())
		first := restoredTailor(t, "Chinedu Eze", nil, 3, 0)
		_, err := dispatcher.Dispatch(o, []*tailor.Tailor{first})
		require.NoError(t, err)
		require.NoError(t, o.Complete())

		second := restoredTailor(t, "Amara Obi", nil, 3, 0)
		_, err = dispatcher.Dispatch(o, []*tailor.Tailor{second})

		require.Error(t, err)
		assert.Equal(t, 0, second.ActiveOrders())
	})
}
