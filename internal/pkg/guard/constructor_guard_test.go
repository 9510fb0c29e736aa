package guard_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes with any error argument", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("tailor not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("order not constructed")

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default error names the constructor requirement", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_AggregatePattern exercises the guard the way the
// domain aggregates embed it: a private field set only by the constructor,
// checked by a Validate method before any mutation.
func TestConstructorGuard_AggregatePattern(t *testing.T) {
	errFittingNotConstructed := errors.New("fitting must be created via newFitting")

	type fitting struct {
		customerName string
		chestCm      float64
		guard        guard.ConstructorGuard
	}

	newFitting := func(customerName string, chestCm float64) (fitting, error) {
		if customerName == "" {
			return fitting{}, errors.New("customer name is required")
		}
		if chestCm <= 0 {
			return fitting{}, errors.New("chest measurement must be positive")
		}
		return fitting{
			customerName: customerName,
			chestCm:      chestCm,
			guard:        guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(f fitting) error {
		return f.guard.Validate(errFittingNotConstructed)
	}

	t.Run("constructed aggregate validates", func(t *testing.T) {
		f, err := newFitting("Amina Bello", 96.5)

		require.NoError(t, err)
		require.NoError(t, validate(f))
		assert.Equal(t, "Amina Bello", f.customerName)
		assert.Equal(t, 96.5, f.chestCm)
	})

	t.Run("zero value aggregate fails validation", func(t *testing.T) {
		var f fitting

		err := validate(f)

		require.Error(t, err)
		assert.Equal(t, errFittingNotConstructed, err)
	})

	t.Run("constructor rejections leave no constructed value behind", func(t *testing.T) {
		f, err := newFitting("", 96.5)
		require.Error(t, err)
		require.Error(t, validate(f))

		f, err = newFitting("Amina Bello", 0)
		require.Error(t, err)
		require.Error(t, validate(f))
	})

	t.Run("guard survives copying by value", func(t *testing.T) {
		f, err := newFitting("Amina Bello", 96.5)
		require.NoError(t, err)

		copied := f

		require.NoError(t, validate(f))
		require.NoError(t, validate(copied))
	})
}

// Aggregates are read from multiple goroutines (jobs and request handlers),
// so Validate must be safe for concurrent use.
func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(notConstructed))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(notConstructed)
	}
}
