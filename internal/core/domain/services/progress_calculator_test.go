package services_test

import (
	"testing"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingBase = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTrackedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"12 Baker Street", "221B Baker Street", 3.5, 154, trackingBase)
	require.NoError(t, err)
	return o
}

// orderAt drives a fresh order to the given canonical status, stamping one
// minute per stage.
func orderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTrackedOrder(t)

	steps := []func() error{
		func() error { return o.Assign(kernel.NewUUID(), trackingBase.Add(1*time.Minute)) },
		func() error { return o.PickUp(trackingBase.Add(2 * time.Minute)) },
		func() error { return o.StartTransit(trackingBase.Add(3 * time.Minute)) },
		func() error { return o.CompleteDelivery(trackingBase.Add(4 * time.Minute)) },
	}

	ordinal, err := status.Ordinal()
	require.NoError(t, err)
	for i := 0; i < ordinal; i++ {
		require.NoError(t, steps[i]())
	}
	return o
}

func TestProgressCalculator_Percentage(t *testing.T) {
	calc := services.NewProgressCalculator()

	t.Run("per_status_values", func(t *testing.T) {
		expected := map[order.Status]int{
			order.Created:   0,
			order.Assigned:  25,
			order.PickedUp:  50,
			order.InTransit: 75,
			order.Delivered: 100,
		}

		for status, want := range expected {
			progress, err := calc.Calculate(orderAt(t, status))
			require.NoError(t, err, status.String())
			assert.Equal(t, want, progress.Percentage, status.String())
		}
	})

	t.Run("always_within_bounds", func(t *testing.T) {
		for _, status := range order.CanonicalStatuses() {
			progress, err := calc.Calculate(orderAt(t, status))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, progress.Percentage, 0)
			assert.LessOrEqual(t, progress.Percentage, 100)
		}
	})

	t.Run("monotone_along_canonical_sequence", func(t *testing.T) {
		prev := -1
		for _, status := range order.CanonicalStatuses() {
			progress, err := calc.Calculate(orderAt(t, status))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, progress.Percentage, prev, status.String())
			prev = progress.Percentage
		}
	})
}

func TestProgressCalculator_Steps(t *testing.T) {
	calc := services.NewProgressCalculator()

	t.Run("constant_step_count", func(t *testing.T) {
		for _, status := range order.CanonicalStatuses() {
			progress, err := calc.Calculate(orderAt(t, status))
			require.NoError(t, err)
			assert.Len(t, progress.Steps, 5, status.String())
		}
	})

	t.Run("exactly_one_current_step", func(t *testing.T) {
		for _, status := range order.CanonicalStatuses() {
			progress, err := calc.Calculate(orderAt(t, status))
			require.NoError(t, err)

			current := 0
			for _, step := range progress.Steps {
				if step.Current {
					current++
					assert.Equal(t, status, step.Status)
				}
			}
			assert.Equal(t, 1, current, status.String())
		}
	})

	t.Run("assigned_order_example", func(t *testing.T) {
		progress, err := calc.Calculate(orderAt(t, order.Assigned))
		require.NoError(t, err)

		assert.Equal(t, 25, progress.Percentage)
		assert.True(t, progress.Steps[0].Completed)
		assert.True(t, progress.Steps[1].Completed)
		assert.True(t, progress.Steps[1].Current)
		for _, step := range progress.Steps[2:] {
			assert.False(t, step.Completed, step.Label)
			assert.False(t, step.Current, step.Label)
		}
	})

	t.Run("timestamps_copied_when_present", func(t *testing.T) {
		progress, err := calc.Calculate(orderAt(t, order.PickedUp))
		require.NoError(t, err)

		require.NotNil(t, progress.Steps[0].Timestamp)
		require.NotNil(t, progress.Steps[1].Timestamp)
		require.NotNil(t, progress.Steps[2].Timestamp)
		assert.Nil(t, progress.Steps[3].Timestamp)
		assert.Nil(t, progress.Steps[4].Timestamp)

		assert.Equal(t, trackingBase, *progress.Steps[0].Timestamp)
		assert.Equal(t, trackingBase.Add(2*time.Minute), *progress.Steps[2].Timestamp)
	})

	t.Run("labels_follow_status", func(t *testing.T) {
		progress, err := calc.Calculate(newTrackedOrder(t))
		require.NoError(t, err)

		labels := make([]string, 0, len(progress.Steps))
		for _, step := range progress.Steps {
			labels = append(labels, step.Label)
		}
		assert.Equal(t, []string{
			"Order created", "Courier assigned", "Picked up", "In transit", "Delivered",
		}, labels)
	})
}

func TestProgressCalculator_CancelledOrders(t *testing.T) {
	calc := services.NewProgressCalculator()

	t.Run("percentage_frozen_at_cancellation", func(t *testing.T) {
		o := orderAt(t, order.PickedUp)
		require.NoError(t, o.Cancel(trackingBase.Add(10*time.Minute)))

		progress, err := calc.Calculate(o)
		require.NoError(t, err)

		// Progress reached at time of cancellation, not recomputed to 100.
		assert.Equal(t, 50, progress.Percentage)
	})

	t.Run("cancelled_before_assignment", func(t *testing.T) {
		o := newTrackedOrder(t)
		require.NoError(t, o.Cancel(trackingBase.Add(time.Minute)))

		progress, err := calc.Calculate(o)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.Percentage)
	})

	t.Run("no_current_step", func(t *testing.T) {
		o := orderAt(t, order.InTransit)
		require.NoError(t, o.Cancel(trackingBase.Add(10*time.Minute)))

		progress, err := calc.Calculate(o)
		require.NoError(t, err)

		assert.Len(t, progress.Steps, 5)
		for _, step := range progress.Steps {
			assert.False(t, step.Current, step.Label)
		}
		assert.True(t, progress.Steps[3].Completed)
		assert.False(t, progress.Steps[4].Completed)
	})
}

func TestProgressCalculator_Degradation(t *testing.T) {
	calc := services.NewProgressCalculator()

	t.Run("timestamp_gap_truncates_completed_range", func(t *testing.T) {
		// Status says PickedUp but assignedAt was never recorded: completed
		// marks stop at the last consistent marker (Created).
		courierID := kernel.NewUUID()
		pickedUpAt := trackingBase.Add(2 * time.Minute)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &courierID,
			"A", "B", 1, 1, order.PickedUp,
			order.Timestamps{CreatedAt: trackingBase, PickedUpAt: &pickedUpAt})
		require.NoError(t, err)

		progress, err := calc.Calculate(o)
		require.NoError(t, err)

		assert.True(t, progress.Steps[0].Completed)
		assert.False(t, progress.Steps[1].Completed)
		assert.False(t, progress.Steps[2].Completed)
		assert.True(t, progress.Steps[2].Current)
		assert.Equal(t, 50, progress.Percentage)
	})

	t.Run("invalid_order_fails", func(t *testing.T) {
		var o order.Order
		_, err := calc.Calculate(&o)
		require.Error(t, err)
	})
}
