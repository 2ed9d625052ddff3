package order_test

import (
	"testing"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Baker Street",
		"221B Baker Street",
		3.5,
		154,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_valid_order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(id, customerID, "A", "B", 2.4, 106, createdAt)
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, "A", o.PickupAddress())
		assert.Equal(t, "B", o.DeliveryAddress())
		assert.InDelta(t, 2.4, o.DistanceKM(), 0.0001)
		assert.InDelta(t, 106, o.Price(), 0.0001)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("validation_errors", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		now := time.Now()

		testCases := []struct {
			name  string
			build func() (*order.Order, error)
		}{
			{"invalid_id", func() (*order.Order, error) {
				return order.NewOrder(kernel.UUID{}, customerID, "A", "B", 1, 1, now)
			}},
			{"invalid_customer_id", func() (*order.Order, error) {
				return order.NewOrder(id, kernel.UUID{}, "A", "B", 1, 1, now)
			}},
			{"empty_pickup_address", func() (*order.Order, error) {
				return order.NewOrder(id, customerID, "", "B", 1, 1, now)
			}},
			{"empty_delivery_address", func() (*order.Order, error) {
				return order.NewOrder(id, customerID, "A", "", 1, 1, now)
			}},
			{"negative_distance", func() (*order.Order, error) {
				return order.NewOrder(id, customerID, "A", "B", -1, 1, now)
			}},
			{"negative_price", func() (*order.Order, error) {
				return order.NewOrder(id, customerID, "A", "B", 1, -1, now)
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := tc.build()
				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Validate())
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("full_happy_path_stamps_timestamps", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID, base.Add(1*time.Minute)))
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))

		require.NoError(t, o.PickUp(base.Add(5*time.Minute)))
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.StartTransit(base.Add(10*time.Minute)))
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.CompleteDelivery(base.Add(30*time.Minute)))
		assert.Equal(t, order.Delivered, o.Status())

		prev := o.CreatedAt()
		for _, s := range order.CanonicalStatuses() {
			ts, ok := o.StageTimestamp(s)
			require.True(t, ok, s.String())
			assert.False(t, ts.Before(prev), s.String())
			prev = ts
		}
	})

	t.Run("assign_requires_valid_courier", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.Assign(kernel.UUID{}, base))
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("stage_skips_are_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.PickUp(base))
		require.Error(t, o.StartTransit(base))
		require.Error(t, o.CompleteDelivery(base))
	})

	t.Run("timestamps_never_decrease", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), base.Add(10*time.Minute)))

		// Clock skew: pickup reported before assignment.
		require.NoError(t, o.PickUp(base.Add(5*time.Minute)))

		assignedAt, ok := o.StageTimestamp(order.Assigned)
		require.True(t, ok)
		pickedUpAt, ok := o.StageTimestamp(order.PickedUp)
		require.True(t, ok)
		assert.False(t, pickedUpAt.Before(assignedAt))
	})
}

func TestOrder_Advance(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("advances_through_courier_stages", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), base))

		require.NoError(t, o.Advance(base.Add(time.Minute)))
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.Advance(base.Add(2*time.Minute)))
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.Advance(base.Add(3*time.Minute)))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("created_order_cannot_be_advanced", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.Advance(base)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal_order_cannot_be_advanced", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(base))
		require.Error(t, o.Advance(base))
	})
}

func TestOrder_Cancel(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("cancel_preserves_progress_timestamps", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), base.Add(time.Minute)))
		require.NoError(t, o.PickUp(base.Add(2*time.Minute)))

		require.NoError(t, o.Cancel(base.Add(3*time.Minute)))
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())

		_, ok := o.StageTimestamp(order.Assigned)
		assert.True(t, ok)
		_, ok = o.StageTimestamp(order.PickedUp)
		assert.True(t, ok)
		_, ok = o.StageTimestamp(order.InTransit)
		assert.False(t, ok)
	})

	t.Run("delivered_order_cannot_be_cancelled", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), base))
		require.NoError(t, o.PickUp(base))
		require.NoError(t, o.StartTransit(base))
		require.NoError(t, o.CompleteDelivery(base))

		require.Error(t, o.Cancel(base))
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assignedAt := createdAt.Add(time.Minute)

	t.Run("restores_assigned_order", func(t *testing.T) {
		id := kernel.NewUUID()
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(id, kernel.NewUUID(), &courierID, "A", "B", 1.2, 99,
			order.Assigned, order.Timestamps{CreatedAt: createdAt, AssignedAt: &assignedAt})
		require.NoError(t, err)

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))

		ts, ok := o.StageTimestamp(order.Assigned)
		require.True(t, ok)
		assert.Equal(t, assignedAt, ts)
	})

	t.Run("rejects_inconsistent_courier_assignment", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "A", "B", 1, 1,
			order.Assigned, order.Timestamps{CreatedAt: createdAt})
		require.Error(t, err)

		courierID := kernel.NewUUID()
		_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &courierID, "A", "B", 1, 1,
			order.Created, order.Timestamps{CreatedAt: createdAt})
		require.Error(t, err)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "A", "B", 1, 1,
			order.Unknown, order.Timestamps{CreatedAt: createdAt})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("tolerates_timestamp_gaps", func(t *testing.T) {
		// Data written before the assigned stage was recorded: status is
		// PickedUp but assignedAt is missing. Restore succeeds; tracking
		// consumers degrade gracefully.
		courierID := kernel.NewUUID()
		pickedUpAt := createdAt.Add(2 * time.Minute)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &courierID, "A", "B", 1, 1,
			order.PickedUp, order.Timestamps{CreatedAt: createdAt, PickedUpAt: &pickedUpAt})
		require.NoError(t, err)

		_, ok := o.StageTimestamp(order.Assigned)
		assert.False(t, ok)
		_, ok = o.StageTimestamp(order.PickedUp)
		assert.True(t, ok)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newTestOrder(t)
	o2 := newTestOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
