package order_test

import (
	"testing"
	"time"

	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"
	"artisan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

		o, err := order.NewOrder(id, "Alice", "555-1111", "custom mug", 25.0, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.ID()))
		assert.Equal(t, "Alice", o.ClientName())
		assert.Equal(t, "555-1111", o.Phone())
		assert.Equal(t, "custom mug", o.Details())
		assert.InDelta(t, 25.0, o.Price(), 0)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should normalise created_at to UTC microseconds", func(t *testing.T) {
		local := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.FixedZone("CEST", 2*60*60))

		o, err := order.NewOrder(kernel.NewUUID(), "Bob", "1", "scarf", 10, local)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		assert.Equal(t, 123456000, o.CreatedAt().Nanosecond())
		assert.True(t, o.CreatedAt().Equal(local.Truncate(time.Microsecond)))
	})

	t.Run("should keep free-form fields and price permissive", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "", "not a phone", "", -5, time.Now())

		require.NoError(t, err)
		assert.Empty(t, o.ClientName())
		assert.InDelta(t, -5.0, o.Price(), 0)
	})

	t.Run("should reject invalid id and missing created_at together", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "Alice", "555", "mug", 1, time.Time{})

		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "created_at")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore any valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			o, err := order.RestoreOrder(kernel.NewUUID(), "Alice", "555", "mug", 1, status, time.Now())

			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "Alice", "555", "mug", 1, order.Unknown, time.Now())

		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrStatusIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "Alice", "555", "mug", 1, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("should move between any valid statuses", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())

		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should leave the order unchanged on invalid status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Ready))

		err := o.ChangeStatus(order.Status(99))

		require.ErrorIs(t, err, order.ErrStatusIsInvalid)
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := order.NewOrder(id, "Alice", "555", "mug", 1, time.Now())
	require.NoError(t, err)
	b, err := order.RestoreOrder(id, "Other", "000", "other", 2, order.Delivered, time.Now())
	require.NoError(t, err)
	c, err := order.NewOrder(kernel.NewUUID(), "Alice", "555", "mug", 1, time.Now())
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
