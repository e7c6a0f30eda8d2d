package order_test

import (
	"testing"

	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		require.NoError(t, order.Ordered.Validate())
		require.NoError(t, order.Cancelled.Validate())
	})

	t.Run("unknown and out of range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Ordered", order.Ordered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid names", func(t *testing.T) {
		s, err := order.StatusFromString("Ordered")
		require.NoError(t, err)
		assert.Equal(t, order.Ordered, s)

		s, err = order.StatusFromString("Cancelled")
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
	})

	t.Run("match is exact", func(t *testing.T) {
		_, err := order.StatusFromString("ordered")
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("ordered transitions to cancelled", func(t *testing.T) {
		s, err := order.Ordered.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)
	})

	t.Run("cancelled cannot cancel again", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()

		require.ErrorIs(t, err, order.ErrOrderAlreadyCancelled)
	})

	t.Run("unknown cannot cancel", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrOrderAlreadyCancelled)
	})
}
