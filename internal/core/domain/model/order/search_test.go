package order_test

import (
	"testing"

	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchFilter(t *testing.T) {
	t.Run("defaults apply when window is unset", func(t *testing.T) {
		f, err := order.NewSearchFilter("", nil, 0, 0)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, order.DefaultSearchOffset, f.Offset())
		assert.Equal(t, order.DefaultSearchLimit, f.Limit())
		assert.False(t, f.HasMemberName())
		assert.Nil(t, f.Status())
	})

	t.Run("keeps explicit window within the cap", func(t *testing.T) {
		f, err := order.NewSearchFilter("Lee", nil, 10, 25)

		require.NoError(t, err)
		assert.Equal(t, 10, f.Offset())
		assert.Equal(t, 25, f.Limit())
		assert.True(t, f.HasMemberName())
		assert.Equal(t, "Lee", f.MemberName())
	})

	t.Run("clamps limit above the cap", func(t *testing.T) {
		f, err := order.NewSearchFilter("", nil, 0, 500)

		require.NoError(t, err)
		assert.Equal(t, order.DefaultSearchLimit, f.Limit())
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		_, err := order.NewSearchFilter("", nil, -1, 10)

		require.Error(t, err)
	})

	t.Run("accepts valid status constraint", func(t *testing.T) {
		status := order.Cancelled
		f, err := order.NewSearchFilter("", &status, 0, 0)

		require.NoError(t, err)
		require.NotNil(t, f.Status())
		assert.Equal(t, order.Cancelled, *f.Status())
	})

	t.Run("rejects invalid status constraint", func(t *testing.T) {
		status := order.Unknown
		_, err := order.NewSearchFilter("", &status, 0, 0)

		require.Error(t, err)
	})
}

func TestSearchFilter_Validate(t *testing.T) {
	t.Run("zero value filter is invalid", func(t *testing.T) {
		var f order.SearchFilter

		require.ErrorIs(t, f.Validate(), order.ErrSearchFilterIsNotConstructed)
	})
}
