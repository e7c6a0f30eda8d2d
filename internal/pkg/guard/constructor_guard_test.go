package guard_test

import (
	"errors"
	"testing"

	"shop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		customError := errors.New("item must be created via NewItem constructor")

		// When
		err := g.Validate(customError)

		// Then
		require.Error(t, err)
		assert.Equal(t, customError, err)
	})

	t.Run("zero_value_guard_with_nil_error_returns_default", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrObjectIsNotConstructed)
	})

	t.Run("guard_embedded_in_struct_detects_zero_value", func(t *testing.T) {
		type guarded struct {
			guard guard.ConstructorGuard
		}

		// Given
		zero := guarded{}
		constructed := guarded{guard: guard.NewConstructorGuard()}
		notConstructed := errors.New("guarded must be constructed")

		// Then
		require.Error(t, zero.guard.Validate(notConstructed))
		require.NoError(t, constructed.guard.Validate(notConstructed))
	})
}
