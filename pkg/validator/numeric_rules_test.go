package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

func TestRange(t *testing.T) {
	t.Parallel()

	engine := mustEngine(t, validator.Shape{
		Name:    "product",
		Catalog: validator.NewCatalog(validator.Range("price", 1000, 1000000)),
	})

	t.Run("fails below min and keeps the evaluated value", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Price: ptr(999)}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("price")
		require.True(t, ok)
		assert.Equal(t, 999, fe.RejectedValue)
		assert.Equal(t, []string{"range.product.price", "range.price", "range.int", "range"}, fe.Codes)
		assert.Equal(t, []any{int64(1000), int64(1000000)}, fe.Arguments)
	})

	t.Run("fails above max", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Price: ptr(1000001)}, create)
		require.NoError(t, err)
		assert.True(t, report.HasFieldErrors("price"))
	})

	t.Run("fails for nil", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("price")
		require.True(t, ok)
		assert.Nil(t, fe.RejectedValue)
		assert.Equal(t, "range", fe.Code())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		for _, price := range []int{1000, 1000000, 5000} {
			report, err := engine.Validate(&product{Price: ptr(price)}, create)
			require.NoError(t, err)
			assert.False(t, report.HasErrors(), "price %d", price)
		}
	})

	t.Run("string field is a configuration error", func(t *testing.T) {
		t.Parallel()
		e := mustEngine(t, validator.Shape{
			Name:    "product",
			Catalog: validator.NewCatalog(validator.Range("name", 1, 2)),
		})
		_, err := e.Validate(&product{Name: ptr("x")}, create)
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
		assert.True(t, validator.IsConfigurationError(err))
	})
}

func TestMax(t *testing.T) {
	t.Parallel()

	engine := mustEngine(t, validator.Shape{
		Name:    "product",
		Catalog: validator.NewCatalog(validator.Max("quantity", 9999)),
	})

	t.Run("passes within limit", func(t *testing.T) {
		t.Parallel()
		for _, q := range []int{1, 10, 9999} {
			report, err := engine.Validate(&product{Quantity: ptr(q)}, create)
			require.NoError(t, err)
			assert.False(t, report.HasErrors(), "quantity %d", q)
		}
	})

	t.Run("fails above limit", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Quantity: ptr(10000)}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("quantity")
		require.True(t, ok)
		assert.Equal(t, 10000, fe.RejectedValue)
		assert.Equal(t, []string{"max.product.quantity", "max.quantity", "max.int", "max"}, fe.Codes)
		assert.Equal(t, []any{int64(9999)}, fe.Arguments)
	})

	t.Run("fails for zero and negative", func(t *testing.T) {
		t.Parallel()
		for _, q := range []int{0, -1} {
			report, err := engine.Validate(&product{Quantity: ptr(q)}, create)
			require.NoError(t, err)
			assert.True(t, report.HasFieldErrors("quantity"), "quantity %d", q)
		}
	})

	t.Run("fails for nil", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{}, create)
		require.NoError(t, err)
		assert.True(t, report.HasFieldErrors("quantity"))
	})
}
