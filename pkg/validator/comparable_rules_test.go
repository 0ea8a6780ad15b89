package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

func TestNotNull(t *testing.T) {
	t.Parallel()

	engine := mustEngine(t, validator.Shape{
		Name:    "product",
		Catalog: validator.NewCatalog(validator.NotNull("price")),
	})

	t.Run("fails for nil pointer", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("price")
		require.True(t, ok)
		assert.Nil(t, fe.RejectedValue)
		assert.Equal(t, []string{"required.product.price", "required.price", "required.int", "required"}, fe.Codes)
	})

	t.Run("passes for zero value", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Price: ptr(0)}, create)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())
	})

	t.Run("non-pointer field is never nil", func(t *testing.T) {
		t.Parallel()
		e := mustEngine(t, validator.Shape{
			Name:    "product",
			Catalog: validator.NewCatalog(validator.NotNull("count")),
		})
		report, err := e.Validate(&product{}, create)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())
	})
}
