package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

func TestNotBlank(t *testing.T) {
	t.Parallel()

	engine := mustEngine(t, validator.Shape{
		Name:    "product",
		Catalog: validator.NewCatalog(validator.NotBlank("name")),
	})

	t.Run("fails for nil", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("name")
		require.True(t, ok)
		assert.Nil(t, fe.RejectedValue)
		assert.False(t, fe.BindingFailure)
		assert.Equal(t, []string{"required.product.name", "required.name", "required.string", "required"}, fe.Codes)
		assert.Empty(t, fe.Arguments)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Name: ptr("")}, create)
		require.NoError(t, err)

		fe, ok := report.FieldError("name")
		require.True(t, ok)
		assert.Equal(t, "", fe.RejectedValue)
	})

	t.Run("fails for whitespace only", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Name: ptr(" \t\n ")}, create)
		require.NoError(t, err)
		assert.True(t, report.HasFieldErrors("name"))
	})

	t.Run("passes for text", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Name: ptr(" a ")}, create)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())
	})

	t.Run("non-string field is a configuration error", func(t *testing.T) {
		t.Parallel()
		e := mustEngine(t, validator.Shape{
			Name:    "product",
			Catalog: validator.NewCatalog(validator.NotBlank("price")),
		})
		report, err := e.Validate(&product{Price: ptr(5)}, create)
		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, validator.ErrConfiguration)
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
	})
}
