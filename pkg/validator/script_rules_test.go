package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

func TestScriptCheck(t *testing.T) {
	t.Parallel()

	check, err := validator.ScriptCheck("price * quantity >= 10000", "price", "quantity")
	require.NoError(t, err)

	engine := mustEngine(t, validator.Shape{
		Name:    "product",
		Catalog: validator.NewCatalog(validator.CrossField("totalPriceMin")),
		Checks:  map[string]validator.CrossFieldCheck{"totalPriceMin": check},
	})

	t.Run("passes at the floor", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(newProduct("pen", 1000, 10), create)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())
	})

	t.Run("rejects below the floor with operand arguments", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(newProduct("pen", 999, 10), create)
		require.NoError(t, err)

		oe := report.ObjectErrors()
		require.Len(t, oe, 1)
		assert.Equal(t, []string{"totalPriceMin.product", "totalPriceMin"}, oe[0].Codes)
		assert.Equal(t, []any{999, 10}, oe[0].Arguments)
	})

	t.Run("skipped when an operand is nil", func(t *testing.T) {
		t.Parallel()
		report, err := engine.Validate(&product{Quantity: ptr(1)}, create)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())
	})

	t.Run("undeclared operand is a configuration error", func(t *testing.T) {
		t.Parallel()
		bad, err := validator.ScriptCheck("weight > 0", "weight")
		require.NoError(t, err)
		e := mustEngine(t, validator.Shape{
			Name:    "product",
			Catalog: validator.NewCatalog(validator.CrossField("positive")),
			Checks:  map[string]validator.CrossFieldCheck{"positive": bad},
		})
		_, err = e.Validate(&product{}, create)
		assert.ErrorIs(t, err, validator.ErrUnknownField)
		assert.ErrorIs(t, err, validator.ErrConfiguration)
	})
}

func TestScriptCheck_Compile(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ScriptCheck("price * >= 1", "price")
		assert.ErrorIs(t, err, validator.ErrInvalidExpression)
	})

	t.Run("no operands", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ScriptCheck("true")
		assert.ErrorIs(t, err, validator.ErrInvalidExpression)
	})
}
