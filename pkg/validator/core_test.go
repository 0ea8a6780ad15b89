package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

func TestRule_AppliesTo(t *testing.T) {
	t.Parallel()

	t.Run("untagged rule applies to every profile", func(t *testing.T) {
		t.Parallel()
		r := validator.NotNull("price")
		assert.True(t, r.AppliesTo(create))
		assert.True(t, r.AppliesTo(edit))
		assert.True(t, r.AppliesTo("unknown"))
	})

	t.Run("tagged rule applies only to its profiles", func(t *testing.T) {
		t.Parallel()
		r := validator.Max("quantity", 9999, create)
		assert.True(t, r.AppliesTo(create))
		assert.False(t, r.AppliesTo(edit))
	})

	t.Run("rule with several profiles", func(t *testing.T) {
		t.Parallel()
		r := validator.NotBlank("name", create, edit)
		assert.True(t, r.AppliesTo(create))
		assert.True(t, r.AppliesTo(edit))
		assert.False(t, r.AppliesTo("archive"))
	})
}

func TestRule_Code(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "required", validator.NotBlank("name").Code())
	assert.Equal(t, "required", validator.NotNull("price").Code())
	assert.Equal(t, "range", validator.Range("price", 1, 2).Code())
	assert.Equal(t, "max", validator.Max("quantity", 10).Code())
	assert.Equal(t, "totalPriceMin", validator.CrossField("totalPriceMin").Code())
}

func TestRule_Constructors(t *testing.T) {
	t.Parallel()

	t.Run("range keeps min and max as params", func(t *testing.T) {
		t.Parallel()
		r := validator.Range("price", 1000, 1000000, create)
		assert.Equal(t, "price", r.Field)
		assert.Equal(t, validator.KindRange, r.Kind)
		assert.Equal(t, []any{int64(1000), int64(1000000)}, r.Params)
		assert.Equal(t, []validator.Profile{create}, r.Profiles)
	})

	t.Run("cross-field rule has no field", func(t *testing.T) {
		t.Parallel()
		r := validator.CrossField("totalPriceMin")
		assert.Empty(t, r.Field)
		assert.True(t, r.IsCrossField())
		assert.Equal(t, "totalPriceMin", r.Name)
		assert.Empty(t, r.Profiles)
	})

	t.Run("profiles slice is copied", func(t *testing.T) {
		t.Parallel()
		profiles := []validator.Profile{create}
		r := validator.NotNull("price", profiles...)
		profiles[0] = edit
		assert.True(t, r.AppliesTo(create))
		assert.False(t, r.AppliesTo(edit))
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NotBlank", validator.KindNotBlank.String())
	assert.Equal(t, "NotNull", validator.KindNotNull.String())
	assert.Equal(t, "Range", validator.KindRange.String())
	assert.Equal(t, "Max", validator.KindMax.String())
	assert.Equal(t, "CrossField", validator.KindCrossField.String())
	assert.Equal(t, "Kind(99)", validator.Kind(99).String())
}
