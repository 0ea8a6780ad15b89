package binder_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemservice/pkg/binder"
	"github.com/dmitrymomot/itemservice/pkg/validator"
)

type order struct {
	Title    *string  `form:"title" json:"title"`
	Price    *int     `form:"price" json:"price"`
	Quantity *int     `form:"quantity" json:"quantity"`
	Rate     float64  `form:"rate" json:"rate"`
	Active   bool     `form:"active" json:"active"`
	Tags     []string `form:"tags" json:"tags"`
	Internal string   `form:"-" json:"-"`
	note     string
}

func (o *order) ObjectName() string { return "order" }

func (o *order) Field(name string) (validator.Field, bool) {
	switch name {
	case "title":
		return validator.Field{Name: name, Type: "string", Value: o.Title}, true
	case "price":
		return validator.Field{Name: name, Type: "int", Value: o.Price}, true
	case "quantity":
		return validator.Field{Name: name, Type: "int", Value: o.Quantity}, true
	case "rate":
		return validator.Field{Name: name, Type: "float64", Value: o.Rate}, true
	case "active":
		return validator.Field{Name: name, Type: "bool", Value: o.Active}, true
	case "tags":
		return validator.Field{Name: name, Type: "[]string", Value: o.Tags}, true
	}
	return validator.Field{}, false
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds convertible values", func(t *testing.T) {
		t.Parallel()
		o := &order{}
		report := validator.NewReport(o, nil)
		err := binder.Form(url.Values{
			"title":    {"Pen"},
			"price":    {"1500"},
			"quantity": {" 3 "},
			"rate":     {"0.5"},
			"active":   {"on"},
			"tags":     {"a,b", "c"},
			"Internal": {"x"},
		}, o, report)
		require.NoError(t, err)
		assert.False(t, report.HasErrors())

		require.NotNil(t, o.Title)
		assert.Equal(t, "Pen", *o.Title)
		assert.Equal(t, 1500, *o.Price)
		assert.Equal(t, 3, *o.Quantity)
		assert.Equal(t, 0.5, o.Rate)
		assert.True(t, o.Active)
		assert.Equal(t, []string{"a", "b", "c"}, o.Tags)
		assert.Empty(t, o.Internal)
		assert.Empty(t, o.note)
	})

	t.Run("missing and empty values leave optional numbers nil", func(t *testing.T) {
		t.Parallel()
		o := &order{}
		report := validator.NewReport(o, nil)
		require.NoError(t, binder.Form(url.Values{"price": {""}, "title": {""}}, o, report))

		assert.Nil(t, o.Price)
		assert.Nil(t, o.Quantity)
		require.NotNil(t, o.Title)
		assert.Equal(t, "", *o.Title)
		assert.False(t, report.HasErrors())
	})

	t.Run("conversion failure is recorded and binding continues", func(t *testing.T) {
		t.Parallel()
		o := &order{}
		report := validator.NewReport(o, nil)
		err := binder.Form(url.Values{
			"title":    {"Pen"},
			"price":    {"qqq"},
			"quantity": {"1.5"},
			"rate":     {"2"},
		}, o, report)
		require.NoError(t, err)

		assert.Nil(t, o.Price)
		assert.Nil(t, o.Quantity)
		assert.Equal(t, "Pen", *o.Title)
		assert.Equal(t, 2.0, o.Rate)

		fes := report.FieldErrors()
		require.Len(t, fes, 2)
		assert.Equal(t, "price", fes[0].Field)
		assert.Equal(t, "qqq", fes[0].RejectedValue)
		assert.True(t, fes[0].BindingFailure)
		assert.Equal(t, []string{"typeMismatch.order.price", "typeMismatch.price", "typeMismatch.int", "typeMismatch"}, fes[0].Codes)
		assert.Equal(t, "quantity", fes[1].Field)
		assert.Equal(t, "1.5", fes[1].RejectedValue)

		assert.Equal(t, "qqq", report.FieldValue("price"))
		assert.Equal(t, "Pen", report.FieldValue("title"))
	})

	t.Run("failed multi-value keeps every raw value", func(t *testing.T) {
		t.Parallel()
		o := &order{}
		report := validator.NewReport(o, nil)
		require.NoError(t, binder.Form(url.Values{"price": {"1", "x"}}, o, report))

		// scalar fields only read the first value
		assert.False(t, report.HasErrors())
		assert.Equal(t, 1, *o.Price)

		report = validator.NewReport(o, nil)
		require.NoError(t, binder.Form(url.Values{"active": {"maybe", "yes"}}, o, report))
		fe, ok := report.FieldError("active")
		require.True(t, ok)
		assert.Equal(t, []string{"maybe", "yes"}, fe.RejectedValue)
	})

	t.Run("existing value is kept when conversion fails", func(t *testing.T) {
		t.Parallel()
		price := 700
		o := &order{Price: &price}
		report := validator.NewReport(o, nil)
		require.NoError(t, binder.Form(url.Values{"price": {"seven"}}, o, report))

		assert.Equal(t, 700, *o.Price)
		assert.Equal(t, "seven", report.FieldValue("price"))
	})
}

func TestForm_Misuse(t *testing.T) {
	t.Parallel()

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		o := order{}
		err := binder.Form(url.Values{}, o, validator.NewReport(&o, nil))
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})

	t.Run("pointer to non-struct", func(t *testing.T) {
		t.Parallel()
		n := 1
		err := binder.Form(url.Values{}, &n, validator.NewReport(&order{}, nil))
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})

	t.Run("nil report", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, binder.Form(url.Values{}, &order{}, nil), binder.ErrNilReport)
	})

	t.Run("unsupported field type", func(t *testing.T) {
		t.Parallel()
		type withMap struct {
			Meta map[string]string `form:"meta"`
		}
		err := binder.Form(url.Values{"meta": {"x"}}, &withMap{}, validator.NewReport(&order{}, nil))
		assert.ErrorIs(t, err, binder.ErrUnsupportedType)
	})

	t.Run("failed field the target does not declare", func(t *testing.T) {
		t.Parallel()
		type extra struct {
			Weight *int `form:"weight"`
		}
		err := binder.Form(url.Values{"weight": {"heavy"}}, &extra{}, validator.NewReport(&order{}, nil))
		assert.ErrorIs(t, err, validator.ErrUnknownField)
	})
}
