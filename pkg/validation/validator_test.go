package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"min=8"`
	Rating   float64 `json:"rating" validate:"lte=5"`
}

func TestToDetails(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	err := v.Struct(signup{Email: "nope", Password: "short", Rating: 7})
	assert.Equal(t, map[string]string{
		"name":     "is required",
		"email":    "must be a valid email",
		"password": "must be at least 8 characters",
		"rating":   "must be less than or equal to 5",
	}, ToDetails(err))
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var s signup
	err := json.Unmarshal([]byte(`{"name":`), &s)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Equal(t, map[string]string{"payload": "boom"}, ToDetails(errors.New("boom")))
	assert.Nil(t, ToDetails(nil))
}
