package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	base := errors.New("driver said no")

	v := ValidationError{Field: "seat", Msg: "Allowed rows 12–23", Err: base}
	c := ConflictError{Resource: "seat", Msg: "Seat already taken for this booking", Err: base}
	n := NotFoundError{Resource: "booking"}

	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", v)))
	assert.False(t, IsValidation(c))
	assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", c)))
	assert.False(t, IsConflict(n))
	assert.True(t, IsNotFound(n))

	assert.ErrorIs(t, v, base)
	assert.ErrorIs(t, c, base)

	assert.Equal(t, "seat: Allowed rows 12–23", v.Error())
	assert.Equal(t, "Seat already taken for this booking", c.Error())
	assert.Equal(t, "seat conflict", ConflictError{Resource: "seat"}.Error())
	assert.Equal(t, "booking not found", n.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "booking not found", Message(fmt.Errorf("x: %w", NotFoundError{Resource: "booking"}), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}

func TestFieldError(t *testing.T) {
	err := FieldError(map[string]string{"last_name": "required", "booking_id": "required"})
	assert.True(t, IsValidation(err))
	assert.Equal(t, `booking_id: failed "required" check`, err.Error())
	assert.Equal(t, "invalid request", FieldError(nil).Error())
}
