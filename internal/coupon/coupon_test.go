package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FirstOrder(t *testing.T) {
	effect, err := Validate("FIRSTFREE", 0)
	require.NoError(t, err)
	assert.True(t, effect.WaiveDeliveryFee)
	assert.Equal(t, FirstOrderCode, effect.Code)
	assert.Equal(t, 27, effect.Discount(27))
}

func TestValidate_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"firstfree", "FirstFree", "FIRSTFREE"} {
		_, err := Validate(code, 0)
		assert.NoError(t, err, code)
	}
}

func TestValidate_NotFirstOrder(t *testing.T) {
	// The first-order rule wins regardless of code correctness.
	for _, code := range []string{"FIRSTFREE", "BOGUS"} {
		effect, err := Validate(code, 1)
		assert.ErrorIs(t, err, ErrNotFirstOrder, code)
		assert.Equal(t, 0, effect.Discount(27))
	}
}

func TestValidate_UnknownCode(t *testing.T) {
	effect, err := Validate("HALFOFF", 0)
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.False(t, effect.WaiveDeliveryFee)
}

func TestEffect_ZeroValueGivesNoDiscount(t *testing.T) {
	assert.Equal(t, 0, Effect{}.Discount(44))
}
