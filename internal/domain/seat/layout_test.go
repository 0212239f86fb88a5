package seat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbooking/internal/domain"
)

func TestLayoutFor(t *testing.T) {
	cases := []struct {
		capacity int
		want     Layout
	}{
		{48, Layout{StartRow: 12, EndRow: 23}},
		{1, Layout{StartRow: 12, EndRow: 12}},
		{4, Layout{StartRow: 12, EndRow: 12}},
		{5, Layout{StartRow: 12, EndRow: 13}},
		{50, Layout{StartRow: 12, EndRow: 24}},
		{0, Layout{StartRow: 12, EndRow: 12}},
		{-8, Layout{StartRow: 12, EndRow: 12}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LayoutFor(tc.capacity), "capacity %d", tc.capacity)
	}
	assert.Equal(t, 12, LayoutFor(48).Rows())
}

func TestValidate_Capacity48(t *testing.T) {
	assert.NoError(t, Validate("14C", 48))
	assert.NoError(t, Validate("12A", 48))
	assert.NoError(t, Validate("23D", 48))
	assert.NoError(t, Validate("14c", 48))

	for _, bad := range []string{"24A", "14E", "11A", "30A", "", "C14", "14", "014C", "1 4C", "14CC"} {
		err := Validate(bad, 48)
		require.Error(t, err, bad)
		assert.True(t, domain.IsValidation(err), bad)
	}
}

func TestValidate_NormalizationIsIdempotent(t *testing.T) {
	for _, capacity := range []int{1, 48, 100} {
		for _, code := range []string{"14c", "12a", "24A", "13e"} {
			a := Validate(" "+code+" ", capacity) == nil
			b := Validate(NormalizeCode(code), capacity) == nil
			assert.Equal(t, a, b, "%q capacity %d", code, capacity)
		}
	}
	assert.Equal(t, "14C", NormalizeCode(" 14c "))
}

func TestValidate_SingleRow(t *testing.T) {
	assert.NoError(t, Validate("12D", 1))
	assert.Error(t, Validate("13A", 1))
}

func TestValidate_RowsAboveNineteenAreNotPrefixMatched(t *testing.T) {
	// rows 12..24: "2" alone must not match as a prefix of "24"
	assert.Error(t, Validate("2A", 50))
	assert.NoError(t, Validate("24A", 50))
	assert.Error(t, Validate("25A", 50))
}

func TestAllowedMessage(t *testing.T) {
	assert.Equal(t, "Allowed rows 12–23 and columns A–D (e.g., 14C)", LayoutFor(48).AllowedMessage())
	assert.Equal(t, "Allowed rows 12–12 and columns A–D (e.g., 12C)", LayoutFor(1).AllowedMessage())

	err := Validate("30A", 48)
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "seat", verr.Field)
	assert.Contains(t, verr.Msg, "12–23")
}

func TestCodes(t *testing.T) {
	codes := LayoutFor(8).Codes()
	assert.Equal(t, []string{"12A", "12B", "12C", "12D", "13A", "13B", "13C", "13D"}, codes)
	assert.Len(t, LayoutFor(48).Codes(), 48)
}
