package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupee Only"},
		{19, "Nineteen Rupees Only"},
		{42, "Forty Two Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{1062, "One Thousand Sixty Two Rupees Only"},
		{1062.5, "One Thousand Sixty Two Rupees and Fifty Paise Only"},
		{100000, "One Lakh Rupees Only"},
		{2550000, "Twenty Five Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678.9, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees and Ninety Paise Only"},
		{15000000000, "One Thousand Five Hundred Crore Rupees Only"},
		{200000000000, "Twenty Thousand Crore Rupees Only"},
		{1000000000000, "One Lakh Crore Rupees Only"},
		{-30, "Minus Thirty Rupees Only"},
		{0.05, "Zero Rupees and Five Paise Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Rupees(tc.amount), "amount %v", tc.amount)
	}
}
