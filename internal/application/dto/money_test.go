package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"1234.5", "1,234.50"},
		{"1234567.891", "1,234,567.89"}, // redondeo a 2 decimales
		{"-500", "-500.00"},
		{"999.995", "1,000.00"},
	}
	for _, c := range cases {
		got := FormatMoney(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "FormatMoney(%s)", c.in)
	}
}
