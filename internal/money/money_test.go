package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Rp0,00"},
		{"small", 500, "Rp500,00"},
		{"thousands", 15000, "Rp15.000,00"},
		{"millions", 1234567.89, "Rp1.234.567,89"},
		{"exact group boundary", 100000, "Rp100.000,00"},
		{"fraction only", 0.5, "Rp0,50"},
		{"negative", -2500.5, "-Rp2.500,50"},
		{"rounding to two decimals", 9999.999, "Rp10.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(tt.amount))
		})
	}
}
