package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name     string
		fn       ConvertFunc
		input    float64
		expected float64
	}{
		{"boiling point C to F", CelsiusToFahrenheit, 100, 212},
		{"freezing point C to F", CelsiusToFahrenheit, 0, 32},
		{"negative C to F", CelsiusToFahrenheit, -40, -40},
		{"F to C", FahrenheitToCelsius, 212, 100},
		{"sea level PSI to kPa", PSIToKPa, 14.7, 101.35292790},
		{"feet to flight level", FeetToFlightLevel, 8500, 85},
		{"zero feet", FeetToFlightLevel, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.fn(tt.input), 1e-6)
		})
	}
}

func TestConversionRegistry(t *testing.T) {
	for _, name := range []string{"identity", "c_to_f", "f_to_c", "psi_to_kpa", "kpa_to_psi", "ft_to_fl"} {
		fn, ok := Conversion(name)
		require.True(t, ok, "conversion %s not registered", name)
		require.NotNil(t, fn)
	}

	_, ok := Conversion("furlongs_per_fortnight")
	assert.False(t, ok)
}

func TestConversionRoundTrips(t *testing.T) {
	// Converting through a mapping and back recovers the original within
	// rounding tolerance wherever an inverse is defined.
	inputs := []float64{-40, -2, 0, 14.7, 100, 212}

	for name := range conversions {
		inv, ok := InverseConversion(name)
		if !ok {
			continue
		}
		fwd, _ := Conversion(name)
		for _, v := range inputs {
			assert.InDelta(t, v, inv(fwd(v)), 1e-9, "%s round trip of %g", name, v)
		}
	}
}

func TestInverseConversion_LossyHasNone(t *testing.T) {
	_, ok := InverseConversion("ft_to_fl")
	assert.False(t, ok)
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected float64
	}{
		{"two decimals", 101.35292790, 2, 101.35},
		{"one decimal", 212.04, 1, 212.0},
		{"nearest integer", 84.6, 0, 85},
		{"half away from zero", 2.5, 0, 3},
		{"negative half away from zero", -2.5, 0, -3},
		{"already exact", 68, 2, 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundTo(tt.value, tt.decimals))
		})
	}
}
