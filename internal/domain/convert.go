package domain

import "math"

// kPaPerPSI is the exact conversion factor for pounds per square inch to
// kilopascal used throughout: 14.7 psi ≈ 101.35 kPa.
const kPaPerPSI = 6.894757

// ConvertFunc is a pure unit conversion. All registered conversions are
// deterministic: identical input yields bit-identical output.
type ConvertFunc func(float64) float64

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 { return c*9.0/5.0 + 32.0 }

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }

// PSIToKPa converts pounds per square inch to kilopascal.
func PSIToKPa(psi float64) float64 { return psi * kPaPerPSI }

// KPaToPSI converts kilopascal to pounds per square inch.
func KPaToPSI(kpa float64) float64 { return kpa / kPaPerPSI }

// FeetToFlightLevel converts altitude in feet to a flight level
// (hundreds of feet): 8500 ft → 85.
func FeetToFlightLevel(ft float64) float64 { return ft / 100.0 }

func identity(v float64) float64 { return v }

// conversions is the registry the field-mapping table names into.
var conversions = map[string]ConvertFunc{
	"identity":   identity,
	"c_to_f":     CelsiusToFahrenheit,
	"f_to_c":     FahrenheitToCelsius,
	"psi_to_kpa": PSIToKPa,
	"kpa_to_psi": KPaToPSI,
	"ft_to_fl":   FeetToFlightLevel,
}

// inverses pairs each conversion with its inverse where one is defined.
// Used by round-trip checks; ft_to_fl has no registered inverse because
// flight-level rounding is lossy by design.
var inverses = map[string]string{
	"identity":   "identity",
	"c_to_f":     "f_to_c",
	"f_to_c":     "c_to_f",
	"psi_to_kpa": "kpa_to_psi",
	"kpa_to_psi": "psi_to_kpa",
}

// Conversion looks up a registered conversion by name.
func Conversion(name string) (ConvertFunc, bool) {
	fn, ok := conversions[name]
	return fn, ok
}

// InverseConversion looks up the inverse of a named conversion, if defined.
func InverseConversion(name string) (ConvertFunc, bool) {
	inv, ok := inverses[name]
	if !ok {
		return nil, false
	}
	return conversions[inv], true
}

// RoundTo rounds half away from zero to the given number of decimals.
// The single rounding policy for all derived PIREP values.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
