// Package units provides the speed and angle conversions used when the
// tutorials relabel axes and bars in a second unit.
package units

import "strings"

// Speed unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// ValidUnits contains all valid speed unit values
var ValidUnits = []string{MPS, MPH, KMPH, KPH}

// metersPerSecond holds the number of m/s in one of each unit.
var metersPerSecond = map[string]float64{
	MPS:  1,
	MPH:  0.44704,
	KMPH: 1 / 3.6,
	KPH:  1 / 3.6,
}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	_, ok := metersPerSecond[unit]
	return ok
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// Label returns the short label printed after a value in unit.
func Label(unit string) string {
	switch unit {
	case MPS:
		return "m/s"
	case MPH:
		return "mph"
	case KMPH, KPH:
		return "km/h"
	}
	return unit
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Unknown units return the input unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	f, ok := metersPerSecond[targetUnits]
	if !ok {
		return speedMPS
	}
	return speedMPS / f
}

// Convert converts a speed between any two valid units. Unknown units on
// either side leave the value unchanged.
func Convert(v float64, from, to string) float64 {
	f, ok := metersPerSecond[from]
	if !ok {
		return v
	}
	return ConvertSpeed(v*f, to)
}
