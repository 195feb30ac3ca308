package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, u := range ValidUnits {
		if !IsValid(u) {
			t.Errorf("IsValid(%q) = false", u)
		}
	}
	if IsValid("furlongs") {
		t.Error("IsValid(furlongs) = true")
	}
}

func TestGetValidUnitsString(t *testing.T) {
	if got := GetValidUnitsString(); got != "mps, mph, kmph, kph" {
		t.Errorf("GetValidUnitsString() = %q", got)
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		MPS:       "m/s",
		MPH:       "mph",
		KMPH:      "km/h",
		KPH:       "km/h",
		"furlong": "furlong",
	}
	for unit, want := range tests {
		if got := Label(unit); got != want {
			t.Errorf("Label(%q) = %q, want %q", unit, got, want)
		}
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{MPS, 10},
		{MPH, 22.369362920544},
		{KMPH, 36},
		{KPH, 36},
		{"unknown", 10},
	}
	for _, tt := range tests {
		got := ConvertSpeed(10, tt.unit)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ConvertSpeed(10, %q) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestConvert_MPHToKPH(t *testing.T) {
	// The running-speed tutorial labels bars in km/h.
	got := Convert(50, MPH, KPH)
	if math.Abs(got-80.4672) > 1e-9 {
		t.Errorf("Convert(50 mph -> kph) = %v, want 80.4672", got)
	}
	if got := Convert(50, "knots", KPH); got != 50 {
		t.Errorf("unknown source unit should pass through, got %v", got)
	}
}

func TestAngles(t *testing.T) {
	if got := Degrees(math.Pi); math.Abs(got-180) > 1e-12 {
		t.Errorf("Degrees(pi) = %v", got)
	}
	if got := Radians(90); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Radians(90) = %v", got)
	}
	for _, deg := range []float64{-270, -1, 0, 33.3, 720} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("round trip %v -> %v", deg, got)
		}
	}
}
