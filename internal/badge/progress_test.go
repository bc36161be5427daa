package badge

import (
	"math"
	"testing"

	"onebase/internal/constant"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		tx    uint64
		value float64
		unit  string
	}{
		{"zero", 0, 0, constant.UnitPPM},
		{"below threshold", 99_999, 100, constant.UnitPPM},
		{"at threshold", 100_000, 0.01, constant.UnitPercent},
		{"half", 500_000_000, 50, constant.UnitPercent},
		{"small ppm", 1_234, 1.23, constant.UnitPPM},
		{"milestone", 1_000_000_000, 100, constant.UnitPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.tx)
			if got.DisplayValue != tt.value {
				t.Errorf("DisplayValue = %v, want %v", got.DisplayValue, tt.value)
			}
			if got.Unit != tt.unit {
				t.Errorf("Unit = %q, want %q", got.Unit, tt.unit)
			}
		})
	}
}

func TestProgress_StrokeOffset(t *testing.T) {
	if got := Progress(0).StrokeOffset; math.Abs(got-Circumference) > 1e-9 {
		t.Errorf("empty offset = %v, want %v", got, Circumference)
	}

	if got := Progress(500_000_000).StrokeOffset; math.Abs(got-Circumference/2) > 1e-9 {
		t.Errorf("half offset = %v, want %v", got, Circumference/2)
	}

	if got := Progress(1_000_000_000).StrokeOffset; math.Abs(got) > 1e-9 {
		t.Errorf("full offset = %v, want 0", got)
	}

	// Past the milestone the offset goes negative instead of clamping.
	if got := Progress(2_000_000_000).StrokeOffset; got >= 0 {
		t.Errorf("overflow offset = %v, want negative", got)
	}
}

func TestProgress_ValueString(t *testing.T) {
	if got := Progress(500_000_000).String(); got != "50%" {
		t.Errorf("String() = %q, want 50%%", got)
	}
	if got := Progress(100_000).Value(); got != "0.01" {
		t.Errorf("Value() = %q, want 0.01", got)
	}
	if got := Progress(99_999).String(); got != "100ppm" {
		t.Errorf("String() = %q, want 100ppm", got)
	}
}

func TestRound2_NonFinite(t *testing.T) {
	if got := round2(math.NaN()); got != 0 {
		t.Errorf("round2(NaN) = %v, want 0", got)
	}
	if got := round2(math.Inf(1)); got != 0 {
		t.Errorf("round2(+Inf) = %v, want 0", got)
	}
}
