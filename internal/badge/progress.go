package badge

import (
	"math"
	"strconv"

	"onebase/internal/constant"
)

// IndicatorRadius is the radius of the progress circle in a 100x100 viewBox.
const IndicatorRadius = 45

// Circumference of the progress circle.
var Circumference = 2 * math.Pi * IndicatorRadius

// ProgressReading is the display form of a transaction count measured
// against the milestone.
type ProgressReading struct {
	DisplayValue float64 `json:"display_value"`
	Unit         string  `json:"unit"`
	StrokeOffset float64 `json:"stroke_offset"`
}

// Progress converts a raw transaction count into a ProgressReading.
//
// Counts at or above PercentThreshold of the milestone read as a percentage,
// smaller ones in ppm. The stroke offset is not clamped, so a count past the
// milestone yields a negative offset.
func Progress(transactions uint64) ProgressReading {
	ratio := float64(transactions) / constant.Milestone

	value, scale, unit := ratio*1_000_000, 1_000_000.0, constant.UnitPPM
	if ratio >= constant.PercentThreshold {
		value, scale, unit = ratio*100, 100.0, constant.UnitPercent
	}

	return ProgressReading{
		DisplayValue: round2(value),
		Unit:         unit,
		StrokeOffset: Circumference - (value/scale)*Circumference,
	}
}

// IsPercentage reports whether the reading is expressed in percent.
func (p ProgressReading) IsPercentage() bool {
	return p.Unit == constant.UnitPercent
}

// Value is the display value without trailing zeros, e.g. "50" or "0.01".
func (p ProgressReading) Value() string {
	return strconv.FormatFloat(p.DisplayValue, 'f', -1, 64)
}

func (p ProgressReading) String() string {
	return p.Value() + p.Unit
}

// round2 rounds the exact binary value to two decimals; anything that is not
// a finite number becomes 0.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return 0
	}
	return r
}
