// Package render derives the visual attributes the 3D column layer consumes
// from raw temperature samples.
package render

import (
	"math"

	"tempmap/internal/forecast"
)

// RGBA is a color as the renderer wants it: a [r, g, b, a] JSON array with
// channels in [0, 255].
type RGBA [4]int

// ElevationScale converts degrees Celsius into the unit-less column height.
// It is a visual exaggeration knob, not a physical conversion.
const ElevationScale = 3000

// TemperatureColor maps a temperature onto a blue-green-red diverging
// gradient. The nominal range [-5, 35] degrees C normalizes to [0, 1];
// values outside saturate at the boundary color. Alpha is fixed.
func TemperatureColor(temp float64) RGBA {
	t := (temp + 5) / 40
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	r := int(255 * t)
	g := int(255 * (1 - math.Abs(t-0.5)*2))
	b := int(255 * (1 - t))
	return RGBA{r, g, b, 180}
}

// Elevation is linear in temperature. Negative temperatures yield negative
// elevations; clamping, if any, is the renderer's business.
func Elevation(temp float64) float64 {
	return temp * ElevationScale
}

// ColumnRow is one renderer-facing record, with position, height and color
// precomputed.
type ColumnRow struct {
	Location    string  `json:"location_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Elevation   float64 `json:"elevation"`
	Color       RGBA    `json:"color"`
}

// Rows converts samples into renderer rows, preserving order.
func Rows(samples forecast.Dataset) []ColumnRow {
	rows := make([]ColumnRow, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, ColumnRow{
			Location:    s.Location,
			Lat:         s.Lat,
			Lon:         s.Lon,
			Timestamp:   s.Timestamp.Format(forecast.HourLayout),
			Temperature: s.Temperature,
			Elevation:   Elevation(s.Temperature),
			Color:       TemperatureColor(s.Temperature),
		})
	}
	return rows
}
