package forecast

import (
	"sort"
	"time"
)

// HourLayout is the local-time layout Open-Meteo uses for hourly timestamps.
const HourLayout = "2006-01-02T15:04"

// Location is a fixed named point we fetch forecasts for.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DefaultLocations are the seven Kyushu prefectural capitals. Declaration
// order is stable and determines row ordering everywhere downstream.
var DefaultLocations = []Location{
	{Name: "Fukuoka", Lat: 33.5904, Lon: 130.4017},
	{Name: "Saga", Lat: 33.2494, Lon: 130.2974},
	{Name: "Nagasaki", Lat: 32.7450, Lon: 129.8739},
	{Name: "Kumamoto", Lat: 32.7900, Lon: 130.7420},
	{Name: "Oita", Lat: 33.2381, Lon: 131.6119},
	{Name: "Miyazaki", Lat: 31.9110, Lon: 131.4240},
	{Name: "Kagoshima", Lat: 31.5600, Lon: 130.5580},
}

// Sample is one (location, timestamp, temperature) observation.
type Sample struct {
	Location    string    `json:"location"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
}

// Dataset is the flattened series across all locations and the full time grid.
// Ordering: outer = location declaration order, inner = chronological per
// location, as returned by the API.
type Dataset []Sample

// FilterByTime returns the samples whose timestamp exactly equals ts.
// A timestamp absent from the dataset yields an empty result, not an error.
func (d Dataset) FilterByTime(ts time.Time) Dataset {
	var out Dataset
	for _, s := range d {
		if s.Timestamp.Equal(ts) {
			out = append(out, s)
		}
	}
	return out
}

// TimeBounds returns the minimum and maximum timestamp present in the
// dataset. ok is false for an empty dataset.
func (d Dataset) TimeBounds() (min, max time.Time, ok bool) {
	if len(d) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = d[0].Timestamp, d[0].Timestamp
	for _, s := range d[1:] {
		if s.Timestamp.Before(min) {
			min = s.Timestamp
		}
		if s.Timestamp.After(max) {
			max = s.Timestamp
		}
	}
	return min, max, true
}

// Timestamps returns the distinct timestamps of the dataset in chronological
// order.
func (d Dataset) Timestamps() []time.Time {
	var out []time.Time
	seen := make(map[time.Time]struct{}, len(d))
	for _, s := range d {
		if _, ok := seen[s.Timestamp]; ok {
			continue
		}
		seen[s.Timestamp] = struct{}{}
		out = append(out, s.Timestamp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
