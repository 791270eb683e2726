package forecast

import (
	"context"
)

// Provider abstracts the hourly forecast source (Open-Meteo in production).
type Provider interface {
	Name() string
	// FetchHourly returns the full hourly temperature series for one
	// location, in the order the source returned it (chronological).
	FetchHourly(ctx context.Context, loc Location) ([]Sample, error)
}

// FetchFailure records one location whose fetch did not produce data.
// Failures are surfaced as warnings, never as errors to the caller.
type FetchFailure struct {
	Location string `json:"location"`
	Reason   string `json:"reason"`
}
