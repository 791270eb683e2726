package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"tempmap/internal/forecast"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements forecast.Provider against the Open-Meteo
// hourly forecast API. It requests the temperature_2m series in a fixed
// civil timezone with one past day included.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	tz      *time.Location
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider. baseURL may be empty to use the
// public endpoint; tz is the civil timezone hourly timestamps are parsed in.
func NewOpenMeteoProvider(client *http.Client, baseURL string, tz *time.Location) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		tz:      tz,
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchHourly fetches and flattens the hourly series for one location.
func (p *OpenMeteoProvider) FetchHourly(ctx context.Context, loc forecast.Location) ([]forecast.Sample, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%.4f", loc.Lat))
		values.Set("longitude", fmt.Sprintf("%.4f", loc.Lon))
		values.Set("hourly", "temperature_2m")
		values.Set("timezone", p.tz.String())
		values.Set("past_days", "1")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly struct {
			Time          []string  `json:"time"`
			Temperature2M []float64 `json:"temperature_2m"`
		} `json:"hourly"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	times := payload.Hourly.Time
	temps := payload.Hourly.Temperature2M
	if len(times) == 0 {
		return nil, fmt.Errorf("hourly series missing or empty")
	}
	if len(times) != len(temps) {
		return nil, fmt.Errorf("hourly arrays misaligned: %d times vs %d temperatures", len(times), len(temps))
	}

	samples := make([]forecast.Sample, 0, len(times))
	for i, ts := range times {
		t, err := time.ParseInLocation(forecast.HourLayout, ts, p.tz)
		if err != nil {
			return nil, fmt.Errorf("bad hourly timestamp %q: %w", ts, err)
		}
		samples = append(samples, forecast.Sample{
			Location:    loc.Name,
			Lat:         loc.Lat,
			Lon:         loc.Lon,
			Timestamp:   t,
			Temperature: temps[i],
		})
	}

	return samples, nil
}
