package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tempmap/internal/forecast"
)

var fukuoka = forecast.Location{Name: "Fukuoka", Lat: 33.5904, Lon: 130.4017}

func TestFetchHourlyParsesAlignedArrays(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":  r.URL.Query().Get("latitude"),
			"longitude": r.URL.Query().Get("longitude"),
			"hourly":    r.URL.Query().Get("hourly"),
			"timezone":  r.URL.Query().Get("timezone"),
			"past_days": r.URL.Query().Get("past_days"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{"time":["2026-08-23T00:00","2026-08-23T01:00"],"temperature_2m":[24.1,-1.5]}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), srv.URL, time.UTC)

	samples, err := p.FetchHourly(context.Background(), fukuoka)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["hourly"] != "temperature_2m" {
		t.Fatalf("hourly query = %q", gotQuery["hourly"])
	}
	if gotQuery["past_days"] != "1" {
		t.Fatalf("past_days query = %q", gotQuery["past_days"])
	}
	if gotQuery["timezone"] != "UTC" {
		t.Fatalf("timezone query = %q", gotQuery["timezone"])
	}
	if gotQuery["latitude"] != "33.5904" || gotQuery["longitude"] != "130.4017" {
		t.Fatalf("coordinates = %s/%s", gotQuery["latitude"], gotQuery["longitude"])
	}

	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	want := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)
	if !samples[1].Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", samples[1].Timestamp, want)
	}
	if samples[1].Temperature != -1.5 {
		t.Fatalf("temperature = %v, want -1.5", samples[1].Temperature)
	}
	if samples[0].Location != "Fukuoka" || samples[0].Lat != fukuoka.Lat {
		t.Fatalf("location fields not propagated: %+v", samples[0])
	}
}

func TestFetchHourlyMisalignedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly":{"time":["2026-08-23T00:00","2026-08-23T01:00"],"temperature_2m":[24.1]}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), srv.URL, time.UTC)

	if _, err := p.FetchHourly(context.Background(), fukuoka); err == nil {
		t.Fatal("misaligned hourly arrays must be a parse error")
	}
}

func TestFetchHourlyMissingSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), srv.URL, time.UTC)

	if _, err := p.FetchHourly(context.Background(), fukuoka); err == nil {
		t.Fatal("missing hourly series must be an error")
	}
}

func TestFetchHourlyNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), srv.URL, time.UTC)

	if _, err := p.FetchHourly(context.Background(), fukuoka); err == nil {
		t.Fatal("non-2xx status must be an error")
	}
}
