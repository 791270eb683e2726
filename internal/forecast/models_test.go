package forecast

import (
	"testing"
	"time"
)

func grid(locations []string, times []time.Time) Dataset {
	var d Dataset
	for _, loc := range locations {
		for _, ts := range times {
			d = append(d, Sample{Location: loc, Timestamp: ts, Temperature: 10})
		}
	}
	return d
}

func TestFilterByTimeRoundTrip(t *testing.T) {
	base := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}
	locations := []string{"Fukuoka", "Saga", "Nagasaki", "Kumamoto"}

	d := grid(locations, times)

	total := 0
	for _, ts := range times {
		got := d.FilterByTime(ts)
		if len(got) != len(locations) {
			t.Fatalf("filter at %v returned %d samples, want %d", ts, len(got), len(locations))
		}
		for _, s := range got {
			if !s.Timestamp.Equal(ts) {
				t.Fatalf("sample timestamp %v leaked into filter for %v", s.Timestamp, ts)
			}
		}
		total += len(got)
	}
	if total != len(d) {
		t.Fatalf("union of filters has %d samples, dataset has %d", total, len(d))
	}
}

func TestFilterByTimeMissReturnsEmpty(t *testing.T) {
	base := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	d := grid([]string{"Oita"}, []time.Time{base})

	got := d.FilterByTime(base.Add(30 * time.Minute))
	if len(got) != 0 {
		t.Fatalf("expected no samples for absent timestamp, got %d", len(got))
	}
}

func TestTimeBoundsEmpty(t *testing.T) {
	var d Dataset
	if _, _, ok := d.TimeBounds(); ok {
		t.Fatal("empty dataset must report no bounds")
	}
}

func TestTimestampsSortedDistinct(t *testing.T) {
	base := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(time.Hour), base, base.Add(2 * time.Hour)}
	d := grid([]string{"Miyazaki", "Kagoshima"}, times)

	got := d.Timestamps()
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct timestamps, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Before(got[i-1]) {
			t.Fatalf("timestamps out of order: %v before %v", got[i], got[i-1])
		}
	}
}
