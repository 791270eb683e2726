package forecast

import (
	"context"
	"log"

	"tempmap/internal/cache"
)

// Snapshot bundles one retrieval's dataset with the per-location failures
// recorded while building it. It is what the memo slot holds.
type Snapshot struct {
	Data     Dataset
	Failures []FetchFailure
}

// Service orchestrates the per-location fetch loop and memoizes the result.
type Service struct {
	provider  Provider
	memo      *cache.Slot[Snapshot]
	locations []Location
}

// NewService creates a Service over a fixed set of locations.
func NewService(provider Provider, memo *cache.Slot[Snapshot], locations []Location) *Service {
	return &Service{
		provider:  provider,
		memo:      memo,
		locations: locations,
	}
}

// Snapshot returns the current dataset, fetching it if the memo slot is
// empty or expired. It never returns an error: a location that fails is
// recorded in Failures and skipped, and if every location fails the dataset
// is simply empty.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	if snap, ok := s.memo.Get(); ok {
		return snap
	}
	return s.fetch(ctx)
}

// Refresh discards the memoized dataset and fetches a fresh one.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	s.memo.Invalidate()
	return s.fetch(ctx)
}

// fetch runs the sequential per-location retrieval and stores the result.
// Location iteration order is the declaration order, which fixes row
// ordering for every consumer.
func (s *Service) fetch(ctx context.Context) Snapshot {
	var snap Snapshot

	for _, loc := range s.locations {
		samples, err := s.provider.FetchHourly(ctx, loc)
		if err != nil {
			log.Printf("WARN: fetch failed for %s: %v", loc.Name, err)
			snap.Failures = append(snap.Failures, FetchFailure{
				Location: loc.Name,
				Reason:   err.Error(),
			})
			continue
		}
		snap.Data = append(snap.Data, samples...)
	}

	s.memo.Set(snap)
	return snap
}
