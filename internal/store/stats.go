package store

import (
	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// Aggregation queries. All of them are pure reads recomputed from scratch on
// every call — there is no incremental aggregation state to keep consistent.
// Maxima break ties by enum declaration order and fall back to fixed defaults
// (Summer, Perch) when the collection holds no data.

// SeasonStats counts locations per preferred season. Locations, not visits:
// a location contributes exactly once regardless of how often it was visited.
func (s *Store) SeasonStats() map[domain.Season]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.Season]int, len(domain.Seasons))
	for _, l := range s.locations {
		out[l.Season]++
	}
	return out
}

// FishStats flattens every visit's fish list across every location and counts
// occurrences per species. Duplicates within a single visit count
// per-occurrence, exactly as stored.
func (s *Store) FishStats() map[domain.FishType]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.FishType]int, len(domain.FishTypes))
	for _, l := range s.locations {
		for _, v := range l.Visits {
			for _, f := range v.FishTypes {
				out[f]++
			}
		}
	}
	return out
}

// ResultStats counts visits per outcome rating across all locations.
func (s *Store) ResultStats() map[domain.ResultType]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.ResultType]int, len(domain.ResultTypes))
	for _, l := range s.locations {
		for _, v := range l.Visits {
			out[v.Result]++
		}
	}
	return out
}

// BestSeason returns the season with the most locations, Summer when the
// collection is empty.
func (s *Store) BestSeason() domain.Season {
	return maxByCount(s.SeasonStats(), domain.Seasons, domain.SeasonSummer)
}

// MostCommonFish returns the species with the most recorded catches, Perch
// when no catches exist.
func (s *Store) MostCommonFish() domain.FishType {
	return maxByCount(s.FishStats(), domain.FishTypes, domain.FishPerch)
}

// TotalLocations returns the number of tracked locations.
func (s *Store) TotalLocations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locations)
}

// TotalVisits sums the visit counts of every location.
func (s *Store) TotalVisits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.locations {
		total += l.VisitsCount()
	}
	return total
}

// Summary is a combined snapshot of every aggregation, computed in one pass
// for consumers that render them together.
type Summary struct {
	TotalLocations int
	TotalVisits    int
	SeasonStats    map[domain.Season]int
	FishStats      map[domain.FishType]int
	ResultStats    map[domain.ResultType]int
	BestSeason     domain.Season
	MostCommonFish domain.FishType
}

// Summary returns the current aggregation snapshot.
func (s *Store) Summary() Summary {
	seasons := s.SeasonStats()
	fish := s.FishStats()
	return Summary{
		TotalLocations: s.TotalLocations(),
		TotalVisits:    s.TotalVisits(),
		SeasonStats:    seasons,
		FishStats:      fish,
		ResultStats:    s.ResultStats(),
		BestSeason:     maxByCount(seasons, domain.Seasons, domain.SeasonSummer),
		MostCommonFish: maxByCount(fish, domain.FishTypes, domain.FishPerch),
	}
}

// maxByCount returns the value with the highest count, walking order so the
// first declared value wins ties. fallback is returned when every count is
// zero.
func maxByCount[T comparable](counts map[T]int, order []T, fallback T) T {
	best := fallback
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
