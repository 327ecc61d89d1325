package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// FilteredLocations returns the locations whose name contains query as a
// case-insensitive, locale-aware substring. An empty query returns the full
// collection. Order is preserved from the source collection — this is a
// filter, not a re-sort.
func (s *Store) FilteredLocations(query string) []domain.Location {
	if query == "" {
		return s.Locations()
	}

	// x/text/search folds case under full Unicode rules, which plain
	// strings.Contains on lowered ASCII cannot do (e.g. İ/i, ß/ss).
	pattern := search.New(language.Und, search.IgnoreCase).CompileString(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Location
	for _, l := range s.locations {
		if start, _ := pattern.IndexString(l.Name); start >= 0 {
			out = append(out, l.Clone())
		}
	}
	return out
}
