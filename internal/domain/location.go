// Package domain contains the core data types for the fishing logbook.
// This package holds no behavior beyond structural validity and derived
// read-only fields; it is imported by every other internal package
// (blob codec, store, handler).
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location represents a single tracked fishing spot.
// A location is the top-level aggregate; visits belong to a location and are
// deleted with it. The ID is assigned once at creation and never reassigned.
type Location struct {
	ID        uuid.UUID
	Name      string
	WaterType WaterType
	Season    Season
	Notes     string
	Visits    []Visit
}

// NewLocation constructs a Location with a fresh identity and no visits.
// The name is trimmed of surrounding whitespace before storage.
func NewLocation(name string, water WaterType, season Season, notes string) Location {
	return Location{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		WaterType: water,
		Season:    season,
		Notes:     notes,
	}
}

// Validate reports whether the location is structurally valid.
//   - Name must be non-empty after trimming.
//   - WaterType and Season must be declared enum members.
//   - Every visit must itself be valid.
func (l Location) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !l.WaterType.Valid() {
		return fmt.Errorf("%w: unknown water type %q", ErrValidation, l.WaterType)
	}
	if !l.Season.Valid() {
		return fmt.Errorf("%w: unknown season %q", ErrValidation, l.Season)
	}
	for _, v := range l.Visits {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// VisitsCount returns the number of recorded visits.
// It is computed from the current Visits slice, never cached.
func (l Location) VisitsCount() int { return len(l.Visits) }

// LastVisitDate returns the maximum visit date, or false when there are no
// visits. Like VisitsCount it is always derived from the live slice.
func (l Location) LastVisitDate() (time.Time, bool) {
	var last time.Time
	for _, v := range l.Visits {
		if v.Date.After(last) {
			last = v.Date
		}
	}
	return last, len(l.Visits) > 0
}

// VisitsByDate returns a copy of the visits sorted by date ascending.
// Insertion order of Visits carries no meaning; displays and exports always
// re-sort by date.
func (l Location) VisitsByDate() []Visit {
	out := make([]Visit, len(l.Visits))
	for i, v := range l.Visits {
		out[i] = v.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Clone returns a deep copy, so callers can hand out locations without
// sharing the underlying visit slices.
func (l Location) Clone() Location {
	out := l
	if l.Visits != nil {
		out.Visits = make([]Visit, len(l.Visits))
		for i, v := range l.Visits {
			out.Visits[i] = v.Clone()
		}
	}
	return out
}
