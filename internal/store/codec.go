package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// blobKey is the fixed key the whole location collection is stored under.
// The collection is always written and read as one blob — no partial writes,
// no per-record indexing.
const blobKey = "locations"

// locationRecord is the persisted shape of a domain.Location.
// Field names and enum labels are stable; changing them breaks every
// previously written blob (and, per the fail-to-empty policy below, silently
// empties the log on next load).
type locationRecord struct {
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name"`
	WaterType domain.WaterType `json:"waterType"`
	Season    domain.Season    `json:"season"`
	Notes     string           `json:"notes,omitempty"`
	Visits    []visitRecord    `json:"visits"`
}

// visitRecord is the persisted shape of a domain.Visit.
// Dates are RFC 3339; only the calendar day is semantically used.
type visitRecord struct {
	ID        string            `json:"id,omitempty"`
	Date      time.Time         `json:"date"`
	FishTypes []domain.FishType `json:"fishTypes"`
	Result    domain.ResultType `json:"result"`
	Notes     string            `json:"notes,omitempty"`
}

// encodeLocations serializes the full collection to the blob payload.
func encodeLocations(locations []domain.Location) ([]byte, error) {
	records := make([]locationRecord, len(locations))
	for i, l := range locations {
		visits := make([]visitRecord, len(l.Visits))
		for j, v := range l.Visits {
			visits[j] = visitRecord{
				ID:        v.ID.String(),
				Date:      v.Date,
				FishTypes: v.FishTypes,
				Result:    v.Result,
				Notes:     v.Notes,
			}
		}
		records[i] = locationRecord{
			ID:        l.ID.String(),
			Name:      l.Name,
			WaterType: l.WaterType,
			Season:    l.Season,
			Notes:     l.Notes,
			Visits:    visits,
		}
	}
	return json.Marshal(records)
}

// decodeLocations parses a blob payload back into the domain collection.
// Identifiers are persisted, so identity is stable across sessions; a record
// written without an id gets a fresh one. Any malformed record — including an
// enum label outside the declared set — fails the whole decode: the caller
// falls back to the empty collection rather than recovering part of the blob.
func decodeLocations(data []byte) ([]domain.Location, error) {
	var records []locationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, len(records))
	for i, r := range records {
		id, err := parseOrNewID(r.ID)
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", r.Name, err)
		}
		loc := domain.Location{
			ID:        id,
			Name:      r.Name,
			WaterType: r.WaterType,
			Season:    r.Season,
			Notes:     r.Notes,
			Visits:    make([]domain.Visit, len(r.Visits)),
		}
		for j, vr := range r.Visits {
			vid, err := parseOrNewID(vr.ID)
			if err != nil {
				return nil, fmt.Errorf("location %q visit %d: %w", r.Name, j, err)
			}
			loc.Visits[j] = domain.Visit{
				ID:        vid,
				Date:      vr.Date,
				FishTypes: vr.FishTypes,
				Result:    vr.Result,
				Notes:     vr.Notes,
			}
		}
		locations[i] = loc
	}
	return locations, nil
}

// parseOrNewID parses a persisted identifier, assigning a fresh one when the
// field is absent. A present-but-malformed id is corrupt data, not a missing
// field, and fails the decode.
func parseOrNewID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}
