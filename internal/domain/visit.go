package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Visit represents one dated trip to a location.
// FishTypes is conceptually a set — the editing surface toggles species on and
// off — but it is stored as an ordered slice, and aggregation counts entries
// as-is. Callers must not rely on multiplicity.
type Visit struct {
	ID        uuid.UUID
	Date      time.Time
	FishTypes []FishType
	Result    ResultType
	Notes     string
}

// NewVisit constructs a Visit with a fresh identity.
// Date precision suffices; time-of-day is carried but never interpreted.
func NewVisit(date time.Time, fish []FishType, result ResultType, notes string) Visit {
	v := Visit{
		ID:     uuid.New(),
		Date:   date,
		Result: result,
		Notes:  notes,
	}
	if fish != nil {
		v.FishTypes = make([]FishType, len(fish))
		copy(v.FishTypes, fish)
	}
	return v
}

// Validate reports whether the visit is structurally valid.
//   - Date must be set.
//   - Result and every FishType must be declared enum members.
func (v Visit) Validate() error {
	if v.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !v.Result.Valid() {
		return fmt.Errorf("%w: unknown result %q", ErrValidation, v.Result)
	}
	for _, f := range v.FishTypes {
		if !f.Valid() {
			return fmt.Errorf("%w: unknown fish type %q", ErrValidation, f)
		}
	}
	return nil
}

// Clone returns a deep copy with its own FishTypes slice.
func (v Visit) Clone() Visit {
	out := v
	if v.FishTypes != nil {
		out.FishTypes = make([]FishType, len(v.FishTypes))
		copy(out.FishTypes, v.FishTypes)
	}
	return out
}
