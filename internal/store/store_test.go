package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/fishlog/backend/internal/blob"
	"github.com/mkarlsen/fishlog/backend/internal/domain"
	"github.com/mkarlsen/fishlog/backend/internal/store"
)

// ---- helpers ---------------------------------------------------------------

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStore builds a store over a fresh in-memory blob store.
func newStore(t *testing.T) (*store.Store, *blob.Memory) {
	t.Helper()
	mem := blob.NewMemory()
	return store.New(context.Background(), mem, quietLogger()), mem
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func blueLake() domain.Location {
	return domain.NewLocation("Blue Lake", domain.WaterLake, domain.SeasonSummer, "")
}

// ---- locations -------------------------------------------------------------

func TestAddLocation_AppendsInOrder(t *testing.T) {
	s, _ := newStore(t)

	a := domain.NewLocation("Forest Lake", domain.WaterLake, domain.SeasonSpring, "")
	b := domain.NewLocation("River Bend", domain.WaterRiver, domain.SeasonSummer, "")
	s.AddLocation(context.Background(), a)
	s.AddLocation(context.Background(), b)

	got := s.Locations()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

// TestAddLocation_NoDedup verifies that two locations may share a name —
// identity is the id, never the name.
func TestAddLocation_NoDedup(t *testing.T) {
	s, _ := newStore(t)

	s.AddLocation(context.Background(), blueLake())
	s.AddLocation(context.Background(), blueLake())

	assert.Len(t, s.Locations(), 2)
}

// TestDeleteLocation_InverseOfAdd verifies that deleting a just-added
// location restores the previous collection membership.
func TestDeleteLocation_InverseOfAdd(t *testing.T) {
	s, _ := newStore(t)
	existing := blueLake()
	s.AddLocation(context.Background(), existing)
	before := s.Locations()

	added := domain.NewLocation("Temp Pond", domain.WaterPond, domain.SeasonWinter, "")
	s.AddLocation(context.Background(), added)
	s.DeleteLocation(context.Background(), added.ID)

	assert.Equal(t, before, s.Locations())
}

// TestUpdateLocation_MissingIDIsSilentNoOp verifies that a mutation against
// an unknown id leaves the collection deep-equal to before, whatever the
// mutator does.
func TestUpdateLocation_MissingIDIsSilentNoOp(t *testing.T) {
	s, _ := newStore(t)
	s.AddLocation(context.Background(), blueLake())
	before := s.Locations()

	s.UpdateLocation(context.Background(), uuid.New(), func(l *domain.Location) {
		l.Name = "Renamed"
		l.Season = domain.SeasonWinter
	})

	assert.Equal(t, before, s.Locations())
}

// TestUpdateLocation_CannotChangeID verifies the mutator contract: any field
// may change except the id, which is restored after the mutator runs.
func TestUpdateLocation_CannotChangeID(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)

	s.UpdateLocation(context.Background(), loc.ID, func(l *domain.Location) {
		l.ID = uuid.New()
		l.Name = "Renamed"
	})

	got, ok := s.Location(loc.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDeleteLocation_MissingIDIsSilentNoOp(t *testing.T) {
	s, _ := newStore(t)
	s.AddLocation(context.Background(), blueLake())
	before := s.Locations()

	s.DeleteLocation(context.Background(), uuid.New())

	assert.Equal(t, before, s.Locations())
}

// ---- visits ----------------------------------------------------------------

func TestAddVisit_AppendsToOwningLocation(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)

	v := domain.NewVisit(date(2024, 6, 1), []domain.FishType{domain.FishPike}, domain.ResultGood, "")
	s.AddVisit(context.Background(), loc.ID, v)

	got, ok := s.Location(loc.ID)
	require.True(t, ok)
	require.Len(t, got.Visits, 1)
	assert.Equal(t, v.ID, got.Visits[0].ID)
}

func TestAddVisit_MissingLocationIsSilentNoOp(t *testing.T) {
	s, _ := newStore(t)
	s.AddLocation(context.Background(), blueLake())
	before := s.Locations()

	s.AddVisit(context.Background(), uuid.New(), domain.NewVisit(date(2024, 6, 1), nil, domain.ResultPoor, ""))

	assert.Equal(t, before, s.Locations())
}

func TestUpdateVisit_MutatesInPlace(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	v := domain.NewVisit(date(2024, 6, 1), nil, domain.ResultPoor, "")
	s.AddVisit(context.Background(), loc.ID, v)

	s.UpdateVisit(context.Background(), loc.ID, v.ID, func(vv *domain.Visit) {
		vv.Result = domain.ResultGood
		vv.ID = uuid.New() // must be ignored
	})

	got, _ := s.Location(loc.ID)
	require.Len(t, got.Visits, 1)
	assert.Equal(t, v.ID, got.Visits[0].ID)
	assert.Equal(t, domain.ResultGood, got.Visits[0].Result)
}

// TestUpdateVisit_MissingEitherIDIsSilentNoOp covers both lookup failures:
// unknown location and unknown visit under a known location.
func TestUpdateVisit_MissingEitherIDIsSilentNoOp(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(date(2024, 6, 1), nil, domain.ResultPoor, ""))
	before := s.Locations()

	bump := func(v *domain.Visit) { v.Result = domain.ResultGood }
	s.UpdateVisit(context.Background(), uuid.New(), uuid.New(), bump)
	s.UpdateVisit(context.Background(), loc.ID, uuid.New(), bump)

	assert.Equal(t, before, s.Locations())
}

// TestDeleteLocation_CascadesToVisits verifies the cascade property: after
// deleting a location, its visits vanish from every aggregation, and the
// result counts differ by exactly the deleted location's visits.
func TestDeleteLocation_CascadesToVisits(t *testing.T) {
	s, _ := newStore(t)

	keep := domain.NewLocation("Keep", domain.WaterRiver, domain.SeasonSpring, "")
	s.AddLocation(context.Background(), keep)
	s.AddVisit(context.Background(), keep.ID, domain.NewVisit(date(2024, 5, 1), nil, domain.ResultGood, ""))

	doomed := domain.NewLocation("Doomed", domain.WaterPond, domain.SeasonWinter, "")
	s.AddLocation(context.Background(), doomed)
	s.AddVisit(context.Background(), doomed.ID, domain.NewVisit(date(2024, 1, 5), nil, domain.ResultPoor, ""))
	s.AddVisit(context.Background(), doomed.ID, domain.NewVisit(date(2024, 2, 6), nil, domain.ResultGood, ""))

	before := s.ResultStats()
	s.DeleteLocation(context.Background(), doomed.ID)
	after := s.ResultStats()

	assert.Equal(t, before[domain.ResultPoor]-1, after[domain.ResultPoor])
	assert.Equal(t, before[domain.ResultGood]-1, after[domain.ResultGood])
	assert.Equal(t, 1, s.TotalVisits())
}

func TestDeleteVisit_RemovesOnlyTheMatch(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	v1 := domain.NewVisit(date(2024, 6, 1), nil, domain.ResultPoor, "")
	v2 := domain.NewVisit(date(2024, 7, 1), nil, domain.ResultGood, "")
	s.AddVisit(context.Background(), loc.ID, v1)
	s.AddVisit(context.Background(), loc.ID, v2)

	s.DeleteVisit(context.Background(), loc.ID, v1.ID)

	got, _ := s.Location(loc.ID)
	require.Len(t, got.Visits, 1)
	assert.Equal(t, v2.ID, got.Visits[0].ID)
}

// ---- reset -----------------------------------------------------------------

// TestResetAllData_ClearsCollectionAndBlob verifies the reset erases both the
// in-memory collection and the persisted blob.
func TestResetAllData_ClearsCollectionAndBlob(t *testing.T) {
	s, mem := newStore(t)
	s.AddLocation(context.Background(), blueLake())

	s.ResetAllData(context.Background())

	assert.Empty(t, s.Locations())
	_, err := mem.Get(context.Background(), "locations")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

// ---- ownership -------------------------------------------------------------

// TestLocations_ReturnsCopies verifies exclusive ownership: mutating a
// returned slice must not affect the store's state.
func TestLocations_ReturnsCopies(t *testing.T) {
	s, _ := newStore(t)
	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 6, 1), []domain.FishType{domain.FishPike}, domain.ResultGood, ""))

	leaked := s.Locations()
	leaked[0].Name = "Hacked"
	leaked[0].Visits[0].FishTypes[0] = domain.FishCarp

	got, _ := s.Location(loc.ID)
	assert.Equal(t, "Blue Lake", got.Name)
	assert.Equal(t, domain.FishPike, got.Visits[0].FishTypes[0])
}

// ---- notifications ---------------------------------------------------------

// TestSubscribe_FiresOnMutationOnly verifies the observation hook runs after
// real mutations but stays quiet for silent no-ops.
func TestSubscribe_FiresOnMutationOnly(t *testing.T) {
	s, _ := newStore(t)
	calls := 0
	s.Subscribe(func() { calls++ })

	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	require.Equal(t, 1, calls)

	s.DeleteLocation(context.Background(), uuid.New()) // miss
	assert.Equal(t, 1, calls)

	s.DeleteLocation(context.Background(), loc.ID)
	assert.Equal(t, 2, calls)
}

// ---- end-to-end scenario ---------------------------------------------------

// TestScenario_BlueLake walks the canonical scenario: one location, one
// visit, and every derived figure agreeing on it.
func TestScenario_BlueLake(t *testing.T) {
	s, _ := newStore(t)

	loc := blueLake()
	s.AddLocation(context.Background(), loc)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 6, 1), []domain.FishType{domain.FishPike}, domain.ResultGood, ""))

	assert.Equal(t, 1, s.TotalVisits())
	assert.Equal(t, map[domain.FishType]int{domain.FishPike: 1}, s.FishStats())
	assert.Equal(t, map[domain.ResultType]int{domain.ResultGood: 1}, s.ResultStats())

	got, ok := s.Location(loc.ID)
	require.True(t, ok)
	last, ok := got.LastVisitDate()
	require.True(t, ok)
	assert.Equal(t, date(2024, 6, 1), last)
}
