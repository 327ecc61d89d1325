package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/fishlog/backend/internal/blob"
	"github.com/mkarlsen/fishlog/backend/internal/domain"
	"github.com/mkarlsen/fishlog/backend/internal/store"
)

// reload builds a second store over the same blob store, simulating a process
// restart.
func reload(mem *blob.Memory) *store.Store {
	return store.New(context.Background(), mem, quietLogger())
}

// TestReload_RoundTripsCollection verifies the save/load cycle preserves the
// collection structurally, identifiers included.
func TestReload_RoundTripsCollection(t *testing.T) {
	s, mem := newStore(t)

	loc := domain.NewLocation("Blue Lake", domain.WaterLake, domain.SeasonSummer, "shallow east bank")
	s.AddLocation(context.Background(), loc)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 6, 1), []domain.FishType{domain.FishPike, domain.FishPerch}, domain.ResultGood, "calm morning"))

	fresh := reload(mem)
	assert.Equal(t, s.Locations(), fresh.Locations())
}

// TestReload_IDsAreStable verifies identity survives restarts: the same
// location can be addressed by the same id after a reload.
func TestReload_IDsAreStable(t *testing.T) {
	s, mem := newStore(t)
	loc := domain.NewLocation("Blue Lake", domain.WaterLake, domain.SeasonSummer, "")
	s.AddLocation(context.Background(), loc)

	fresh := reload(mem)
	got, ok := fresh.Location(loc.ID)
	require.True(t, ok)
	assert.Equal(t, loc.Name, got.Name)
}

// TestLoad_MalformedBlobFallsBackToEmpty verifies the fail-to-empty policy:
// a blob that does not parse yields an empty, usable store rather than an
// error.
func TestLoad_MalformedBlobFallsBackToEmpty(t *testing.T) {
	mem := blob.NewMemory()
	require.NoError(t, mem.Put(context.Background(), "locations", []byte("{not json")))

	s := store.New(context.Background(), mem, quietLogger())
	assert.Empty(t, s.Locations())

	// The store must still accept new data after the bad load.
	s.AddLocation(context.Background(), domain.NewLocation("Recovered", domain.WaterRiver, domain.SeasonSpring, ""))
	assert.Len(t, s.Locations(), 1)
}

// TestLoad_UnknownEnumLabelFailsWholeDecode verifies strict decoding: one bad
// enum label in one record empties the entire collection, valid siblings
// included.
func TestLoad_UnknownEnumLabelFailsWholeDecode(t *testing.T) {
	payload := []byte(`[
		{"name":"Good Lake","waterType":"Lake","season":"Summer","visits":[]},
		{"name":"Bad Lake","waterType":"Ocean","season":"Summer","visits":[]}
	]`)
	mem := blob.NewMemory()
	require.NoError(t, mem.Put(context.Background(), "locations", payload))

	s := store.New(context.Background(), mem, quietLogger())
	assert.Empty(t, s.Locations())
}

// TestLoad_MissingIDGetsAssigned verifies records written without ids load
// with fresh identifiers instead of failing.
func TestLoad_MissingIDGetsAssigned(t *testing.T) {
	payload := []byte(`[
		{"name":"Old Lake","waterType":"Lake","season":"Summer","visits":[
			{"date":"2024-06-01T00:00:00Z","fishTypes":["Pike"],"result":"Good"}
		]}
	]`)
	mem := blob.NewMemory()
	require.NoError(t, mem.Put(context.Background(), "locations", payload))

	s := store.New(context.Background(), mem, quietLogger())
	locs := s.Locations()
	require.Len(t, locs, 1)
	assert.NotEmpty(t, locs[0].ID)
	require.Len(t, locs[0].Visits, 1)
	assert.NotEmpty(t, locs[0].Visits[0].ID)
	assert.Equal(t, domain.FishPike, locs[0].Visits[0].FishTypes[0])
}

// TestLoad_MalformedIDIsCorruption verifies a present-but-invalid id fails
// the decode like any other corruption.
func TestLoad_MalformedIDIsCorruption(t *testing.T) {
	payload := []byte(`[{"id":"not-a-uuid","name":"Lake","waterType":"Lake","season":"Summer","visits":[]}]`)
	mem := blob.NewMemory()
	require.NoError(t, mem.Put(context.Background(), "locations", payload))

	s := store.New(context.Background(), mem, quietLogger())
	assert.Empty(t, s.Locations())
}

// TestMutation_PersistsImmediately verifies every mutation reaches the blob
// store before the call returns — a reload right after sees it.
func TestMutation_PersistsImmediately(t *testing.T) {
	s, mem := newStore(t)
	loc := domain.NewLocation("Blue Lake", domain.WaterLake, domain.SeasonSummer, "")
	s.AddLocation(context.Background(), loc)

	require.Len(t, reload(mem).Locations(), 1)

	s.DeleteLocation(context.Background(), loc.ID)
	assert.Empty(t, reload(mem).Locations())
}
