// Package store owns the authoritative in-memory collection of fishing
// locations. It exposes CRUD over locations and their nested visits, pure
// aggregation queries, and a name filter. Every mutation rewrites the whole
// collection to the blob store; persistence failures are logged and swallowed
// so the application keeps running on best-effort data.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mkarlsen/fishlog/backend/internal/blob"
	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// Store is the domain state store. It exclusively owns its collection: reads
// hand out deep copies and mutations go through the operation methods, never
// through a shared reference.
//
// All operations take the lock for the full read-modify-persist sequence —
// the HTTP layer serves concurrent requests, and each mutation is a
// read-then-write that would otherwise race.
type Store struct {
	mu          sync.Mutex
	blobs       blob.Store
	log         *slog.Logger
	locations   []domain.Location
	subscribers []func()
}

// New builds a Store over the given blob store and loads the persisted
// collection. A missing blob or a decode failure of any kind yields the empty
// collection; load never fails. Corrupt data is logged but not recovered —
// there is no partial recovery of a malformed blob.
func New(ctx context.Context, blobs blob.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{blobs: blobs, log: log}

	data, err := blobs.Get(ctx, blobKey)
	switch {
	case errors.Is(err, blob.ErrNotFound):
		// First run: nothing persisted yet.
	case err != nil:
		log.Warn("loading locations failed, starting empty", "error", err)
	default:
		locations, err := decodeLocations(data)
		if err != nil {
			log.Warn("decoding locations failed, starting empty", "error", err)
		} else {
			s.locations = locations
		}
	}
	return s
}

// Subscribe registers fn to run after every successful mutation.
// Callbacks run outside the store lock, on the mutating goroutine.
// Intended for thin observation layers (cache busting, UI refresh); the core
// contract does not depend on it.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// persist rewrites the whole collection under the fixed blob key.
// Callers must hold s.mu. Failures are swallowed: the in-memory state is
// kept and the write is retried implicitly on the next mutation.
func (s *Store) persist(ctx context.Context) {
	data, err := encodeLocations(s.locations)
	if err != nil {
		s.log.Warn("encoding locations failed, write skipped", "error", err)
		return
	}
	if err := s.blobs.Put(ctx, blobKey, data); err != nil {
		s.log.Warn("persisting locations failed, write skipped", "error", err)
	}
}

// Locations returns a deep copy of the collection in its stored order.
func (s *Store) Locations() []domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Location, len(s.locations))
	for i, l := range s.locations {
		out[i] = l.Clone()
	}
	return out
}

// Location returns a deep copy of the location with the given id.
func (s *Store) Location(id uuid.UUID) (domain.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.locations {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return domain.Location{}, false
}

// AddLocation appends loc to the end of the collection and persists.
// No dedup check: two locations may share a name.
func (s *Store) AddLocation(ctx context.Context, loc domain.Location) {
	s.mu.Lock()
	s.locations = append(s.locations, loc.Clone())
	s.persist(ctx)
	s.mu.Unlock()
	s.notify()
}

// UpdateLocation applies mutate to the location with the given id, then
// persists. A missing id is a silent no-op. The mutator may change any field
// except ID, which is restored afterwards.
func (s *Store) UpdateLocation(ctx context.Context, id uuid.UUID, mutate func(*domain.Location)) {
	s.mu.Lock()
	changed := false
	for i := range s.locations {
		if s.locations[i].ID == id {
			mutate(&s.locations[i])
			s.locations[i].ID = id
			changed = true
			break
		}
	}
	if changed {
		s.persist(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// DeleteLocation removes all entries matching id (expected: zero or one) and
// persists. Deleting a location deletes all of its visits with it.
func (s *Store) DeleteLocation(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	kept := s.locations[:0]
	for _, l := range s.locations {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	changed := len(kept) != len(s.locations)
	s.locations = kept
	if changed {
		s.persist(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// AddVisit appends visit to the matching location's visits and persists.
// A missing location id is a silent no-op.
func (s *Store) AddVisit(ctx context.Context, locationID uuid.UUID, visit domain.Visit) {
	s.mu.Lock()
	changed := false
	for i := range s.locations {
		if s.locations[i].ID == locationID {
			s.locations[i].Visits = append(s.locations[i].Visits, visit.Clone())
			changed = true
			break
		}
	}
	if changed {
		s.persist(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// UpdateVisit applies mutate to the matching visit and persists.
// A miss on either lookup is a silent no-op. The visit ID is restored after
// the mutator runs.
func (s *Store) UpdateVisit(ctx context.Context, locationID, visitID uuid.UUID, mutate func(*domain.Visit)) {
	s.mu.Lock()
	changed := false
	for i := range s.locations {
		if s.locations[i].ID != locationID {
			continue
		}
		for j := range s.locations[i].Visits {
			if s.locations[i].Visits[j].ID == visitID {
				mutate(&s.locations[i].Visits[j])
				s.locations[i].Visits[j].ID = visitID
				changed = true
				break
			}
		}
		break
	}
	if changed {
		s.persist(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// DeleteVisit removes the matching visit(s) from the located location and
// persists. A missing location or visit id is a silent no-op.
func (s *Store) DeleteVisit(ctx context.Context, locationID, visitID uuid.UUID) {
	s.mu.Lock()
	changed := false
	for i := range s.locations {
		if s.locations[i].ID != locationID {
			continue
		}
		kept := s.locations[i].Visits[:0]
		for _, v := range s.locations[i].Visits {
			if v.ID != visitID {
				kept = append(kept, v)
			}
		}
		changed = len(kept) != len(s.locations[i].Visits)
		s.locations[i].Visits = kept
		break
	}
	if changed {
		s.persist(ctx)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// ResetAllData clears the entire collection and erases the persisted blob.
// Irreversible. Erase failures are logged and swallowed like any other
// persistence failure.
func (s *Store) ResetAllData(ctx context.Context) {
	s.mu.Lock()
	s.locations = nil
	if _, err := s.blobs.Delete(ctx, blobKey); err != nil {
		s.log.Warn("erasing persisted locations failed", "error", err)
	}
	s.mu.Unlock()
	s.notify()
}
