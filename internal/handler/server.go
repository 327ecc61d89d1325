// Package handler implements the HTTP surface of the fishing logbook.
// Handlers are the "view layer" of the system: they only invoke state-store
// operations and read derived state. All invariants live in the store; the
// handlers translate between JSON and domain values and map outcomes to
// status codes.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
	"github.com/mkarlsen/fishlog/backend/internal/store"
)

// LocationStore defines the state-store operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a stub without constructing a real store.
type LocationStore interface {
	Locations() []domain.Location
	Location(id uuid.UUID) (domain.Location, bool)
	FilteredLocations(query string) []domain.Location
	AddLocation(ctx context.Context, loc domain.Location)
	UpdateLocation(ctx context.Context, id uuid.UUID, mutate func(*domain.Location))
	DeleteLocation(ctx context.Context, id uuid.UUID)
	AddVisit(ctx context.Context, locationID uuid.UUID, visit domain.Visit)
	UpdateVisit(ctx context.Context, locationID, visitID uuid.UUID, mutate func(*domain.Visit))
	DeleteVisit(ctx context.Context, locationID, visitID uuid.UUID)
	ResetAllData(ctx context.Context)
	Summary() store.Summary
}

// Server holds the handler dependencies. Methods are split into
// resource-specific files (location.go, visit.go, stats.go, export.go) but
// all operate on this struct.
type Server struct {
	store LocationStore
}

// NewServer constructs the Server with all its dependencies.
func NewServer(store LocationStore) *Server {
	return &Server{store: store}
}
