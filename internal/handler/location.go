package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// listLocations handles GET /api/locations.
// The optional ?q= parameter filters by case-insensitive name substring;
// order is the collection order, not a relevance sort.
func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	locations := s.store.FilteredLocations(r.URL.Query().Get("q"))

	out := make([]locationResponse, len(locations))
	for i, l := range locations {
		out[i] = locationToResponse(l)
	}
	respondJSON(w, http.StatusOK, out)
}

// createLocation handles POST /api/locations.
func (s *Server) createLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err)
		return
	}

	loc := domain.NewLocation(req.Name, req.WaterType, req.Season, req.Notes)
	if err := loc.Validate(); err != nil {
		respondValidation(w, err)
		return
	}

	s.store.AddLocation(r.Context(), loc)
	respondJSON(w, http.StatusCreated, locationToResponse(loc))
}

// getLocation handles GET /api/locations/{locationID}.
func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(r)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}
	loc, ok := s.store.Location(id)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}
	respondJSON(w, http.StatusOK, locationToResponse(loc))
}

// updateLocation handles PATCH /api/locations/{locationID}.
// Only fields present in the body change. The store treats a missing id as a
// silent no-op; the 404 here comes from the read-back, keeping the HTTP
// surface conventional without altering store semantics.
func (s *Server) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(r)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}
	var req updateLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err)
		return
	}

	current, ok := s.store.Location(id)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}

	// Validate against a copy before touching the store.
	preview := current
	applyLocationUpdate(&preview, req)
	if err := preview.Validate(); err != nil {
		respondValidation(w, err)
		return
	}

	s.store.UpdateLocation(r.Context(), id, func(l *domain.Location) {
		applyLocationUpdate(l, req)
	})

	updated, _ := s.store.Location(id)
	respondJSON(w, http.StatusOK, locationToResponse(updated))
}

// deleteLocation handles DELETE /api/locations/{locationID}.
// Deleting a location cascades to all of its visits.
func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := locationID(r)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}
	if _, ok := s.store.Location(id); !ok {
		respondNotFound(w, "location not found")
		return
	}
	s.store.DeleteLocation(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// resetData handles DELETE /api/data. Irreversible.
func (s *Server) resetData(w http.ResponseWriter, r *http.Request) {
	s.store.ResetAllData(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// applyLocationUpdate copies the present fields of req onto l.
func applyLocationUpdate(l *domain.Location, req updateLocationRequest) {
	if req.Name != nil {
		l.Name = strings.TrimSpace(*req.Name)
	}
	if req.WaterType != nil {
		l.WaterType = *req.WaterType
	}
	if req.Season != nil {
		l.Season = *req.Season
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}
}

// locationID extracts and parses the {locationID} URL parameter.
func locationID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "locationID"))
	return id, err == nil
}
