package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// createVisit handles POST /api/locations/{locationID}/visits.
func (s *Server) createVisit(w http.ResponseWriter, r *http.Request) {
	locID, ok := locationID(r)
	if !ok {
		respondNotFound(w, "location not found")
		return
	}
	if _, ok := s.store.Location(locID); !ok {
		respondNotFound(w, "location not found")
		return
	}

	var req createVisitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err)
		return
	}

	visit := domain.NewVisit(req.Date.Time, req.FishTypes, req.Result, req.Notes)
	if err := visit.Validate(); err != nil {
		respondValidation(w, err)
		return
	}

	s.store.AddVisit(r.Context(), locID, visit)
	respondJSON(w, http.StatusCreated, visitToResponse(visit))
}

// updateVisit handles PATCH /api/locations/{locationID}/visits/{visitID}.
// Only fields present in the body change; a nil fishTypes leaves the list
// untouched while an explicit empty list clears it.
func (s *Server) updateVisit(w http.ResponseWriter, r *http.Request) {
	locID, visID, ok := visitIDs(r)
	if !ok {
		respondNotFound(w, "visit not found")
		return
	}
	var req updateVisitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err)
		return
	}

	current, ok := findVisit(s.store, locID, visID)
	if !ok {
		respondNotFound(w, "visit not found")
		return
	}

	preview := current.Clone()
	applyVisitUpdate(&preview, req)
	if err := preview.Validate(); err != nil {
		respondValidation(w, err)
		return
	}

	s.store.UpdateVisit(r.Context(), locID, visID, func(v *domain.Visit) {
		applyVisitUpdate(v, req)
	})

	updated, _ := findVisit(s.store, locID, visID)
	respondJSON(w, http.StatusOK, visitToResponse(updated))
}

// deleteVisit handles DELETE /api/locations/{locationID}/visits/{visitID}.
func (s *Server) deleteVisit(w http.ResponseWriter, r *http.Request) {
	locID, visID, ok := visitIDs(r)
	if !ok {
		respondNotFound(w, "visit not found")
		return
	}
	if _, ok := findVisit(s.store, locID, visID); !ok {
		respondNotFound(w, "visit not found")
		return
	}
	s.store.DeleteVisit(r.Context(), locID, visID)
	w.WriteHeader(http.StatusNoContent)
}

// applyVisitUpdate copies the present fields of req onto v.
func applyVisitUpdate(v *domain.Visit, req updateVisitRequest) {
	if req.Date != nil {
		v.Date = req.Date.Time
	}
	if req.FishTypes != nil {
		v.FishTypes = make([]domain.FishType, len(req.FishTypes))
		copy(v.FishTypes, req.FishTypes)
	}
	if req.Result != nil {
		v.Result = *req.Result
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}
}

// findVisit looks a visit up through the store's read surface.
func findVisit(st LocationStore, locID, visID uuid.UUID) (domain.Visit, bool) {
	loc, ok := st.Location(locID)
	if !ok {
		return domain.Visit{}, false
	}
	for _, v := range loc.Visits {
		if v.ID == visID {
			return v, true
		}
	}
	return domain.Visit{}, false
}

// visitIDs extracts and parses the {locationID} and {visitID} URL parameters.
func visitIDs(r *http.Request) (locID, visID uuid.UUID, ok bool) {
	locID, err := uuid.Parse(chi.URLParam(r, "locationID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	visID, err = uuid.Parse(chi.URLParam(r, "visitID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return locID, visID, true
}
