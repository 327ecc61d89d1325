package handler

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// Dates cross the wire as "2006-01-02" via openapi_types.Date — visit dates
// carry no meaningful time of day.

type visitResponse struct {
	ID        uuid.UUID          `json:"id"`
	Date      openapi_types.Date `json:"date"`
	FishTypes []domain.FishType  `json:"fishTypes"`
	Result    domain.ResultType  `json:"result"`
	Notes     string             `json:"notes,omitempty"`
}

type locationResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	WaterType domain.WaterType `json:"waterType"`
	Season    domain.Season    `json:"season"`
	Notes     string           `json:"notes,omitempty"`

	// Derived fields, recomputed from the visit list on every response.
	VisitsCount   int                 `json:"visitsCount"`
	LastVisitDate *openapi_types.Date `json:"lastVisitDate,omitempty"`

	Visits []visitResponse `json:"visits"`
}

type createLocationRequest struct {
	Name      string           `json:"name"`
	WaterType domain.WaterType `json:"waterType"`
	Season    domain.Season    `json:"season"`
	Notes     string           `json:"notes"`
}

// updateLocationRequest is a partial update: nil pointers leave the field
// untouched, matching the store's mutator contract (any field but the id).
type updateLocationRequest struct {
	Name      *string           `json:"name"`
	WaterType *domain.WaterType `json:"waterType"`
	Season    *domain.Season    `json:"season"`
	Notes     *string           `json:"notes"`
}

type createVisitRequest struct {
	Date      openapi_types.Date `json:"date"`
	FishTypes []domain.FishType  `json:"fishTypes"`
	Result    domain.ResultType  `json:"result"`
	Notes     string             `json:"notes"`
}

// updateVisitRequest is a partial update. A nil FishTypes leaves the list
// untouched; an explicit empty list clears it.
type updateVisitRequest struct {
	Date      *openapi_types.Date `json:"date"`
	FishTypes []domain.FishType   `json:"fishTypes"`
	Result    *domain.ResultType  `json:"result"`
	Notes     *string             `json:"notes"`
}

func visitToResponse(v domain.Visit) visitResponse {
	fish := v.FishTypes
	if fish == nil {
		fish = []domain.FishType{}
	}
	return visitResponse{
		ID:        v.ID,
		Date:      openapi_types.Date{Time: v.Date},
		FishTypes: fish,
		Result:    v.Result,
		Notes:     v.Notes,
	}
}

// locationToResponse renders a location with its visits sorted by date —
// insertion order is storage detail, display order is chronological.
func locationToResponse(l domain.Location) locationResponse {
	sorted := l.VisitsByDate()
	visits := make([]visitResponse, len(sorted))
	for i, v := range sorted {
		visits[i] = visitToResponse(v)
	}

	resp := locationResponse{
		ID:          l.ID,
		Name:        l.Name,
		WaterType:   l.WaterType,
		Season:      l.Season,
		Notes:       l.Notes,
		VisitsCount: l.VisitsCount(),
		Visits:      visits,
	}
	if last, ok := l.LastVisitDate(); ok {
		d := openapi_types.Date{Time: last}
		resp.LastVisitDate = &d
	}
	return resp
}
