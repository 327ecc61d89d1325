package handler

import (
	"net/http"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// statsResponse carries the full aggregation snapshot. The per-enum maps list
// every declared value, zero counts included, so clients can render complete
// charts without knowing the enum tables themselves.
type statsResponse struct {
	TotalLocations int                       `json:"totalLocations"`
	TotalVisits    int                       `json:"totalVisits"`
	SeasonStats    map[domain.Season]int     `json:"seasonStats"`
	FishStats      map[domain.FishType]int   `json:"fishStats"`
	ResultStats    map[domain.ResultType]int `json:"resultStats"`
	BestSeason     domain.Season             `json:"bestSeason"`
	MostCommonFish domain.FishType           `json:"mostCommonFish"`
}

// getStats handles GET /api/stats.
func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	sum := s.store.Summary()

	resp := statsResponse{
		TotalLocations: sum.TotalLocations,
		TotalVisits:    sum.TotalVisits,
		SeasonStats:    withZeros(sum.SeasonStats, domain.Seasons),
		FishStats:      withZeros(sum.FishStats, domain.FishTypes),
		ResultStats:    withZeros(sum.ResultStats, domain.ResultTypes),
		BestSeason:     sum.BestSeason,
		MostCommonFish: sum.MostCommonFish,
	}
	respondJSON(w, http.StatusOK, resp)
}

// withZeros fills in zero counts for every declared enum value.
func withZeros[T comparable](counts map[T]int, all []T) map[T]int {
	out := make(map[T]int, len(all))
	for _, v := range all {
		out[v] = counts[v]
	}
	return out
}

// getHealth handles GET /healthz.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
