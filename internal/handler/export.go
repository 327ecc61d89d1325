package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
)

// exportRow is a single row in the full-data export. Locations with no
// visits yield one row with empty visit fields.
type exportRow struct {
	LocationID   string            `json:"locationId"`
	LocationName string            `json:"locationName"`
	WaterType    domain.WaterType  `json:"waterType"`
	Season       domain.Season     `json:"season"`
	VisitDate    string            `json:"visitDate,omitempty"` // "2006-01-02", empty when no visit
	FishTypes    []domain.FishType `json:"fishTypes,omitempty"`
	Result       string            `json:"result,omitempty"`
	VisitNotes   string            `json:"visitNotes,omitempty"`
}

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"location_id", "location_name", "water_type", "season",
	"visit_date", "fish_types", "result", "visit_notes",
}

// getExport handles GET /api/export. The whole log comes back as a flat
// table, one row per visit with the location fields repeated; ?format=csv
// selects CSV over the default JSON.
func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	rows := buildExportRows(s.store.Locations())

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// buildExportRows flattens locations into export rows, visits in date order.
func buildExportRows(locations []domain.Location) []exportRow {
	rows := []exportRow{}
	for _, l := range locations {
		base := exportRow{
			LocationID:   l.ID.String(),
			LocationName: l.Name,
			WaterType:    l.WaterType,
			Season:       l.Season,
		}
		visits := l.VisitsByDate()
		if len(visits) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, v := range visits {
			row := base
			row.VisitDate = v.Date.Format("2006-01-02")
			row.FishTypes = v.FishTypes
			row.Result = string(v.Result)
			row.VisitNotes = v.Notes
			rows = append(rows, row)
		}
	}
	return rows
}

// writeCSV encodes rows as CSV. Fish types within a row are pipe-separated
// ("|") to keep each visit on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []exportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// Writes into a bytes.Buffer cannot fail.
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		fish := make([]string, len(r.FishTypes))
		for i, f := range r.FishTypes {
			fish[i] = string(f)
		}
		_ = cw.Write([]string{
			r.LocationID,
			r.LocationName,
			string(r.WaterType),
			string(r.Season),
			r.VisitDate,
			strings.Join(fish, "|"),
			r.Result,
			r.VisitNotes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
