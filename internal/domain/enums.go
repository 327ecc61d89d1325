package domain

import (
	"encoding/json"
	"fmt"
)

// The four enumerations below are closed: the listed members are the only
// valid values, and decoding any other label is a hard failure for the record
// that carries it. The declaration order of each value table is meaningful —
// max-by-count aggregations break ties by it.

// WaterType classifies the body of water at a fishing location.
type WaterType string

const (
	WaterRiver WaterType = "River"
	WaterLake  WaterType = "Lake"
	WaterPond  WaterType = "Pond"
	WaterSea   WaterType = "Sea"
)

// WaterTypes lists every valid WaterType in declaration order.
var WaterTypes = []WaterType{WaterRiver, WaterLake, WaterPond, WaterSea}

// Season is the time of year a location typically fishes best.
// It is a property of the location, independent of any visit's actual date.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// Seasons lists every valid Season in declaration order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// FishType is a species that can be recorded as caught on a visit.
type FishType string

const (
	FishPerch   FishType = "Perch"
	FishPike    FishType = "Pike"
	FishCarp    FishType = "Carp"
	FishTrout   FishType = "Trout"
	FishCatfish FishType = "Catfish"
)

// FishTypes lists every valid FishType in declaration order.
var FishTypes = []FishType{FishPerch, FishPike, FishCarp, FishTrout, FishCatfish}

// ResultType is the subjective outcome rating of a visit.
type ResultType string

const (
	ResultPoor   ResultType = "Poor"
	ResultNormal ResultType = "Normal"
	ResultGood   ResultType = "Good"
)

// ResultTypes lists every valid ResultType in declaration order.
var ResultTypes = []ResultType{ResultPoor, ResultNormal, ResultGood}

// parseEnum matches label against the valid value table for T.
func parseEnum[T ~string](label string, valid []T) (T, error) {
	for _, v := range valid {
		if string(v) == label {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %T %q", zero, label)
}

// unmarshalEnum decodes a JSON string into an enum value, rejecting any label
// outside the valid table.
func unmarshalEnum[T ~string](data []byte, valid []T, dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parseEnum(s, valid)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ParseWaterType returns the WaterType with the given canonical label.
func ParseWaterType(s string) (WaterType, error) { return parseEnum(s, WaterTypes) }

// ParseSeason returns the Season with the given canonical label.
func ParseSeason(s string) (Season, error) { return parseEnum(s, Seasons) }

// ParseFishType returns the FishType with the given canonical label.
func ParseFishType(s string) (FishType, error) { return parseEnum(s, FishTypes) }

// ParseResultType returns the ResultType with the given canonical label.
func ParseResultType(s string) (ResultType, error) { return parseEnum(s, ResultTypes) }

// Valid reports whether w is one of the declared water types.
func (w WaterType) Valid() bool { _, err := ParseWaterType(string(w)); return err == nil }

// Valid reports whether s is one of the declared seasons.
func (s Season) Valid() bool { _, err := ParseSeason(string(s)); return err == nil }

// Valid reports whether f is one of the declared fish types.
func (f FishType) Valid() bool { _, err := ParseFishType(string(f)); return err == nil }

// Valid reports whether r is one of the declared result types.
func (r ResultType) Valid() bool { _, err := ParseResultType(string(r)); return err == nil }

// UnmarshalJSON rejects labels outside the declared water types.
func (w *WaterType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, WaterTypes, w)
}

// UnmarshalJSON rejects labels outside the declared seasons.
func (s *Season) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, Seasons, s)
}

// UnmarshalJSON rejects labels outside the declared fish types.
func (f *FishType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, FishTypes, f)
}

// UnmarshalJSON rejects labels outside the declared result types.
func (r *ResultType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, ResultTypes, r)
}
