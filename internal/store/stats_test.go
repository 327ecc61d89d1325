package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkarlsen/fishlog/backend/internal/domain"
	"github.com/mkarlsen/fishlog/backend/internal/store"
)

func addLocation(s *store.Store, name string, season domain.Season) domain.Location {
	l := domain.NewLocation(name, domain.WaterLake, season, "")
	s.AddLocation(context.Background(), l)
	return l
}

func TestBestSeason_DefaultsToSummerWhenEmpty(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, domain.SeasonSummer, s.BestSeason())
}

func TestMostCommonFish_DefaultsToPerchWhenEmpty(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, domain.FishPerch, s.MostCommonFish())
}

func TestBestSeason_PicksTheMajority(t *testing.T) {
	s, _ := newStore(t)
	addLocation(s, "A", domain.SeasonWinter)
	addLocation(s, "B", domain.SeasonWinter)
	addLocation(s, "C", domain.SeasonSpring)

	assert.Equal(t, domain.SeasonWinter, s.BestSeason())
}

// TestBestSeason_TieBreaksByDeclarationOrder pins the deterministic
// tie-break: with Spring and Winter tied, Spring wins because it is declared
// first.
func TestBestSeason_TieBreaksByDeclarationOrder(t *testing.T) {
	s, _ := newStore(t)
	addLocation(s, "A", domain.SeasonWinter)
	addLocation(s, "B", domain.SeasonSpring)

	assert.Equal(t, domain.SeasonSpring, s.BestSeason())
}

func TestMostCommonFish_TieBreaksByDeclarationOrder(t *testing.T) {
	s, _ := newStore(t)
	loc := addLocation(s, "A", domain.SeasonSummer)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 6, 1),
		[]domain.FishType{domain.FishCarp, domain.FishPike},
		domain.ResultGood, ""))

	// Pike and Carp tied at one each; Pike is declared first.
	assert.Equal(t, domain.FishPike, s.MostCommonFish())
}

// TestFishStats_CountsPerOccurrence verifies that duplicate species within a
// single visit each count.
func TestFishStats_CountsPerOccurrence(t *testing.T) {
	s, _ := newStore(t)
	loc := addLocation(s, "A", domain.SeasonSummer)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 6, 1),
		[]domain.FishType{domain.FishPike, domain.FishPike, domain.FishPerch},
		domain.ResultGood, ""))

	assert.Equal(t, map[domain.FishType]int{
		domain.FishPike:  2,
		domain.FishPerch: 1,
	}, s.FishStats())
	assert.Equal(t, domain.FishPike, s.MostCommonFish())
}

// TestAggregates_TotalsAgree verifies the bookkeeping identities: season
// counts sum to the location total and result counts sum to the visit total.
func TestAggregates_TotalsAgree(t *testing.T) {
	s, _ := newStore(t)

	a := addLocation(s, "A", domain.SeasonSpring)
	b := addLocation(s, "B", domain.SeasonAutumn)
	addLocation(s, "C", domain.SeasonAutumn)

	visits := []struct {
		loc    domain.Location
		day    time.Time
		result domain.ResultType
	}{
		{a, date(2024, 4, 1), domain.ResultGood},
		{a, date(2024, 4, 8), domain.ResultNormal},
		{b, date(2024, 10, 2), domain.ResultPoor},
	}
	for _, v := range visits {
		s.AddVisit(context.Background(), v.loc.ID, domain.NewVisit(v.day, nil, v.result, ""))
	}

	seasonSum := 0
	for _, n := range s.SeasonStats() {
		seasonSum += n
	}
	assert.Equal(t, s.TotalLocations(), seasonSum)

	resultSum := 0
	for _, n := range s.ResultStats() {
		resultSum += n
	}
	assert.Equal(t, s.TotalVisits(), resultSum)

	total := 0
	for _, l := range s.Locations() {
		total += l.VisitsCount()
	}
	assert.Equal(t, s.TotalVisits(), total)
}

func TestSummary_MatchesIndividualQueries(t *testing.T) {
	s, _ := newStore(t)
	loc := addLocation(s, "A", domain.SeasonWinter)
	s.AddVisit(context.Background(), loc.ID, domain.NewVisit(
		date(2024, 1, 15), []domain.FishType{domain.FishTrout}, domain.ResultGood, ""))

	sum := s.Summary()
	assert.Equal(t, s.TotalLocations(), sum.TotalLocations)
	assert.Equal(t, s.TotalVisits(), sum.TotalVisits)
	assert.Equal(t, s.SeasonStats(), sum.SeasonStats)
	assert.Equal(t, s.FishStats(), sum.FishStats)
	assert.Equal(t, s.ResultStats(), sum.ResultStats)
	assert.Equal(t, domain.SeasonWinter, sum.BestSeason)
	assert.Equal(t, domain.FishTrout, sum.MostCommonFish)
}
