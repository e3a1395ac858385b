package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

func sampleDestinations() []domain.Destination {
	return []domain.Destination{
		{ID: 1, Name: "Tokyo Lights", Country: "Japan", City: "Tokyo", Price: 1299},
		{ID: 2, Name: "Paris Getaway", Country: "France", City: "Paris", Price: 899},
		{ID: 3, Name: "Alpine Retreat", Country: "France", City: "Chamonix", Price: 1100},
		{ID: 4, Name: "Bali Beaches", Country: "Indonesia", City: "Denpasar", Price: 9},
		{ID: 5, Name: "Kyoto Temples", Country: "Japan", City: "Kyoto", Price: 10},
	}
}

func ids(list []domain.Destination) []int64 {
	out := make([]int64, len(list))
	for i, d := range list {
		out[i] = d.ID
	}
	return out
}

func TestNoCriteriaSortsByNameAscending(t *testing.T) {
	got := Destinations(sampleDestinations(), DestinationCriteria{})

	// A permutation of the input, ordered by name.
	require.Len(t, got, 5)
	assert.Equal(t, []int64{3, 4, 5, 2, 1}, ids(got))
}

func TestInputNotMutated(t *testing.T) {
	src := sampleDestinations()
	Destinations(src, DestinationCriteria{SortBy: SortByPrice, Order: OrderDesc})
	assert.Equal(t, sampleDestinations(), src)
}

func TestSearchMatchesNameCountryCity(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"by name", "getaway", []int64{2}},
		{"by country", "japan", []int64{5, 1}},
		{"by city", "chamonix", []int64{3}},
		{"case insensitive", "PARIS", []int64{2}},
		{"no match", "atlantis", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Destinations(sampleDestinations(), DestinationCriteria{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCountryFilterAndsWithSearch(t *testing.T) {
	got := Destinations(sampleDestinations(), DestinationCriteria{Search: "a", Country: "fra"})
	// "a" appears in all names; country narrows to France.
	assert.Equal(t, []int64{3, 2}, ids(got))
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	min, max := 899.0, 1100.0
	got := Destinations(sampleDestinations(), DestinationCriteria{MinPrice: &min, MaxPrice: &max, SortBy: SortByPrice})
	assert.Equal(t, []int64{2, 3}, ids(got))

	// Min bound alone filters out exactly the cheaper elements.
	got = Destinations(sampleDestinations(), DestinationCriteria{MinPrice: &min, SortBy: SortByPrice})
	assert.Equal(t, []int64{2, 3, 1}, ids(got))
}

func TestPriceSortIsNumeric(t *testing.T) {
	got := Destinations([]domain.Destination{
		{ID: 1, Name: "A", Price: 10},
		{ID: 2, Name: "B", Price: 9},
	}, DestinationCriteria{SortBy: SortByPrice})

	// 9 before 10, not lexicographic "10" before "9".
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestSortDescending(t *testing.T) {
	got := Destinations(sampleDestinations(), DestinationCriteria{SortBy: SortByPrice, Order: OrderDesc})
	assert.Equal(t, []int64{1, 3, 2, 5, 4}, ids(got))

	got = Destinations(sampleDestinations(), DestinationCriteria{SortBy: SortByCountry, Order: OrderDesc})
	assert.Equal(t, "Japan", got[0].Country)
	assert.Equal(t, "France", got[len(got)-1].Country)
}

func TestSortByCountryStable(t *testing.T) {
	got := Destinations(sampleDestinations(), DestinationCriteria{SortBy: SortByCountry})
	// France destinations keep their input order relative to each other.
	assert.Equal(t, []int64{2, 3, 4, 1, 5}, ids(got))
}
