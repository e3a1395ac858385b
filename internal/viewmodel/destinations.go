// Package viewmodel derives displayed lists from raw server lists and
// filter/sort criteria. Derivations are pure: deterministic, total for any
// well-formed input, and they never mutate the source slice. Each page
// request re-derives from the full source; there is no memoization to
// invalidate.
package viewmodel

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

// SortKey selects the destination sort field.
type SortKey string

const (
	SortByName    SortKey = "name"
	SortByPrice   SortKey = "price"
	SortByCountry SortKey = "country"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// DestinationCriteria is the filter/sort state of the destination list.
// Zero-valued filters are no-ops; sorting is always applied, defaulting to
// name ascending.
type DestinationCriteria struct {
	// Search matches name, country, or city, case-insensitive substring.
	Search string
	// Country independently narrows by country substring.
	Country string
	// MinPrice/MaxPrice are inclusive bounds; nil means unbounded.
	MinPrice *float64
	MaxPrice *float64
	SortBy   SortKey
	Order    SortOrder
}

// Destinations returns the filtered, sorted list for display. The result is
// always a permutation of the elements that pass the filters.
func Destinations(items []domain.Destination, criteria DestinationCriteria) []domain.Destination {
	result := make([]domain.Destination, 0, len(items))

	search := strings.ToLower(criteria.Search)
	country := strings.ToLower(criteria.Country)

	for _, d := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Country), search) &&
			!strings.Contains(strings.ToLower(d.City), search) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(d.Country), country) {
			continue
		}
		if criteria.MinPrice != nil && d.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && d.Price > *criteria.MaxPrice {
			continue
		}
		result = append(result, d)
	}

	sortBy := criteria.SortBy
	if sortBy == "" {
		sortBy = SortByName
	}

	// The collator buffers internally, so one is built per derivation
	// rather than shared across requests.
	coll := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(result, func(i, j int) bool {
		var cmp int
		switch sortBy {
		case SortByPrice:
			switch {
			case result[i].Price < result[j].Price:
				cmp = -1
			case result[i].Price > result[j].Price:
				cmp = 1
			}
		case SortByCountry:
			cmp = coll.CompareString(result[i].Country, result[j].Country)
		default:
			cmp = coll.CompareString(result[i].Name, result[j].Name)
		}
		if criteria.Order == OrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return result
}
