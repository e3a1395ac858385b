package viewmodel

import (
	"strings"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

// StatusAll disables the status filter on the admin booking list.
const StatusAll = "ALL"

// BookingCriteria is the filter state of the admin booking list.
type BookingCriteria struct {
	// Status is an exact match, or StatusAll / empty for no filter.
	Status string
	// Search matches the destination name, case-insensitive substring.
	Search string
}

// Bookings returns the bookings matching the criteria, in input order.
func Bookings(items []domain.Booking, criteria BookingCriteria) []domain.Booking {
	result := make([]domain.Booking, 0, len(items))

	search := strings.ToLower(criteria.Search)
	filterStatus := criteria.Status != "" && criteria.Status != StatusAll

	for _, b := range items {
		if filterStatus && string(b.Status) != criteria.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Destination.Name), search) {
			continue
		}
		result = append(result, b)
	}

	return result
}
