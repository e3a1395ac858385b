// Package domain defines the client-side copies of the travel planner's
// server entities. The remote API owns every one of them; instances here are
// created on fetch, shown, and discarded when the page cycle ends.
package domain

import "time"

// Role is the account role carried in the credential's claims.
type Role string

// Account roles known to the backend.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// BookingStatus is the server-authoritative booking state.
type BookingStatus string

// Booking statuses. Transitions happen server-side; the client only
// requests them.
const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Identity is the signed-in user as the client understands it. It is
// reconstructed from the decoded credential plus the email supplied at login
// and is advisory only: the backend never vouched for it beyond issuing the
// token.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the identity claims the admin role. This gates
// navigation and UI affordances only; authorization stays with the server.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Destination is a bookable destination. Price is per person.
type Destination struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

// Booking is a trip booking with its destination embedded, as the backend
// returns it.
type Booking struct {
	ID          int64         `json:"id"`
	Destination Destination   `json:"destination"`
	StartDate   string        `json:"startDate"` // YYYY-MM-DD
	EndDate     string        `json:"endDate"`   // YYYY-MM-DD
	Travelers   int           `json:"travelers"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Total returns the display price for the whole party. The backend holds
// pricing authority; this exists for rendering only.
func (b Booking) Total() float64 {
	return b.Destination.Price * float64(b.Travelers)
}

// Favorite marks a destination as saved by the current user.
type Favorite struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	Destination Destination `json:"destination"`
}

// TripLength is the fixed trip duration the product sells. The booking form
// computes the end date from it at submit time.
const TripLength = 7 * 24 * time.Hour

// TripEndDate returns start plus the fixed seven-day trip length, formatted
// as the backend expects. AddDate handles month and year boundaries.
func TripEndDate(start time.Time) string {
	return start.AddDate(0, 0, 7).Format("2006-01-02")
}
