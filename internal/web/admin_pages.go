package web

import (
	"fmt"
	"net/http"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/viewmodel"
)

type adminBookingsPage struct {
	page
	Bookings []domain.Booking
	Total    int
	Criteria viewmodel.BookingCriteria
	Statuses []string
}

// adminStatusChoices is the status filter dropdown, ALL first.
var adminStatusChoices = []string{
	viewmodel.StatusAll,
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
	string(domain.StatusCancelled),
}

func (s *Server) handleAdminBookings(w http.ResponseWriter, r *http.Request) {
	criteria := viewmodel.BookingCriteria{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	data := adminBookingsPage{
		page:     s.newPage(r, "Booking management"),
		Criteria: criteria,
		Statuses: adminStatusChoices,
	}

	bookings, err := s.api.ListAllBookings(r.Context())
	if err != nil {
		s.redirectOrRender(w, r, err, func() {
			data.Error = errorMessage(err)
			s.render(w, "admin_bookings", data)
		})
		return
	}

	derived := viewmodel.Bookings(bookings, criteria)
	data.Bookings = derived
	data.Total = len(derived)
	s.render(w, "admin_bookings", data)
}

func (s *Server) handleStatusConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/admin/bookings", err)
		return
	}

	status := domain.BookingStatus(r.URL.Query().Get("to"))
	if !status.Valid() {
		s.redirectWithError(w, r, "/admin/bookings", errBadStatus)
		return
	}

	booking, err := s.api.GetBooking(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/admin/bookings", err)
		return
	}

	s.renderConfirm(w, r,
		fmt.Sprintf("Change status to %s?", status),
		fmt.Sprintf("Booking #%d for %s is currently %s.", booking.ID, booking.Destination.Name, booking.Status),
		fmt.Sprintf("/admin/bookings/%d/status", id),
		statusAction(id, status),
		map[string]string{"to": string(status)},
		"/admin/bookings")
}

func (s *Server) handleStatusSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/admin/bookings", err)
		return
	}

	status := domain.BookingStatus(r.FormValue("to"))
	if !status.Valid() {
		s.redirectWithError(w, r, "/admin/bookings", errBadStatus)
		return
	}

	if !s.confirms.Redeem(r.FormValue("confirm_token"), statusAction(id, status)) {
		s.redirectWithError(w, r, "/admin/bookings", errStaleConfirmation)
		return
	}

	if _, err := s.api.UpdateBookingStatus(r.Context(), id, status); err != nil {
		s.redirectWithError(w, r, "/admin/bookings", err)
		return
	}

	http.Redirect(w, r, "/admin/bookings", http.StatusFound)
}

// statusAction binds a confirm token to one booking and one target status.
func statusAction(id int64, status domain.BookingStatus) string {
	return fmt.Sprintf("/admin/bookings/%d/status:%s", id, status)
}
