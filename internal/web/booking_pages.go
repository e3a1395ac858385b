package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
)

type bookingFormPage struct {
	page
	Destination domain.Destination
	StartDate   string
	Travelers   int
}

type bookingForm struct {
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	Travelers int    `form:"travelers" validate:"required,min=1,max=10"`
}

func (s *Server) handleBookingForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	destination, err := s.api.GetDestination(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	travelers := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("travelers")); err == nil && v >= 1 && v <= 10 {
		travelers = v
	}

	s.render(w, "booking_form", bookingFormPage{
		page:        s.newPage(r, "Book "+destination.Name),
		Destination: *destination,
		Travelers:   travelers,
	})
}

func (s *Server) handleBookingSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	destination, err := s.api.GetDestination(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}

	travelers, _ := strconv.Atoi(r.FormValue("travelers"))
	form := bookingForm{
		StartDate: r.FormValue("start_date"),
		Travelers: travelers,
	}

	data := bookingFormPage{
		page:        s.newPage(r, "Book "+destination.Name),
		Destination: *destination,
		StartDate:   form.StartDate,
		Travelers:   form.Travelers,
	}

	if err := s.validator.Validate(form); err != nil {
		data.Error = errorMessage(err)
		s.render(w, "booking_form", data)
		return
	}

	start, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		data.Error = errorMessage(errBadStartDate)
		s.render(w, "booking_form", data)
		return
	}

	// Fixed seven-day trips: the end date is derived, never user input.
	booking, err := s.api.CreateBooking(r.Context(), travelapi.BookingRequest{
		DestinationID: id,
		StartDate:     form.StartDate,
		EndDate:       domain.TripEndDate(start),
		Travelers:     form.Travelers,
	})
	if err != nil {
		if isUnauthorized(err) {
			s.redirectWithError(w, r, "/dashboard", err)
			return
		}
		data.Error = errorMessage(err)
		s.render(w, "booking_form", data)
		return
	}

	s.renderSuccess(w, r,
		"Booking confirmed!",
		fmt.Sprintf("Your trip to %s is booked for %s to %s.", destination.Name, booking.StartDate, booking.EndDate),
		"/bookings")
}

type bookingsPage struct {
	page
	Bookings []domain.Booking
}

func (s *Server) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	data := bookingsPage{page: s.newPage(r, "My bookings")}

	bookings, err := s.api.ListMyBookings(r.Context())
	if err != nil {
		s.redirectOrRender(w, r, err, func() {
			data.Error = errorMessage(err)
			s.render(w, "bookings", data)
		})
		return
	}

	data.Bookings = bookings
	s.render(w, "bookings", data)
}

func (s *Server) handleCancelConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/bookings", err)
		return
	}

	booking, err := s.api.GetBooking(r.Context(), id)
	if err != nil {
		s.redirectWithError(w, r, "/bookings", err)
		return
	}

	action := fmt.Sprintf("/bookings/%d/cancel", id)
	s.renderConfirm(w, r,
		fmt.Sprintf("Cancel your trip to %s?", booking.Destination.Name),
		fmt.Sprintf("The booking for %s to %s will be cancelled.", booking.StartDate, booking.EndDate),
		action, action, nil,
		"/bookings")
}

func (s *Server) handleCancelSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.redirectWithError(w, r, "/bookings", err)
		return
	}

	action := fmt.Sprintf("/bookings/%d/cancel", id)
	if !s.confirms.Redeem(r.FormValue("confirm_token"), action) {
		s.redirectWithError(w, r, "/bookings", errStaleConfirmation)
		return
	}

	if err := s.api.CancelBooking(r.Context(), id); err != nil {
		s.redirectWithError(w, r, "/bookings", err)
		return
	}

	http.Redirect(w, r, "/bookings", http.StatusFound)
}
