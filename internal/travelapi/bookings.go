package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

// BookingRequest is the payload for creating a booking. The end date is
// computed client-side as start plus the fixed trip length before the call.
type BookingRequest struct {
	DestinationID int64  `json:"destinationId"`
	StartDate     string `json:"startDate"` // YYYY-MM-DD
	EndDate       string `json:"endDate"`   // YYYY-MM-DD
	Travelers     int    `json:"travelers"`
}

// CreateBooking creates a booking for the signed-in user.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	body, err := c.do(ctx, http.MethodPost, "/bookings", req)
	if err != nil {
		return nil, err
	}
	var booking domain.Booking
	if err := decode(body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListMyBookings fetches the signed-in user's bookings.
func (c *Client) ListMyBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches one booking by id.
func (c *Client) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", id), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking deletes a booking.
func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil)
	return err
}

// ListAllBookings fetches every booking (admin).
func (c *Client) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/admin", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus requests a status transition (admin). The status rides
// in the query string; the server decides whether the transition is legal.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	path := fmt.Sprintf("/bookings/admin/%d/status?status=%s", id, url.QueryEscape(string(status)))
	body, err := c.do(ctx, http.MethodPatch, path, nil)
	if err != nil {
		return nil, err
	}
	var booking domain.Booking
	if err := decode(body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
