package travelapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

// DestinationRequest is the create/update payload: every destination field
// minus the server-assigned id.
type DestinationRequest struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

// ListDestinations fetches all destinations.
func (c *Client) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := c.get(ctx, "/destinations", &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

// GetDestination fetches one destination by id.
func (c *Client) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	var destination domain.Destination
	if err := c.get(ctx, fmt.Sprintf("/destinations/%d", id), &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// CreateDestination creates a destination (admin).
func (c *Client) CreateDestination(ctx context.Context, req DestinationRequest) (*domain.Destination, error) {
	body, err := c.do(ctx, http.MethodPost, "/destinations", req)
	if err != nil {
		return nil, err
	}
	var destination domain.Destination
	if err := decode(body, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// UpdateDestination replaces a destination in full (admin).
func (c *Client) UpdateDestination(ctx context.Context, id int64, req DestinationRequest) (*domain.Destination, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/destinations/%d", id), req)
	if err != nil {
		return nil, err
	}
	var destination domain.Destination
	if err := decode(body, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// DeleteDestination deletes a destination (admin).
func (c *Client) DeleteDestination(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/destinations/%d", id), nil)
	return err
}
