package travelapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/travelapp/travelplanner-client/internal/domain"
)

type addFavoriteRequest struct {
	DestinationID int64 `json:"destinationId"`
}

// ListFavorites fetches the signed-in user's favorites.
func (c *Client) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := c.get(ctx, "/favorites", &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite marks a destination as favorite.
func (c *Client) AddFavorite(ctx context.Context, destinationID int64) (*domain.Favorite, error) {
	body, err := c.do(ctx, http.MethodPost, "/favorites", addFavoriteRequest{DestinationID: destinationID})
	if err != nil {
		return nil, err
	}
	var favorite domain.Favorite
	if err := decode(body, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

// RemoveFavorite removes a favorite by its own id.
func (c *Client) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", favoriteID), nil)
	return err
}

// RemoveFavoriteByDestination removes the favorite for a destination without
// knowing the favorite's id.
func (c *Client) RemoveFavoriteByDestination(ctx context.Context, destinationID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/by-destination/%d", destinationID), nil)
	return err
}
