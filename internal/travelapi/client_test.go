package travelapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(server.URL, StaticToken("test-token"), 5*time.Second, logger)
	return client, server
}

func TestListDestinations(t *testing.T) {
	destinations := []domain.Destination{
		{ID: 1, Name: "Paris Getaway", Country: "France", City: "Paris", Price: 899.99},
		{ID: 2, Name: "Tokyo Lights", Country: "Japan", City: "Tokyo", Price: 1299},
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/destinations", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(destinations)
	})

	got, err := client.ListDestinations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, destinations, got)
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			_, err := client.GetDestination(context.Background(), 7)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoteErrorCarriesBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("travelers must be between 1 and 10"))
	})

	_, err := client.CreateBooking(context.Background(), BookingRequest{DestinationID: 1, Travelers: 11})
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Contains(t, remote.Error(), "travelers must be between 1 and 10")
	assert.True(t, errors.Is(err, errors.Remote("")))
}

func TestCreateBookingEncodesBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, BookingRequest{
			DestinationID: 3,
			StartDate:     "2026-02-25",
			EndDate:       "2026-03-04",
			Travelers:     2,
		}, req)

		json.NewEncoder(w).Encode(domain.Booking{ID: 10, Status: domain.StatusPending})
	})

	booking, err := client.CreateBooking(context.Background(), BookingRequest{
		DestinationID: 3,
		StartDate:     "2026-02-25",
		EndDate:       "2026-03-04",
		Travelers:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestUpdateBookingStatusUsesQueryParam(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/admin/5/status", r.URL.Path)
		assert.Equal(t, "CONFIRMED", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(domain.Booking{ID: 5, Status: domain.StatusConfirmed})
	})

	booking, err := client.UpdateBookingStatus(context.Background(), 5, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestFavoritesRoutes(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		if r.Method == http.MethodPost {
			var req addFavoriteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(9), req.DestinationID)
			json.NewEncoder(w).Encode(domain.Favorite{ID: 1, Destination: domain.Destination{ID: 9}})
		}
	})

	_, err := client.AddFavorite(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "/favorites", gotPath)

	require.NoError(t, client.RemoveFavoriteByDestination(context.Background(), 9))
	assert.Equal(t, "/favorites/by-destination/9", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)

	require.NoError(t, client.RemoveFavorite(context.Background(), 4))
	assert.Equal(t, "/favorites/4", gotPath)
}

func TestNoTokenOmitsHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(AuthResponse{Token: "issued"})
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(server.URL, StaticToken(""), time.Second, logger)

	auth, err := client.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "issued", auth.Token)
}
