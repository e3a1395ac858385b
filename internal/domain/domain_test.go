package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripEndDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"mid month", "2026-02-10", "2026-02-17"},
		{"month boundary", "2026-01-31", "2026-02-07"},
		{"year boundary", "2025-12-29", "2026-01-05"},
		{"leap february", "2028-02-26", "2028-03-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, TripEndDate(start))
		})
	}
}

func TestBookingTotal(t *testing.T) {
	b := Booking{Destination: Destination{Price: 899.5}, Travelers: 3}
	assert.InDelta(t, 2698.5, b.Total(), 0.0001)
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleUser}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, BookingStatus("REJECTED").Valid())
	assert.False(t, BookingStatus("").Valid())
}
