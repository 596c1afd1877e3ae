package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

func TestLatestBookingPerGuest(t *testing.T) {
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1", CheckIn: day("2024-01-01")},
		{BookingID: "b2", GuestUserID: "g1", CheckIn: day("2024-03-01")},
	}

	got := LatestBookingPerGuest(rows)
	assert.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].BookingID)
}

// A tie on check-in keeps the first booking encountered.
func TestLatestBookingPerGuestTie(t *testing.T) {
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1", CheckIn: day("2024-01-01")},
		{BookingID: "b2", GuestUserID: "g1", CheckIn: day("2024-01-01")},
	}

	got := LatestBookingPerGuest(rows)
	assert.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].BookingID)
}

func TestLatestBookingPerGuestOrder(t *testing.T) {
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1", CheckIn: day("2024-01-01")},
		{BookingID: "b2", GuestUserID: "g2", CheckIn: day("2024-05-01")},
		{BookingID: "b3", GuestUserID: "g1", CheckIn: day("2024-03-01")},
	}

	got := LatestBookingPerGuest(rows)
	assert.Len(t, got, 2)
	// First-encounter guest order survives even when a later row replaced
	// the guest's booking.
	assert.Equal(t, "g1", got[0].GuestUserID)
	assert.Equal(t, "b3", got[0].BookingID)
	assert.Equal(t, "g2", got[1].GuestUserID)
}

func TestBuildGuestOverview(t *testing.T) {
	today := day("2025-06-15")
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1", CustomerName: "Maria Santos", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-06-14"), CheckOut: day("2025-06-16")},
		{BookingID: "b2", GuestUserID: "g2", CustomerName: "Juan Cruz", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05")},
		{BookingID: "b3", GuestUserID: "g3", CustomerName: "Ana Reyes", BookingStatus: owner.BookingCancelled, CheckIn: day("2025-04-01"), CheckOut: day("2025-04-05")},
	}

	overview := BuildGuestOverview(rows, today, "")

	assert.Equal(t, 3, overview.Total)
	assert.Len(t, overview.Current, 1)
	assert.Equal(t, "g1", overview.Current[0].GuestUserID)
	assert.Len(t, overview.Completed, 1)
	assert.Equal(t, "g2", overview.Completed[0].GuestUserID)
	assert.Len(t, overview.Cancelled, 1)
	assert.Equal(t, "g3", overview.Cancelled[0].GuestUserID)
	assert.Len(t, overview.ByGuest, 3)
}

func TestBuildGuestOverviewFilter(t *testing.T) {
	today := day("2025-06-15")
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1", CustomerName: "Maria Santos", CustomerEmail: "maria@example.com", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05")},
		{BookingID: "b2", GuestUserID: "g2", CustomerName: "Juan Cruz", CustomerEmail: "juan@example.com", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05")},
	}

	byName := BuildGuestOverview(rows, today, "maria")
	assert.Len(t, byName.Completed, 1)
	assert.Equal(t, "g1", byName.Completed[0].GuestUserID)

	byEmail := BuildGuestOverview(rows, today, "juan@")
	assert.Len(t, byEmail.Completed, 1)
	assert.Equal(t, "g2", byEmail.Completed[0].GuestUserID)

	// The filter narrows the per-state lists, never the totals.
	assert.Equal(t, 2, byName.Total)
}

func TestGroupBookingsByGuest(t *testing.T) {
	rows := []owner.GuestBooking{
		{BookingID: "b1", GuestUserID: "g1"},
		{BookingID: "b2", GuestUserID: "g2"},
		{BookingID: "b3", GuestUserID: "g1"},
	}

	grouped := GroupBookingsByGuest(rows)
	assert.Len(t, grouped, 2)
	assert.Equal(t, []string{"b1", "b3"}, []string{grouped["g1"][0].BookingID, grouped["g1"][1].BookingID})
	assert.Len(t, grouped["g2"], 1)
}
