package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

func TestBuildDashboardSummary(t *testing.T) {
	now := day("2025-06-15")
	data := owner.DashboardData{AllBookings: []owner.Booking{
		{BookingID: "b1", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05"), CreatedAt: day("2025-06-14")},
		{BookingID: "b2", BookingStatus: owner.BookingCancelled, CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05"), CreatedAt: day("2025-06-14")},
		{BookingID: "b3", BookingStatus: owner.BookingCompleted, TotalPrice: 3500, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05"), CreatedAt: day("2025-05-02")},
		{BookingID: "b4", BookingStatus: owner.BookingCompleted, TotalPrice: 1500, CheckIn: day("2025-04-01"), CheckOut: day("2025-04-05"), CreatedAt: day("2025-04-02")},
	}}

	summary := BuildDashboardSummary(data, now)

	assert.Equal(t, 4, summary.TotalBookings)
	assert.Equal(t, 1, summary.Upcoming)
	assert.Equal(t, 1, summary.Cancelled)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 0, summary.Ongoing)
	assert.Equal(t, 5000.0, summary.TotalRevenue)

	// Seven daily bars, oldest first, only in-window creations counted.
	assert.Len(t, summary.Daily, 7)
	assert.Equal(t, "2025-06-09", summary.Daily[0].Date)
	assert.Equal(t, "2025-06-15", summary.Daily[6].Date)
	assert.Equal(t, 2, summary.Daily[5].Count)
	assert.Equal(t, 0, summary.Daily[6].Count)
}
