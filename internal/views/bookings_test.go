package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBucketBookings(t *testing.T) {
	now := day("2025-06-15")

	cancelled := owner.Booking{BookingID: "b1", BookingStatus: owner.BookingCancelled, CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05")}
	upcoming := owner.Booking{BookingID: "b2", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05")}
	completed := owner.Booking{BookingID: "b3", BookingStatus: owner.BookingCompleted, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05")}

	buckets := BucketBookings([]owner.Booking{cancelled, upcoming, completed}, now, "")

	assert.Equal(t, []owner.Booking{cancelled}, buckets.Cancelled)
	assert.Equal(t, []owner.Booking{upcoming}, buckets.Upcoming)
	assert.Equal(t, []owner.Booking{completed}, buckets.Completed)
	assert.Empty(t, buckets.Ongoing)
}

func TestBucketBookingsOngoing(t *testing.T) {
	now := day("2025-06-15")
	ongoing := owner.Booking{BookingID: "b1", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-06-14"), CheckOut: day("2025-06-16")}

	buckets := BucketBookings([]owner.Booking{ongoing}, now, "")

	assert.Equal(t, []owner.Booking{ongoing}, buckets.Ongoing)
	assert.Empty(t, buckets.Upcoming)
	assert.Empty(t, buckets.Completed)
}

// A booking that checked out while still "confirmed" lands in no bucket.
func TestBucketBookingsStuckConfirmed(t *testing.T) {
	now := day("2025-06-15")
	stuck := owner.Booking{BookingID: "b1", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-05-01"), CheckOut: day("2025-05-05")}

	buckets := BucketBookings([]owner.Booking{stuck}, now, "")

	assert.Empty(t, buckets.Upcoming)
	assert.Empty(t, buckets.Ongoing)
	assert.Empty(t, buckets.Completed)
	assert.Empty(t, buckets.Cancelled)
}

// A cancelled booking never leaks into a date-derived bucket, whatever its
// dates say.
func TestBucketBookingsCancelledWins(t *testing.T) {
	now := day("2025-06-15")
	cancelledFuture := owner.Booking{BookingID: "b1", BookingStatus: owner.BookingCancelled, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05")}
	cancelledOngoing := owner.Booking{BookingID: "b2", BookingStatus: owner.BookingCancelled, CheckIn: day("2025-06-14"), CheckOut: day("2025-06-16")}

	buckets := BucketBookings([]owner.Booking{cancelledFuture, cancelledOngoing}, now, "")

	assert.Len(t, buckets.Cancelled, 2)
	assert.Empty(t, buckets.Upcoming)
	assert.Empty(t, buckets.Ongoing)
}

func TestBucketBookingsQueryFilter(t *testing.T) {
	now := day("2025-06-15")
	bookings := []owner.Booking{
		{BookingID: "b1", FullName: "Maria Santos", Title: "Beach House", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05")},
		{BookingID: "b2", FullName: "Juan Cruz", Title: "City Loft", BookingStatus: owner.BookingConfirmed, CheckIn: day("2025-07-01"), CheckOut: day("2025-07-05")},
	}

	buckets := BucketBookings(bookings, now, "maria")
	assert.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, "b1", buckets.Upcoming[0].BookingID)

	// Listing title matches too, case-insensitive.
	buckets = BucketBookings(bookings, now, "LOFT")
	assert.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, "b2", buckets.Upcoming[0].BookingID)
}

func TestBookingsOnDate(t *testing.T) {
	bookings := []owner.Booking{
		{BookingID: "b1", CheckIn: day("2025-06-15")},
		{BookingID: "b2", CheckIn: day("2025-06-16")},
		{BookingID: "b3", CheckIn: day("2025-06-15")},
	}

	got := BookingsOnDate(bookings, day("2025-06-15"))
	assert.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].BookingID)
	assert.Equal(t, "b3", got[1].BookingID)
}
