// Package views holds the pure transforms that turn flat backend
// collections into the grouped view models the owner centre renders.
// Every function is deterministic and side-effect free; callers recompute
// over fresh snapshots rather than merging incrementally.
package views

import (
	"strings"
	"time"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// BookingBuckets partitions an owner's bookings by time relative to now.
// The buckets are mutually disjoint but need not cover the input: a booking
// that is checked out while its status is still "confirmed" lands in no
// bucket, matching how the backend reports it.
type BookingBuckets struct {
	Upcoming  []owner.Booking `json:"upcoming"`
	Ongoing   []owner.Booking `json:"ongoing"`
	Completed []owner.Booking `json:"completed"`
	Cancelled []owner.Booking `json:"cancelled"`
}

// BucketBookings applies the optional case-insensitive substring filter
// (guest name or listing title), then buckets:
//
//	Upcoming:  check-in after now, not cancelled
//	Ongoing:   check-in <= now <= check-out, not cancelled
//	Completed: check-out before now, status completed
//	Cancelled: status cancelled, regardless of dates
//
// A cancelled booking appears in the cancelled bucket only.
func BucketBookings(bookings []owner.Booking, now time.Time, query string) BookingBuckets {
	var buckets BookingBuckets
	for _, b := range bookings {
		if !matchesBookingQuery(b, query) {
			continue
		}
		switch {
		case b.BookingStatus == owner.BookingCancelled:
			buckets.Cancelled = append(buckets.Cancelled, b)
		case b.CheckIn.After(now):
			buckets.Upcoming = append(buckets.Upcoming, b)
		case !b.CheckIn.After(now) && !b.CheckOut.Before(now):
			buckets.Ongoing = append(buckets.Ongoing, b)
		case b.CheckOut.Before(now) && b.BookingStatus == owner.BookingCompleted:
			buckets.Completed = append(buckets.Completed, b)
		}
	}
	return buckets
}

// BookingsOnDate returns the bookings whose check-in falls on the given
// calendar day, for the booking calendar view.
func BookingsOnDate(bookings []owner.Booking, day time.Time) []owner.Booking {
	var out []owner.Booking
	y, m, d := day.Date()
	for _, b := range bookings {
		by, bm, bd := b.CheckIn.Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out
}

func matchesBookingQuery(b owner.Booking, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.FullName), q) ||
		strings.Contains(strings.ToLower(b.Title), q)
}
