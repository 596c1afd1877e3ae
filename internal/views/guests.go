package views

import (
	"strings"
	"time"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// GuestOverview is the guests page model: each partition holds at most one
// row per guest, the one with the latest check-in.
type GuestOverview struct {
	Total     int                             `json:"total"`
	Current   []owner.GuestBooking            `json:"current"`
	Completed []owner.GuestBooking            `json:"completed"`
	Cancelled []owner.GuestBooking            `json:"cancelled"`
	ByGuest   map[string][]owner.GuestBooking `json:"by_guest"`
}

// BuildGuestOverview partitions the full booking join by stay state, keeps
// the latest booking per guest within each partition, and applies the
// optional name/email search filter. ByGuest keeps every booking, keyed by
// guest id, for the per-guest history view.
func BuildGuestOverview(rows []owner.GuestBooking, today time.Time, query string) GuestOverview {
	var current, completed, cancelled []owner.GuestBooking
	for _, g := range rows {
		switch {
		case !g.CheckIn.After(today) && !g.CheckOut.Before(today) && g.BookingStatus == owner.BookingConfirmed:
			current = append(current, g)
		case g.CheckOut.Before(today) && g.BookingStatus == owner.BookingConfirmed:
			completed = append(completed, g)
		case g.CheckOut.Before(today) && g.BookingStatus == owner.BookingCancelled:
			cancelled = append(cancelled, g)
		}
	}

	return GuestOverview{
		Total:     len(rows),
		Current:   filterGuests(LatestBookingPerGuest(current), query),
		Completed: filterGuests(LatestBookingPerGuest(completed), query),
		Cancelled: filterGuests(LatestBookingPerGuest(cancelled), query),
		ByGuest:   GroupBookingsByGuest(rows),
	}
}

// LatestBookingPerGuest keeps, for each distinct guest id, the single
// booking with the latest check-in. A strictly later check-in wins; ties
// keep the first encountered. Output preserves first-encounter guest order.
func LatestBookingPerGuest(rows []owner.GuestBooking) []owner.GuestBooking {
	latest := make(map[string]owner.GuestBooking)
	var order []string
	for _, b := range rows {
		existing, ok := latest[b.GuestUserID]
		if !ok {
			latest[b.GuestUserID] = b
			order = append(order, b.GuestUserID)
			continue
		}
		if b.CheckIn.After(existing.CheckIn) {
			latest[b.GuestUserID] = b
		}
	}

	out := make([]owner.GuestBooking, 0, len(order))
	for _, id := range order {
		out = append(out, latest[id])
	}
	return out
}

// GroupBookingsByGuest collects every booking under its guest id, input
// order preserved within each group.
func GroupBookingsByGuest(rows []owner.GuestBooking) map[string][]owner.GuestBooking {
	grouped := make(map[string][]owner.GuestBooking)
	for _, b := range rows {
		grouped[b.GuestUserID] = append(grouped[b.GuestUserID], b)
	}
	return grouped
}

func filterGuests(rows []owner.GuestBooking, query string) []owner.GuestBooking {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	var out []owner.GuestBooking
	for _, g := range rows {
		if strings.Contains(strings.ToLower(g.CustomerName), q) ||
			strings.Contains(strings.ToLower(g.CustomerEmail), q) {
			out = append(out, g)
		}
	}
	return out
}
