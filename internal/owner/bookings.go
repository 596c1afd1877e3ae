package owner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// BookingsByLessor lists every booking against the owner's listings. The
// backend sometimes returns a bare array and sometimes {"bookings": [...]};
// both shapes are accepted.
func (c *Client) BookingsByLessor(ctx context.Context, lessorID string) ([]Booking, error) {
	var raw json.RawMessage
	url := fmt.Sprintf("%s/bookings/lessor/%s", c.ownerURL, lessorID)
	if err := c.doJSON(ctx, http.MethodGet, url, "", nil, &raw); err != nil {
		return nil, err
	}

	var bookings []Booking
	if err := json.Unmarshal(raw, &bookings); err == nil {
		return bookings, nil
	}
	var wrapped struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return wrapped.Bookings, nil
}

// FullBookingInfo lists every booking joined with guest contact details.
func (c *Client) FullBookingInfo(ctx context.Context, lessorID string) ([]GuestBooking, error) {
	var resp struct {
		Data []GuestBooking `json:"data"`
	}
	url := fmt.Sprintf("%s/full-booking-info/%s", c.ownerURL, lessorID)
	if err := c.doJSON(ctx, http.MethodGet, url, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ChangeBookingStatus moves a booking to a new status, e.g. accepting a
// pending booking as confirmed. The transition itself is validated server
// side; the local booking cache is refreshed afterwards, never patched.
func (c *Client) ChangeBookingStatus(ctx context.Context, bookingID, newStatus string) error {
	body := map[string]string{"booking_id": bookingID, "new_status": newStatus}
	return c.doJSON(ctx, http.MethodPost, c.ownerURL+"/change-bookingstatus", "", body, nil)
}

// CancelBooking cancels (or declines, when still pending) a booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID, reason string) error {
	body := map[string]string{"booking_id": bookingID, "reason": reason}
	return c.doJSON(ctx, http.MethodPost, c.ownerURL+"/cancel-booking", "", body, nil)
}

// RescheduleBooking moves the stay window. Dates are calendar days in
// YYYY-MM-DD form, interpreted in the property's timezone by the backend.
func (c *Client) RescheduleBooking(ctx context.Context, bookingID, newCheckIn, newCheckOut string) error {
	body := map[string]string{
		"booking_id":    bookingID,
		"new_check_in":  newCheckIn,
		"new_check_out": newCheckOut,
	}
	return c.doJSON(ctx, http.MethodPost, c.ownerURL+"/reschedule-booking", "", body, nil)
}

// Dashboard fetches the raw dashboard payload for an owner.
func (c *Client) Dashboard(ctx context.Context, userID string) (*DashboardData, error) {
	var data DashboardData
	url := fmt.Sprintf("%s/dashboard/%s", c.ownerURL, userID)
	if err := c.doJSON(ctx, http.MethodGet, url, "", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CheckNewEntry polls the change marker used to trigger booking reloads.
func (c *Client) CheckNewEntry(ctx context.Context) (*NewEntry, error) {
	var entry NewEntry
	if err := c.doJSON(ctx, http.MethodGet, c.ownerURL+"/new-entry", "", nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
