package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// ---- mock implementations ----

type mockBookingAPI struct {
	listFn       func(lessorID string) ([]owner.Booking, error)
	changeFn     func(bookingID, newStatus string) error
	cancelFn     func(bookingID, reason string) error
	rescheduleFn func(bookingID, newCheckIn, newCheckOut string) error
}

func (m *mockBookingAPI) BookingsByLessor(ctx context.Context, lessorID string) ([]owner.Booking, error) {
	if m.listFn != nil {
		return m.listFn(lessorID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBookingAPI) ChangeBookingStatus(ctx context.Context, bookingID, newStatus string) error {
	if m.changeFn != nil {
		return m.changeFn(bookingID, newStatus)
	}
	return fmt.Errorf("not configured")
}

func (m *mockBookingAPI) CancelBooking(ctx context.Context, bookingID, reason string) error {
	if m.cancelFn != nil {
		return m.cancelFn(bookingID, reason)
	}
	return fmt.Errorf("not configured")
}

func (m *mockBookingAPI) RescheduleBooking(ctx context.Context, bookingID, newCheckIn, newCheckOut string) error {
	if m.rescheduleFn != nil {
		return m.rescheduleFn(bookingID, newCheckIn, newCheckOut)
	}
	return fmt.Errorf("not configured")
}

// ---- helpers ----

func fakeSession(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("currentUser", &owner.UserProfile{UserID: userID, FullName: "Maria Santos", Verified: true})
		c.Next()
	}
}

func newBookingTestRouter(api BookingAPI, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeSession("u1"))
	h := NewBookingHandler(api)
	h.now = func() time.Time { return now }
	r.GET("/v1/bookings", h.List)
	r.GET("/v1/bookings/calendar", h.Calendar)
	r.POST("/v1/bookings/:bookingId/accept", h.Accept)
	r.POST("/v1/bookings/:bookingId/cancel", h.Cancel)
	r.POST("/v1/bookings/:bookingId/reschedule", h.Reschedule)
	return r
}

func parseDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return day
}

// ---- tests ----

func TestListBookings(t *testing.T) {
	now := parseDay(t, "2025-06-15")
	api := &mockBookingAPI{listFn: func(lessorID string) ([]owner.Booking, error) {
		if lessorID != "u1" {
			t.Errorf("expected lessor u1, got %s", lessorID)
		}
		return []owner.Booking{
			{BookingID: "b1", BookingStatus: owner.BookingConfirmed, CheckIn: parseDay(t, "2025-07-01"), CheckOut: parseDay(t, "2025-07-05")},
		}, nil
	}}
	router := newBookingTestRouter(api, now)

	w := doJSONRequest(router, http.MethodGet, "/v1/bookings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
}

func TestListBookingsBackendDown(t *testing.T) {
	api := &mockBookingAPI{listFn: func(lessorID string) ([]owner.Booking, error) {
		return nil, fmt.Errorf("connection refused")
	}}
	router := newBookingTestRouter(api, time.Now())

	w := doJSONRequest(router, http.MethodGet, "/v1/bookings", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d; body: %s", w.Code, w.Body.String())
	}
}

func TestBookingCalendar(t *testing.T) {
	api := &mockBookingAPI{listFn: func(lessorID string) ([]owner.Booking, error) {
		return []owner.Booking{
			{BookingID: "b1", CheckIn: parseDay(t, "2025-06-15")},
			{BookingID: "b2", CheckIn: parseDay(t, "2025-06-16")},
			{BookingID: "b3", CheckIn: parseDay(t, "2025-06-15")},
		}, nil
	}}
	router := newBookingTestRouter(api, parseDay(t, "2025-06-15"))

	w := doJSONRequest(router, http.MethodGet, "/v1/bookings/calendar?date=2025-06-15", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Date     string          `json:"date"`
		Bookings []owner.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Date != "2025-06-15" {
		t.Errorf("expected requested date echoed back, got %q", resp.Date)
	}
	if len(resp.Bookings) != 2 {
		t.Fatalf("expected 2 check-ins on the day, got %d", len(resp.Bookings))
	}
	if resp.Bookings[0].BookingID != "b1" || resp.Bookings[1].BookingID != "b3" {
		t.Errorf("expected input order preserved, got %+v", resp.Bookings)
	}
}

func TestBookingCalendarBadDate(t *testing.T) {
	router := newBookingTestRouter(&mockBookingAPI{}, time.Now())
	w := doJSONRequest(router, http.MethodGet, "/v1/bookings/calendar?date=June+15", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d; body: %s", w.Code, w.Body.String())
	}
}

func TestAcceptBooking(t *testing.T) {
	var gotStatus string
	api := &mockBookingAPI{changeFn: func(bookingID, newStatus string) error {
		gotStatus = newStatus
		return nil
	}}
	router := newBookingTestRouter(api, time.Now())

	w := doJSONRequest(router, http.MethodPost, "/v1/bookings/b1/accept", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if gotStatus != owner.BookingConfirmed {
		t.Errorf("expected status transition to confirmed, got %q", gotStatus)
	}
}

func TestAcceptBookingBackendRejection(t *testing.T) {
	api := &mockBookingAPI{changeFn: func(bookingID, newStatus string) error {
		return &owner.APIError{Status: http.StatusConflict, Message: "Booking already confirmed"}
	}}
	router := newBookingTestRouter(api, time.Now())

	w := doJSONRequest(router, http.MethodPost, "/v1/bookings/b1/accept", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("expected backend status to pass through, got %d", w.Code)
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "success - reason given",
			body:           map[string]interface{}{"reason": "double booked"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing reason",
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
		},
	}
	api := &mockBookingAPI{cancelFn: func(bookingID, reason string) error { return nil }}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookingTestRouter(api, time.Now())
			w := doJSONRequest(router, http.MethodPost, "/v1/bookings/b1/cancel", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRescheduleBooking(t *testing.T) {
	now := parseDay(t, "2025-06-15")
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "success - valid future window",
			body:           map[string]interface{}{"new_check_in": "2025-07-01", "new_check_out": "2025-07-05"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - check-in in the past",
			body:           map[string]interface{}{"new_check_in": "2025-06-01", "new_check_out": "2025-07-05"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - check-out before check-in",
			body:           map[string]interface{}{"new_check_in": "2025-07-05", "new_check_out": "2025-07-01"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - unparseable date",
			body:           map[string]interface{}{"new_check_in": "July 1st", "new_check_out": "2025-07-05"},
			expectedStatus: http.StatusBadRequest,
		},
	}
	api := &mockBookingAPI{rescheduleFn: func(bookingID, newCheckIn, newCheckOut string) error { return nil }}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookingTestRouter(api, now)
			w := doJSONRequest(router, http.MethodPost, "/v1/bookings/b1/reschedule", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
