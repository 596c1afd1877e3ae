package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

type closeRecorder struct {
	*strings.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestClosePartsReleasesReaders(t *testing.T) {
	rec := &closeRecorder{Reader: strings.NewReader("image-bytes")}
	parts := []owner.FilePart{
		{Field: "images", Filename: "front.jpg", Content: rec},
		// A part whose reader has no Close must not panic.
		{Field: "images", Filename: "back.jpg", Content: strings.NewReader("image-bytes")},
	}

	closeParts(parts)

	if !rec.closed {
		t.Errorf("expected the uploaded part's reader to be closed")
	}
}

func TestRespondMutationErrorPassesBackendStatusThrough(t *testing.T) {
	router := newBookingTestRouter(&mockBookingAPI{changeFn: func(bookingID, newStatus string) error {
		return &owner.APIError{Status: http.StatusForbidden, Message: "Not your booking"}
	}}, parseDay(t, "2025-06-15"))

	w := doJSONRequest(router, http.MethodPost, "/v1/bookings/b9/accept", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Not your booking") {
		t.Errorf("expected backend message to pass through, got %s", w.Body.String())
	}
}
