package owner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// PropertyForm is the add/update-property submission. Images travel as
// separate multipart file parts.
type PropertyForm struct {
	Title           string
	Address         string
	Type            string
	PricePerNight   float64
	PriceDayUse     float64
	MaxRooms        int
	Amenities       []string
	DayUseAvailable bool
	Status          string
	City            string
	Province        string
	Country         string
}

// RoomForm is the add/update-room submission.
type RoomForm struct {
	RoomName      string
	RoomType      string
	PricePerNight float64
	TotalRooms    int
	MaxGuests     int
	Description   string
	Amenities     []string
	Active        bool
}

// PropertiesByLessor returns the flat property+room join rows for an owner.
func (c *Client) PropertiesByLessor(ctx context.Context, lessorID string) ([]PropertyRow, error) {
	var rows []PropertyRow
	url := fmt.Sprintf("%s/properties/lessor/%s", c.ownerURL, lessorID)
	if err := c.doJSON(ctx, http.MethodGet, url, "", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AddProperty creates a listing with its images.
func (c *Client) AddProperty(ctx context.Context, token string, form PropertyForm, images []FilePart) error {
	return c.doMultipart(ctx, c.ownerURL+"/add-property", token, propertyFields(form), images, nil)
}

// UpdateProperty replaces a listing's fields and, when images are given,
// its gallery.
func (c *Client) UpdateProperty(ctx context.Context, token, propertyID string, form PropertyForm, images []FilePart) error {
	url := fmt.Sprintf("%s/update-property/%s", c.ownerURL, propertyID)
	return c.doMultipart(ctx, url, token, propertyFields(form), images, nil)
}

// DeleteProperty removes a listing and its rooms.
func (c *Client) DeleteProperty(ctx context.Context, propertyID string) error {
	url := fmt.Sprintf("%s/delete-property/%s", c.ownerURL, propertyID)
	return c.doJSON(ctx, http.MethodDelete, url, "", nil, nil)
}

// SwitchPropertyStatus toggles a listing between active and inactive.
func (c *Client) SwitchPropertyStatus(ctx context.Context, propertyID string) error {
	url := fmt.Sprintf("%s/switch-status/%s", c.ownerURL, propertyID)
	return c.doJSON(ctx, http.MethodPost, url, "", nil, nil)
}

// AddRoom creates a room under a property.
func (c *Client) AddRoom(ctx context.Context, token, propertyID string, form RoomForm, images []FilePart) error {
	url := fmt.Sprintf("%s/add-room/%s", c.ownerURL, propertyID)
	return c.doMultipart(ctx, url, token, roomFields(form), images, nil)
}

// UpdateRoom replaces a room's fields.
func (c *Client) UpdateRoom(ctx context.Context, token, roomID string, form RoomForm, images []FilePart) error {
	url := fmt.Sprintf("%s/update-room/%s", c.ownerURL, roomID)
	return c.doMultipart(ctx, url, token, roomFields(form), images, nil)
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	url := fmt.Sprintf("%s/delete-room/%s", c.ownerURL, roomID)
	return c.doJSON(ctx, http.MethodDelete, url, "", nil, nil)
}

// SwitchRoomStatus toggles a room between active and inactive.
func (c *Client) SwitchRoomStatus(ctx context.Context, roomID string) error {
	url := fmt.Sprintf("%s/switch-room-status/%s", c.ownerURL, roomID)
	return c.doJSON(ctx, http.MethodPost, url, "", nil, nil)
}

// propertyFields flattens a PropertyForm into multipart fields the way the
// backend expects them: scalars as strings, amenities as a JSON array.
func propertyFields(form PropertyForm) map[string]string {
	amenities, _ := json.Marshal(form.Amenities)
	return map[string]string{
		"title":                form.Title,
		"address":              form.Address,
		"type":                 form.Type,
		"price_per_night":      strconv.FormatFloat(form.PricePerNight, 'f', -1, 64),
		"price_day_use":        strconv.FormatFloat(form.PriceDayUse, 'f', -1, 64),
		"max_rooms":            strconv.Itoa(form.MaxRooms),
		"amenities":            string(amenities),
		"is_day_use_available": strconv.FormatBool(form.DayUseAvailable),
		"status":               form.Status,
		"city":                 form.City,
		"province":             form.Province,
		"country":              form.Country,
	}
}

func roomFields(form RoomForm) map[string]string {
	amenities, _ := json.Marshal(form.Amenities)
	return map[string]string{
		"room_name":       form.RoomName,
		"room_type":       form.RoomType,
		"price_per_night": strconv.FormatFloat(form.PricePerNight, 'f', -1, 64),
		"total_rooms":     strconv.Itoa(form.TotalRooms),
		"max_guests":      strconv.Itoa(form.MaxGuests),
		"description":     form.Description,
		"amenities":       string(amenities),
		"is_active":       strconv.FormatBool(form.Active),
	}
}
