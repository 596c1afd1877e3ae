package views

import "github.com/south-ventures/tikang-front-owner/internal/owner"

// Room is one bookable room under a property.
type Room struct {
	RoomID        string   `json:"room_id"`
	RoomName      string   `json:"room_name"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"room_price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	TotalRooms    int      `json:"total_rooms"`
	Description   string   `json:"room_description,omitempty"`
	Amenities     []string `json:"room_amenities,omitempty"`
	Images        []string `json:"room_images,omitempty"`
	Active        bool     `json:"is_active"`
}

// Property is a listing with its rooms nested under it.
type Property struct {
	PropertyID      string   `json:"property_id"`
	Title           string   `json:"title"`
	Address         string   `json:"address"`
	Type            string   `json:"type"`
	City            string   `json:"city"`
	Province        string   `json:"province"`
	Country         string   `json:"country"`
	PricePerNight   float64  `json:"price_per_night"`
	PriceDayUse     float64  `json:"price_day_use,omitempty"`
	MaxRooms        int      `json:"max_rooms"`
	Amenities       []string `json:"amenities,omitempty"`
	DayUseAvailable bool     `json:"is_day_use_available"`
	Status          string   `json:"status"`
	Images          []string `json:"images,omitempty"`
	Rooms           []Room   `json:"rooms"`
}

// PropertyMetrics are the listing counters shown above the property table.
type PropertyMetrics struct {
	TotalProperties    int `json:"total_properties"`
	InactiveProperties int `json:"inactive_properties"`
	ActiveRooms        int `json:"active_rooms"`
	InactiveRooms      int `json:"inactive_rooms"`
}

// GroupProperties folds the flat property+room join into one record per
// distinct property id, rooms in input row order. A property whose rows all
// lack room fields still appears, with an empty room list.
func GroupProperties(rows []owner.PropertyRow) []Property {
	index := make(map[string]int)
	var properties []Property

	for _, row := range rows {
		i, ok := index[row.PropertyID]
		if !ok {
			i = len(properties)
			index[row.PropertyID] = i
			properties = append(properties, Property{
				PropertyID:      row.PropertyID,
				Title:           row.Title,
				Address:         row.Address,
				Type:            row.Type,
				City:            row.City,
				Province:        row.Province,
				Country:         row.Country,
				PricePerNight:   row.PricePerNight,
				PriceDayUse:     row.PriceDayUse,
				MaxRooms:        row.MaxRooms,
				Amenities:       row.Amenities,
				DayUseAvailable: row.DayUseAvailable,
				Status:          row.Status,
				Images:          row.Images,
				Rooms:           []Room{},
			})
		}
		if row.RoomID == "" {
			continue
		}
		properties[i].Rooms = append(properties[i].Rooms, Room{
			RoomID:        row.RoomID,
			RoomName:      row.RoomName,
			RoomType:      row.RoomType,
			PricePerNight: row.RoomPricePerNight,
			MaxGuests:     row.MaxGuests,
			TotalRooms:    row.TotalRooms,
			Description:   row.RoomDescription,
			Amenities:     row.RoomAmenities,
			Images:        row.RoomImages,
			Active:        row.RoomActive,
		})
	}
	return properties
}

// BuildPropertyMetrics counts listings and rooms by active state.
func BuildPropertyMetrics(rows []owner.PropertyRow) PropertyMetrics {
	properties := GroupProperties(rows)

	var metrics PropertyMetrics
	metrics.TotalProperties = len(properties)
	for _, p := range properties {
		if p.Status == "inactive" {
			metrics.InactiveProperties++
		}
	}
	for _, row := range rows {
		if row.RoomID == "" {
			continue
		}
		if row.RoomActive {
			metrics.ActiveRooms++
		} else {
			metrics.InactiveRooms++
		}
	}
	return metrics
}
