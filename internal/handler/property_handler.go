package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/session"
	"github.com/south-ventures/tikang-front-owner/internal/views"
)

// PropertyAPI defines the backend listing operations used by PropertyHandler.
type PropertyAPI interface {
	PropertiesByLessor(ctx context.Context, lessorID string) ([]owner.PropertyRow, error)
	AddProperty(ctx context.Context, token string, form owner.PropertyForm, images []owner.FilePart) error
	UpdateProperty(ctx context.Context, token, propertyID string, form owner.PropertyForm, images []owner.FilePart) error
	DeleteProperty(ctx context.Context, propertyID string) error
	SwitchPropertyStatus(ctx context.Context, propertyID string) error
	AddRoom(ctx context.Context, token, propertyID string, form owner.RoomForm, images []owner.FilePart) error
	UpdateRoom(ctx context.Context, token, roomID string, form owner.RoomForm, images []owner.FilePart) error
	DeleteRoom(ctx context.Context, roomID string) error
	SwitchRoomStatus(ctx context.Context, roomID string) error
}

type PropertyHandler struct {
	api      PropertyAPI
	sessions *session.Manager
}

func NewPropertyHandler(api PropertyAPI, sessions *session.Manager) *PropertyHandler {
	return &PropertyHandler{api: api, sessions: sessions}
}

// PropertyFormRequest mirrors the add/update-property form.
type PropertyFormRequest struct {
	Title           string `form:"title" validate:"required"`
	Address         string `form:"address" validate:"required"`
	Type            string `form:"type" validate:"required"`
	PricePerNight   string `form:"price_per_night" validate:"required"`
	PriceDayUse     string `form:"price_day_use"`
	MaxRooms        string `form:"max_rooms" validate:"required"`
	Amenities       string `form:"amenities"`
	DayUseAvailable string `form:"is_day_use_available"`
	Status          string `form:"status"`
	City            string `form:"city" validate:"required"`
	Province        string `form:"province" validate:"required"`
	Country         string `form:"country" validate:"required"`
}

// RoomFormRequest mirrors the add/update-room form.
type RoomFormRequest struct {
	RoomName      string `form:"room_name" validate:"required"`
	RoomType      string `form:"room_type" validate:"required"`
	PricePerNight string `form:"room_price_per_night" validate:"required"`
	MaxGuests     string `form:"max_guests" validate:"required"`
	TotalRooms    string `form:"total_rooms" validate:"required"`
	Description   string `form:"room_description"`
	Amenities     string `form:"room_amenities"`
	Active        string `form:"is_active"`
}

// List returns the owner's listings as a property tree with room counts.
func (h *PropertyHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	rows, err := h.api.PropertiesByLessor(c.Request.Context(), user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load properties")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"properties": views.GroupProperties(rows),
		"metrics":    views.BuildPropertyMetrics(rows),
	})
}

func (h *PropertyHandler) Create(c *gin.Context) {
	form, images, ok := h.bindPropertyForm(c)
	if !ok {
		return
	}
	defer closeParts(images)
	token, _ := h.sessions.Token()
	if err := h.api.AddProperty(c.Request.Context(), token, form, images); err != nil {
		respondMutationError(c, err, "Failed to add property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property added"})
}

func (h *PropertyHandler) Update(c *gin.Context) {
	form, images, ok := h.bindPropertyForm(c)
	if !ok {
		return
	}
	defer closeParts(images)
	token, _ := h.sessions.Token()
	if err := h.api.UpdateProperty(c.Request.Context(), token, c.Param("propertyId"), form, images); err != nil {
		respondMutationError(c, err, "Failed to update property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property updated"})
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.api.DeleteProperty(c.Request.Context(), c.Param("propertyId")); err != nil {
		respondMutationError(c, err, "Failed to delete property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

func (h *PropertyHandler) SwitchStatus(c *gin.Context) {
	if err := h.api.SwitchPropertyStatus(c.Request.Context(), c.Param("propertyId")); err != nil {
		respondMutationError(c, err, "Failed to switch property status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property status switched"})
}

func (h *PropertyHandler) CreateRoom(c *gin.Context) {
	form, images, ok := h.bindRoomForm(c)
	if !ok {
		return
	}
	defer closeParts(images)
	token, _ := h.sessions.Token()
	if err := h.api.AddRoom(c.Request.Context(), token, c.Param("propertyId"), form, images); err != nil {
		respondMutationError(c, err, "Failed to add room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room added"})
}

func (h *PropertyHandler) UpdateRoom(c *gin.Context) {
	form, images, ok := h.bindRoomForm(c)
	if !ok {
		return
	}
	defer closeParts(images)
	token, _ := h.sessions.Token()
	if err := h.api.UpdateRoom(c.Request.Context(), token, c.Param("roomId"), form, images); err != nil {
		respondMutationError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated"})
}

func (h *PropertyHandler) DeleteRoom(c *gin.Context) {
	if err := h.api.DeleteRoom(c.Request.Context(), c.Param("roomId")); err != nil {
		respondMutationError(c, err, "Failed to delete room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

func (h *PropertyHandler) SwitchRoomStatus(c *gin.Context) {
	if err := h.api.SwitchRoomStatus(c.Request.Context(), c.Param("roomId")); err != nil {
		respondMutationError(c, err, "Failed to switch room status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room status switched"})
}

func (h *PropertyHandler) bindPropertyForm(c *gin.Context) (owner.PropertyForm, []owner.FilePart, bool) {
	var req PropertyFormRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid form data")
		return owner.PropertyForm{}, nil, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return owner.PropertyForm{}, nil, false
	}

	price, err := strconv.ParseFloat(req.PricePerNight, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid price per night")
		return owner.PropertyForm{}, nil, false
	}
	maxRooms, err := strconv.Atoi(req.MaxRooms)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid max rooms")
		return owner.PropertyForm{}, nil, false
	}
	dayUsePrice, _ := strconv.ParseFloat(req.PriceDayUse, 64)

	status := req.Status
	if status == "" {
		status = "active"
	}

	form := owner.PropertyForm{
		Title:           req.Title,
		Address:         req.Address,
		Type:            req.Type,
		PricePerNight:   price,
		PriceDayUse:     dayUsePrice,
		MaxRooms:        maxRooms,
		Amenities:       splitAmenities(req.Amenities),
		DayUseAvailable: req.DayUseAvailable == "true",
		Status:          status,
		City:            req.City,
		Province:        req.Province,
		Country:         req.Country,
	}

	images, ok := openImages(c)
	if !ok {
		return owner.PropertyForm{}, nil, false
	}
	return form, images, true
}

func (h *PropertyHandler) bindRoomForm(c *gin.Context) (owner.RoomForm, []owner.FilePart, bool) {
	var req RoomFormRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid form data")
		return owner.RoomForm{}, nil, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return owner.RoomForm{}, nil, false
	}

	price, err := strconv.ParseFloat(req.PricePerNight, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid price per night")
		return owner.RoomForm{}, nil, false
	}
	maxGuests, err := strconv.Atoi(req.MaxGuests)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid max guests")
		return owner.RoomForm{}, nil, false
	}
	totalRooms, err := strconv.Atoi(req.TotalRooms)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid total rooms")
		return owner.RoomForm{}, nil, false
	}

	form := owner.RoomForm{
		RoomName:      req.RoomName,
		RoomType:      req.RoomType,
		PricePerNight: price,
		MaxGuests:     maxGuests,
		TotalRooms:    totalRooms,
		Description:   req.Description,
		Amenities:     splitAmenities(req.Amenities),
		Active:        req.Active != "false",
	}

	images, ok := openImages(c)
	if !ok {
		return owner.RoomForm{}, nil, false
	}
	return form, images, true
}

// splitAmenities turns the comma-separated form value into a clean list.
func splitAmenities(raw string) []string {
	var out []string
	for _, a := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// openImages collects the uploaded image parts. Callers release them with
// closeParts once the backend call has consumed them.
func openImages(c *gin.Context) ([]owner.FilePart, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all is fine: updates may carry fields only.
		return nil, true
	}
	var parts []owner.FilePart
	for _, header := range form.File["images"] {
		file, err := openUpload(header)
		if err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "Failed to read uploaded image")
			return nil, false
		}
		parts = append(parts, file)
	}
	return parts, true
}

func openUpload(header *multipart.FileHeader) (owner.FilePart, error) {
	file, err := header.Open()
	if err != nil {
		return owner.FilePart{}, err
	}
	return owner.FilePart{Field: "images", Filename: header.Filename, Content: file}, nil
}
