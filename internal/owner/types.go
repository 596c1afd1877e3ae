package owner

import "time"

// Booking statuses as the backend reports them.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// UserProfile is the owner's account as returned by the /me endpoint.
// Verified is set by the session layer: false when the fields were decoded
// from the token locally, true once the backend confirmed them. Unverified
// data is a display hint only and must not drive balance or role decisions.
type UserProfile struct {
	UserID         string   `json:"user_id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	UserType       string   `json:"user_type,omitempty"`
	SecondaryRoles []string `json:"secondary_roles,omitempty"`
	TikangCash     float64  `json:"tikang_cash"`
	GcashQR        string   `json:"gcash_qr,omitempty"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	Verified       bool     `json:"-"`
}

// Booking is a stay reservation against one of the owner's listings.
// Read-only to this layer; status changes go through dedicated endpoints.
type Booking struct {
	BookingID     string     `json:"booking_id"`
	FullName      string     `json:"full_name"`
	GuestUserID   string     `json:"customer_user_id"`
	Title         string     `json:"title"`
	RoomName      string     `json:"room_name,omitempty"`
	RoomType      string     `json:"room_type,omitempty"`
	City          string     `json:"city,omitempty"`
	Province      string     `json:"province,omitempty"`
	Country       string     `json:"country,omitempty"`
	StayType      string     `json:"stay_type,omitempty"`
	NumAdults     int        `json:"num_adults"`
	NumChildren   int        `json:"num_children"`
	TotalPrice    float64    `json:"total_price"`
	CheckIn       time.Time  `json:"check_in_date"`
	CheckOut      time.Time  `json:"check_out_date"`
	BookingStatus string     `json:"booking_status"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	GcashReceipt  string     `json:"gcash_receipt,omitempty"`
	CancelledDate *time.Time `json:"cancelled_date,omitempty"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
	ThumbnailURL  []string   `json:"thumbnail_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
}

// GuestBooking is one row of the full-booking-info join: a booking joined
// with the guest's contact details and the property it was made against.
type GuestBooking struct {
	BookingID        string    `json:"booking_id"`
	GuestUserID      string    `json:"customer_user_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone,omitempty"`
	CustomerAddress  string    `json:"customer_address,omitempty"`
	CustomerAge      int       `json:"customer_age,omitempty"`
	PropertyTitle    string    `json:"property_title"`
	PropertyCity     string    `json:"property_city,omitempty"`
	PropertyProvince string    `json:"property_province,omitempty"`
	PropertyCountry  string    `json:"property_country,omitempty"`
	StayType         string    `json:"stay_type,omitempty"`
	CheckIn          time.Time `json:"check_in_date"`
	CheckOut         time.Time `json:"check_out_date"`
	TotalPrice       float64   `json:"total_price"`
	BookingStatus    string    `json:"booking_status"`
	PaymentStatus    string    `json:"payment_status,omitempty"`
}

// PropertyRow is one flat row of the properties-by-lessor join. Every row
// carries the property fields; the room fields are empty for a property that
// has no rooms yet.
type PropertyRow struct {
	PropertyID        string   `json:"property_id"`
	Title             string   `json:"title"`
	Address           string   `json:"address"`
	Type              string   `json:"type"`
	City              string   `json:"city"`
	Province          string   `json:"province"`
	Country           string   `json:"country"`
	PricePerNight     float64  `json:"price_per_night"`
	PriceDayUse       float64  `json:"price_day_use,omitempty"`
	MaxRooms          int      `json:"max_rooms"`
	Amenities         []string `json:"amenities,omitempty"`
	DayUseAvailable   bool     `json:"is_day_use_available"`
	Status            string   `json:"status"`
	Images            []string `json:"images,omitempty"`
	RoomID            string   `json:"room_id,omitempty"`
	RoomName          string   `json:"room_name,omitempty"`
	RoomType          string   `json:"room_type,omitempty"`
	RoomPricePerNight float64  `json:"room_price_per_night,omitempty"`
	MaxGuests         int      `json:"max_guests,omitempty"`
	TotalRooms        int      `json:"total_rooms,omitempty"`
	RoomDescription   string   `json:"room_description,omitempty"`
	RoomAmenities     []string `json:"room_amenities,omitempty"`
	RoomImages        []string `json:"room_images,omitempty"`
	RoomActive        bool     `json:"is_active,omitempty"`
}

// Message is a single message exchanged with a guest, optionally carrying
// the listing it was sent about.
type Message struct {
	MessageID     string    `json:"message_id"`
	SenderID      string    `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	SenderType    string    `json:"sender_type,omitempty"`
	RecipientID   string    `json:"recipient_id"`
	RecipientName string    `json:"recipient_name"`
	RecipientType string    `json:"recipient_type,omitempty"`
	Title         string    `json:"title"`
	Body          string    `json:"message"`
	PropertyID    string    `json:"property_id,omitempty"`
	PropertyTitle string    `json:"property_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletTransaction is a pending deposit or withdrawal of Tikang Cash.
type WalletTransaction struct {
	TransactionID string    `json:"transaction_id,omitempty"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// DashboardData is the raw dashboard payload: every booking for the owner,
// from which the summary view is derived.
type DashboardData struct {
	AllBookings []Booking `json:"allBookings"`
}

// NewEntry is the change marker returned by the polling endpoint.
type NewEntry struct {
	New       bool  `json:"new"`
	Timestamp int64 `json:"timestamp"`
}
