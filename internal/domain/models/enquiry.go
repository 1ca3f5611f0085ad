package models

// Enquiry types share one table; the manage screens filter on EnquiryType.
const (
	EnquiryTypeGeneral = "General"
	EnquiryTypeCab     = "Cab"
	EnquiryTypeCruise  = "Cruise"
	EnquiryTypeHotel   = "Hotel"
)

type Enquiry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Destination string `json:"destination,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	EnquiryType string `json:"enquiry_type"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// HolidayEnquiry carries the full trip request from the public holidays form.
type HolidayEnquiry struct {
	ID          int64  `json:"id"`
	PackageType string `json:"package_type,omitempty"`
	StartCity   string `json:"start_city"`
	Nationality string `json:"nationality"`
	TravelDate  string `json:"travel_date"`
	Rooms       int    `json:"rooms"`
	StarRating  string `json:"star_rating"`
	HolidayType string `json:"holiday_type"`
	Budget      string `json:"budget,omitempty"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Nights      int    `json:"nights"`
	RoomType    string `json:"room_type,omitempty"`
	MealPlan    string `json:"meal_plan,omitempty"`
	Message     string `json:"message,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type UmrahEnquiry struct {
	ID          int64  `json:"id"`
	PackageType string `json:"package_type,omitempty"`
	StartCity   string `json:"start_city"`
	Nationality string `json:"nationality"`
	TravelDate  string `json:"travel_date"`
	Rooms       int    `json:"rooms"`
	StarRating  string `json:"star_rating"`
	Budget      string `json:"budget,omitempty"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Infants     int    `json:"infants"`
	Message     string `json:"message,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
