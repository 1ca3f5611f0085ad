package models

const (
	PackageCategoryDomestic      = "Domestic"
	PackageCategoryInternational = "International"
	PackageCategoryUmrah         = "Umrah"
)

type HolidayPackage struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	StartingCity string `json:"starting_city"`
	Days         int    `json:"days"`
	StartDate    string `json:"start_date,omitempty"`
	Price        int64  `json:"price"`
	OfferPrice   int64  `json:"Offer_price"`
	GroupSize    int    `json:"group_size,omitempty"`
	WithFlight   bool   `json:"with_flight"`
	HeaderImage  string `json:"header_image,omitempty"`
	CardImage    string `json:"card_image,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// ItineraryDay is one row of a package's day-by-day plan. DayNumber is
// recomputed from visible row order, never hand-assigned.
type ItineraryDay struct {
	ID             int64  `json:"id"`
	PackageID      int64  `json:"package"`
	MasterTemplate *int64 `json:"master_template"`
	DayNumber      int    `json:"day_number"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image,omitempty"`
}
