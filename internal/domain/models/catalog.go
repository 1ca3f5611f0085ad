package models

// Country is the master record visas hang off. Name is unique.
type Country struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	HeaderImage string `json:"header_image,omitempty"`
	Video       string `json:"video,omitempty"`
}

type Destination struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country"`
}

type StartingCity struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

type UmrahDestination struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Nationality struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	Nationality string `json:"nationality"`
	Continent   string `json:"continent"`
}

type Supplier struct {
	ID            int64      `json:"id"`
	CompanyName   string     `json:"company_name"`
	Services      StringList `json:"services"`
	AddressLine1  string     `json:"address_line1,omitempty"`
	AddressLine2  string     `json:"address_line2,omitempty"`
	City          string     `json:"city"`
	State         string     `json:"state,omitempty"`
	Country       string     `json:"country"`
	ContactNo     string     `json:"contact_no"`
	ContactPerson string     `json:"contact_person"`
	CreatedAt     string     `json:"created_at,omitempty"`
}

// ItineraryMaster is a reusable day template. A nil DestinationID means the
// template is global rather than tied to one destination.
type ItineraryMaster struct {
	ID            int64  `json:"id"`
	DestinationID *int64 `json:"destination"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image,omitempty"`
}
