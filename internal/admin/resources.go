package admin

import (
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// List descriptors for the manage screens. Search fields mirror what each
// screen's search box scans.

func Countries() Resource[models.Country] {
	return Resource[models.Country]{
		Label:    "Country",
		Endpoint: "/api/countries/",
		ID:       func(c models.Country) int64 { return c.ID },
		SearchFields: func(c models.Country) []string {
			return []string{c.Name, c.Code}
		},
	}
}

func Visas() Resource[models.Visa] {
	return Resource[models.Visa]{
		Label:    "Visa",
		Endpoint: "/api/visas/",
		ID:       func(v models.Visa) int64 { return v.ID },
		SearchFields: func(v models.Visa) []string {
			return []string{v.Country, v.Title}
		},
	}
}

func VisaApplications() Resource[models.VisaApplication] {
	return Resource[models.VisaApplication]{
		Label:    "Visa application",
		Endpoint: "/api/visa-applications/",
		ID:       func(a models.VisaApplication) int64 { return a.ID },
		SearchFields: func(a models.VisaApplication) []string {
			return []string{a.GroupName, a.InternalID, a.Status}
		},
	}
}

func Destinations() Resource[models.Destination] {
	return Resource[models.Destination]{
		Label:    "Destination",
		Endpoint: "/api/destinations/",
		ID:       func(d models.Destination) int64 { return d.ID },
		SearchFields: func(d models.Destination) []string {
			return []string{d.Name, d.City, d.Country}
		},
		Defaults: func() models.Destination { return models.Destination{} },
		Validate: func(d models.Destination) error {
			if d.Name == "" {
				return domain.ValidationError{Field: "name", Msg: "Destination name is required"}
			}
			if d.Country == "" {
				return domain.ValidationError{Field: "country", Msg: "Country is required"}
			}
			return nil
		},
	}
}

func UmrahDestinations() Resource[models.UmrahDestination] {
	return Resource[models.UmrahDestination]{
		Label:    "Umrah destination",
		Endpoint: "/api/umrah-destinations/",
		ID:       func(d models.UmrahDestination) int64 { return d.ID },
		SearchFields: func(d models.UmrahDestination) []string {
			return []string{d.Name, d.Country}
		},
		Defaults: func() models.UmrahDestination { return models.UmrahDestination{} },
		Validate: func(d models.UmrahDestination) error {
			if d.Name == "" {
				return domain.ValidationError{Field: "name", Msg: "Name is required"}
			}
			return nil
		},
	}
}

func HolidayPackages() Resource[models.HolidayPackage] {
	return Resource[models.HolidayPackage]{
		Label:    "Package",
		Endpoint: "/api/packages/",
		ID:       func(p models.HolidayPackage) int64 { return p.ID },
		SearchFields: func(p models.HolidayPackage) []string {
			return []string{p.Title, p.Category, p.StartingCity}
		},
		Defaults: func() models.HolidayPackage {
			return models.HolidayPackage{Category: models.PackageCategoryDomestic, Days: 1, IsActive: true}
		},
		Validate: func(p models.HolidayPackage) error {
			if p.Title == "" {
				return domain.ValidationError{Field: "title", Msg: "Title is required"}
			}
			if p.Days <= 0 {
				return domain.ValidationError{Field: "days", Msg: "Days must be a positive number"}
			}
			if p.Price < 0 || p.OfferPrice < 0 {
				return domain.ValidationError{Field: "price", Msg: "Prices cannot be negative"}
			}
			return nil
		},
	}
}

func StartingCities() Resource[models.StartingCity] {
	return Resource[models.StartingCity]{
		Label:    "Starting city",
		Endpoint: "/api/starting-cities/",
		ID:       func(s models.StartingCity) int64 { return s.ID },
		SearchFields: func(s models.StartingCity) []string {
			return []string{s.Name, s.Region}
		},
		Defaults: func() models.StartingCity { return models.StartingCity{} },
		Validate: func(s models.StartingCity) error {
			if s.Name == "" {
				return domain.ValidationError{Field: "name", Msg: "City name is required"}
			}
			return nil
		},
	}
}

func ItineraryMasters() Resource[models.ItineraryMaster] {
	return Resource[models.ItineraryMaster]{
		Label:    "Itinerary master",
		Endpoint: "/api/itinerary-masters/",
		ID:       func(m models.ItineraryMaster) int64 { return m.ID },
		SearchFields: func(m models.ItineraryMaster) []string {
			return []string{m.Name, m.Title}
		},
		Defaults: func() models.ItineraryMaster { return models.ItineraryMaster{} },
		Validate: func(m models.ItineraryMaster) error {
			if m.Name == "" {
				return domain.ValidationError{Field: "name", Msg: "Template name is required"}
			}
			if m.Title == "" {
				return domain.ValidationError{Field: "title", Msg: "Display title is required"}
			}
			return nil
		},
	}
}

func Nationalities() Resource[models.Nationality] {
	return Resource[models.Nationality]{
		Label:    "Nationality",
		Endpoint: "/api/nationalities/",
		ID:       func(n models.Nationality) int64 { return n.ID },
		SearchFields: func(n models.Nationality) []string {
			return []string{n.Country, n.Nationality, n.Continent}
		},
		Defaults: func() models.Nationality { return models.Nationality{} },
		Validate: func(n models.Nationality) error {
			if n.Country == "" {
				return domain.ValidationError{Field: "country", Msg: "Country is required"}
			}
			if n.Nationality == "" {
				return domain.ValidationError{Field: "nationality", Msg: "Nationality is required"}
			}
			return nil
		},
	}
}

func Suppliers() Resource[models.Supplier] {
	return Resource[models.Supplier]{
		Label:    "Supplier",
		Endpoint: "/api/suppliers/",
		ID:       func(s models.Supplier) int64 { return s.ID },
		SearchFields: func(s models.Supplier) []string {
			return []string{s.CompanyName, s.ContactPerson, s.City, s.Country}
		},
		Defaults: func() models.Supplier { return models.Supplier{Services: models.StringList{}} },
		Validate: func(s models.Supplier) error {
			if s.CompanyName == "" {
				return domain.ValidationError{Field: "company_name", Msg: "Company name is required"}
			}
			return nil
		},
	}
}

func Users() Resource[models.AdminUser] {
	return Resource[models.AdminUser]{
		Label:    "User",
		Endpoint: "/api/users/",
		ID:       func(u models.AdminUser) int64 { return u.ID },
		SearchFields: func(u models.AdminUser) []string {
			return []string{u.Username, u.Email}
		},
		Defaults: func() models.AdminUser { return models.AdminUser{IsStaff: true} },
		Validate: validateUser,
	}
}

// Enquiry inboxes share one backend list; the manage screens derive their
// view by enquiry type before the search filter runs.

func Enquiries() Resource[models.Enquiry] {
	return Resource[models.Enquiry]{
		Label:    "Enquiry",
		Endpoint: "/api/enquiry-form/",
		ID:       func(e models.Enquiry) int64 { return e.ID },
		SearchFields: func(e models.Enquiry) []string {
			return []string{e.Name, e.Phone, e.Email, e.Destination}
		},
	}
}

func HolidayEnquiries() Resource[models.HolidayEnquiry] {
	return Resource[models.HolidayEnquiry]{
		Label:    "Holiday enquiry",
		Endpoint: "/api/holiday-form/",
		ID:       func(e models.HolidayEnquiry) int64 { return e.ID },
		SearchFields: func(e models.HolidayEnquiry) []string {
			return []string{e.FullName, e.Phone, e.Email, e.StartCity}
		},
	}
}

func UmrahEnquiries() Resource[models.UmrahEnquiry] {
	return Resource[models.UmrahEnquiry]{
		Label:    "Umrah enquiry",
		Endpoint: "/api/umrah-form/",
		ID:       func(e models.UmrahEnquiry) int64 { return e.ID },
		SearchFields: func(e models.UmrahEnquiry) []string {
			return []string{e.FullName, e.Phone, e.Email, e.StartCity}
		},
	}
}

// FilterEnquiriesByType narrows the shared enquiry list to one inbox tab.
func FilterEnquiriesByType(items []models.Enquiry, enquiryType string) []models.Enquiry {
	out := make([]models.Enquiry, 0, len(items))
	for _, e := range items {
		if e.EnquiryType == enquiryType {
			out = append(out, e)
		}
	}
	return out
}

func validateUser(u models.AdminUser) error {
	if u.Username == "" {
		return domain.ValidationError{Field: "username", Msg: "Username is required"}
	}
	if !utils.ValidUsername(u.Username) {
		return domain.ValidationError{Field: "username", Msg: "Username may contain only letters, digits and @/./+/-/_"}
	}
	if u.ID == 0 && len(u.Password) < 8 {
		return domain.ValidationError{Field: "password", Msg: "Password must be at least 8 characters"}
	}
	if u.ID != 0 && u.Password != "" && len(u.Password) < 8 {
		return domain.ValidationError{Field: "password", Msg: "Password must be at least 8 characters"}
	}
	return nil
}
