package models

// Visa statuses and choice sets mirror what the admin forms offer.
const (
	ApplicationStatusPending    = "Pending"
	ApplicationStatusProcessing = "Processing"
	ApplicationStatusApproved   = "Approved"
	ApplicationStatusRejected   = "Rejected"

	ApplicationTypeIndividual = "Individual"
	ApplicationTypeGroup      = "Group"
)

type Visa struct {
	ID                  int64      `json:"id"`
	Country             string     `json:"country"`
	Title               string     `json:"title"`
	EntryType           string     `json:"entry_type"`
	Validity            string     `json:"validity"`
	Duration            string     `json:"duration"`
	ProcessingTime      string     `json:"processing_time"`
	VisaType            string     `json:"visa_type,omitempty"`
	CostPrice           int64      `json:"cost_price"`
	ServiceCharge       int64      `json:"service_charge"`
	SellingPrice        int64      `json:"selling_price"`
	DocumentsRequired   StringList `json:"documents_required"`
	PhotographyRequired StringList `json:"photography_required"`
	CardImage           string     `json:"card_image,omitempty"`
	SupplierID          *int64     `json:"supplier"`
	IsActive            bool       `json:"is_active"`
	IsPopular           bool       `json:"is_popular"`
	CreatedAt           string     `json:"created_at,omitempty"`
}

type VisaApplication struct {
	ID              int64           `json:"id"`
	VisaID          int64           `json:"visa"`
	ApplicationType string          `json:"application_type"`
	InternalID      string          `json:"internal_id,omitempty"`
	GroupName       string          `json:"group_name,omitempty"`
	DepartureDate   string          `json:"departure_date"`
	ReturnDate      string          `json:"return_date"`
	TotalPrice      float64         `json:"total_price"`
	Status          string          `json:"status"`
	Applicants      []VisaApplicant `json:"applicants,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

type VisaApplicant struct {
	ID                  int64                 `json:"id"`
	ApplicationID       int64                 `json:"application"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name"`
	PassportNumber      string                `json:"passport_number"`
	Nationality         string                `json:"nationality"`
	Sex                 string                `json:"sex"`
	DOB                 string                `json:"dob"`
	PlaceOfBirth        string                `json:"place_of_birth"`
	PlaceOfIssue        string                `json:"place_of_issue"`
	MaritalStatus       string                `json:"marital_status"`
	Phone               string                `json:"phone,omitempty"`
	DateOfIssue         string                `json:"date_of_issue"`
	DateOfExpiry        string                `json:"date_of_expiry"`
	PassportFront       string                `json:"passport_front,omitempty"`
	Photo               string                `json:"photo,omitempty"`
	AdditionalDocuments []AdditionalDocument  `json:"additional_documents,omitempty"`
}

type AdditionalDocument struct {
	ID           int64  `json:"id"`
	ApplicantID  int64  `json:"applicant"`
	DocumentName string `json:"document_name,omitempty"`
	File         string `json:"file"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// ApplicantScalarFields is the allow-list sent when saving a single
// applicant's text fields. File fields and local preview state never ship.
var ApplicantScalarFields = []string{
	"first_name", "last_name", "passport_number", "nationality", "sex",
	"dob", "place_of_birth", "place_of_issue", "marital_status", "phone",
	"date_of_issue", "date_of_expiry",
}
