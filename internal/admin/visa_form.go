package admin

import (
	"strconv"

	"backoffice/internal/apiclient"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// VisaForm is the add/edit model for visas. Selling price is derived, never
// typed: it is recomputed whenever cost price or service charge changes and
// the submitted value is what the server stores.
type VisaForm struct {
	ID                  int64
	Country             string
	Title               string
	EntryType           string
	Validity            string
	Duration            string
	ProcessingTime      string
	VisaType            string
	CostPrice           int64
	ServiceCharge       int64
	SellingPrice        int64
	DocumentsRequired   models.StringList
	PhotographyRequired models.StringList
	CardImage           FileField
	SupplierID          *int64
	IsActive            bool
	IsPopular           bool
}

func VisaFormFromModel(v models.Visa) VisaForm {
	return VisaForm{
		ID:                  v.ID,
		Country:             v.Country,
		Title:               v.Title,
		EntryType:           v.EntryType,
		Validity:            v.Validity,
		Duration:            v.Duration,
		ProcessingTime:      v.ProcessingTime,
		VisaType:            v.VisaType,
		CostPrice:           v.CostPrice,
		ServiceCharge:       v.ServiceCharge,
		SellingPrice:        v.SellingPrice,
		DocumentsRequired:   v.DocumentsRequired,
		PhotographyRequired: v.PhotographyRequired,
		CardImage:           FileField{Existing: v.CardImage},
		SupplierID:          v.SupplierID,
		IsActive:            v.IsActive,
		IsPopular:           v.IsPopular,
	}
}

// SetCostPrice updates cost price and recomputes the selling price.
func (f *VisaForm) SetCostPrice(v int64) {
	f.CostPrice = v
	f.recompute()
}

// SetServiceCharge updates the service charge and recomputes.
func (f *VisaForm) SetServiceCharge(v int64) {
	f.ServiceCharge = v
	f.recompute()
}

func (f *VisaForm) recompute() {
	f.SellingPrice = f.CostPrice + f.ServiceCharge
}

func VisaFormDefaults() VisaForm {
	return VisaForm{
		EntryType:         "Single-Entry Visa",
		Validity:          "30 days",
		Duration:          "30 days",
		DocumentsRequired: models.StringList{"Passport Front", "Photo"},
		IsActive:          true,
	}
}

func VisaFormResource() Resource[VisaForm] {
	return Resource[VisaForm]{
		Label:    "Visa",
		Endpoint: "/api/visas/",
		ID:       func(f VisaForm) int64 { return f.ID },
		Defaults: VisaFormDefaults,
		Validate: ValidateVisaForm,
		EncodeForm: func(f VisaForm) (*apiclient.Form, error) {
			form := &apiclient.Form{}
			form.Set("country", f.Country)
			form.Set("title", f.Title)
			form.Set("entry_type", f.EntryType)
			form.Set("validity", f.Validity)
			form.Set("duration", f.Duration)
			form.Set("processing_time", f.ProcessingTime)
			if f.VisaType != "" {
				form.Set("visa_type", f.VisaType)
			}
			form.Set("cost_price", strconv.FormatInt(f.CostPrice, 10))
			form.Set("service_charge", strconv.FormatInt(f.ServiceCharge, 10))
			form.Set("selling_price", strconv.FormatInt(f.SellingPrice, 10))
			form.Set("documents_required", f.DocumentsRequired.Join())
			form.Set("photography_required", f.PhotographyRequired.Join())
			form.Set("is_active", boolField(f.IsActive))
			form.Set("is_popular", boolField(f.IsPopular))
			if f.SupplierID != nil {
				form.Set("supplier", strconv.FormatInt(*f.SupplierID, 10))
			}
			f.CardImage.encode(form, "card_image")
			return form, nil
		},
	}
}

// ValidateVisaForm enforces the pre-flight rules: required fields, numeric
// positivity, and the popular-needs-card-image invariant. A failure here
// means no network call happens.
func ValidateVisaForm(f VisaForm) error {
	if f.Country == "" {
		return domain.ValidationError{Field: "country", Msg: "Country is required"}
	}
	if f.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "Title is required"}
	}
	if f.CostPrice < 0 || f.ServiceCharge < 0 {
		return domain.ValidationError{Field: "cost_price", Msg: "Prices cannot be negative"}
	}
	if f.IsPopular && !f.CardImage.Present() {
		return domain.ValidationError{Field: "is_popular", Msg: "A card image is required before a visa can be marked popular"}
	}
	return nil
}

func (f *VisaForm) UnmarshalJSON(data []byte) error {
	var v models.Visa
	if err := unmarshalModel(data, &v); err != nil {
		return err
	}
	*f = VisaFormFromModel(v)
	return nil
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
