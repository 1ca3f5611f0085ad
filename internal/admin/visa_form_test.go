package admin

import (
	"testing"

	"backoffice/internal/domain"
)

func TestSellingPriceIsDerived(t *testing.T) {
	f := VisaFormDefaults()
	f.SetCostPrice(300)
	f.SetServiceCharge(50)
	if f.SellingPrice != 350 {
		t.Fatalf("selling price = %d, want 350", f.SellingPrice)
	}
	f.SetServiceCharge(0)
	if f.SellingPrice != 300 {
		t.Fatalf("selling price = %d, want 300 after charge reset", f.SellingPrice)
	}
}

func TestVisaFormDefaults(t *testing.T) {
	f := VisaFormDefaults()
	if f.EntryType != "Single-Entry Visa" || f.Validity != "30 days" || f.Duration != "30 days" {
		t.Fatalf("defaults wrong: %+v", f)
	}
	if !f.IsActive {
		t.Fatalf("new visas default to active")
	}
	if f.DocumentsRequired.Join() != "Passport Front, Photo" {
		t.Fatalf("default documents = %q", f.DocumentsRequired.Join())
	}
}

func TestValidateVisaFormRequiredFields(t *testing.T) {
	f := VisaFormDefaults()
	if err := ValidateVisaForm(f); err == nil {
		t.Fatalf("missing country/title must fail")
	}
	f.Country = "UAE"
	f.Title = "Tourist Visa"
	if err := ValidateVisaForm(f); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestValidateVisaFormPopularNeedsCardImage(t *testing.T) {
	f := VisaFormDefaults()
	f.Country = "UAE"
	f.Title = "Tourist Visa"
	f.IsPopular = true

	err := ValidateVisaForm(f)
	if err == nil {
		t.Fatalf("popular without card image must fail before any network call")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("error type = %T", err)
	}

	f.CardImage.Pick("card.png", []byte{1})
	if err := ValidateVisaForm(f); err != nil {
		t.Fatalf("popular with staged image rejected: %v", err)
	}

	// clearing the stored image while popular re-triggers the guard
	f.CardImage = FileField{Existing: "uploads/card.png"}
	f.CardImage.Remove()
	if err := ValidateVisaForm(f); err == nil {
		t.Fatalf("cleared image with popular set must fail")
	}
}

func TestVisaFormEncodeSendsDerivedPrice(t *testing.T) {
	f := VisaFormDefaults()
	f.Country = "UAE"
	f.Title = "Tourist Visa"
	f.SetCostPrice(300)
	f.SetServiceCharge(50)

	form, err := VisaFormResource().EncodeForm(f)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if form.Value("selling_price") != "350" {
		t.Fatalf("selling_price on the wire = %q", form.Value("selling_price"))
	}
	if form.Value("documents_required") != "Passport Front, Photo" {
		t.Fatalf("documents_required = %q", form.Value("documents_required"))
	}
	if form.Has("supplier") {
		t.Fatalf("nil supplier must stay off the wire")
	}
	if form.Has("card_image") {
		t.Fatalf("untouched card image must stay off the wire")
	}
}
