package services

import (
	"strings"
	"testing"
)

func TestDocsServiceGenerateSummary(t *testing.T) {
	loader := func(id int64) (applicationDocData, error) {
		return applicationDocData{
			ApplicationID:   id,
			InternalID:      "GH-2025-0042",
			ApplicationType: "Group",
			GroupName:       "Spring Tour",
			VisaCountry:     "UAE",
			VisaTitle:       "Tourist Visa",
			DepartureDate:   "2025-09-01",
			ReturnDate:      "2025-09-15",
			TotalPrice:      1200,
			Status:          "Processing",
			Applicants: []applicantDocRow{
				{Name: "Amira Khan", PassportNumber: "P1234567", Nationality: "Indian", DOB: "1990-04-01", DateOfExpiry: "2030-01-01", Documents: 2},
				{Name: "Bilal Khan", PassportNumber: "P7654321", Nationality: "Indian", DOB: "1988-11-12", DateOfExpiry: "2029-06-30"},
			},
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateSummary(42)
	if err != nil {
		t.Fatalf("GenerateSummary returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateSummary returned empty data")
	}
	if !strings.HasPrefix(filename, "APPLICATION_42_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestDocsServiceSummaryNoApplicants(t *testing.T) {
	loader := func(id int64) (applicationDocData, error) {
		return applicationDocData{ApplicationID: id, Status: "Pending"}, nil
	}
	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateSummary(7)
	if err != nil {
		t.Fatalf("GenerateSummary returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("empty output for applicant-less application")
	}
}
