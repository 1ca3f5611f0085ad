package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable summary of a visa application.
type DocsService struct {
	ApplicationRepo repositories.ApplicationRepository
	VisaRepo        repositories.VisaRepository
	RequestID       string
	Loader          func(int64) (applicationDocData, error)
}

type applicationDocData struct {
	ApplicationID   int64
	InternalID      string
	ApplicationType string
	GroupName       string
	VisaCountry     string
	VisaTitle       string
	DepartureDate   string
	ReturnDate      string
	TotalPrice      float64
	Status          string
	Applicants      []applicantDocRow
}

type applicantDocRow struct {
	Name           string
	PassportNumber string
	Nationality    string
	DOB            string
	DateOfExpiry   string
	Documents      int
}

func (s DocsService) GenerateSummary(applicationID int64) ([]byte, string, error) {
	data, err := s.loadApplicationDocData(applicationID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_summary", fmt.Sprintf("application_id=%d", applicationID))
	return buildSummaryPDF(data)
}

func (s DocsService) loadApplicationDocData(applicationID int64) (applicationDocData, error) {
	if s.Loader != nil {
		return s.Loader(applicationID)
	}
	var out applicationDocData
	app, err := s.ApplicationRepo.GetByID(applicationID)
	if err != nil {
		return out, err
	}
	out.ApplicationID = app.ID
	out.InternalID = app.InternalID
	out.ApplicationType = app.ApplicationType
	out.GroupName = app.GroupName
	out.DepartureDate = app.DepartureDate
	out.ReturnDate = app.ReturnDate
	out.TotalPrice = app.TotalPrice
	out.Status = app.Status

	if visa, err := s.VisaRepo.GetByID(app.VisaID); err == nil {
		out.VisaCountry = visa.Country
		out.VisaTitle = visa.Title
	}

	for _, ap := range app.Applicants {
		out.Applicants = append(out.Applicants, applicantDocRow{
			Name:           strings.TrimSpace(ap.FirstName + " " + ap.LastName),
			PassportNumber: ap.PassportNumber,
			Nationality:    ap.Nationality,
			DOB:            ap.DOB,
			DateOfExpiry:   ap.DateOfExpiry,
			Documents:      len(ap.AdditionalDocuments),
		})
	}
	return out, nil
}

func buildSummaryPDF(d applicationDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Visa Application Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VISA APPLICATION SUMMARY")
	pdf.Ln(12)

	ref := d.InternalID
	if strings.TrimSpace(ref) == "" {
		ref = fmt.Sprintf("APP-%d", d.ApplicationID)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", ref),
		fmt.Sprintf("Visa           : %s - %s", docSafe(d.VisaCountry, "-"), docSafe(d.VisaTitle, "-")),
		fmt.Sprintf("Type           : %s", docSafe(d.ApplicationType, "-")),
		fmt.Sprintf("Group          : %s", docSafe(d.GroupName, "-")),
		fmt.Sprintf("Departure      : %s", docSafe(d.DepartureDate, "-")),
		fmt.Sprintf("Return         : %s", docSafe(d.ReturnDate, "-")),
		fmt.Sprintf("Status         : %s", docSafe(d.Status, "-")),
		fmt.Sprintf("Total Price    : %.2f", d.TotalPrice),
		fmt.Sprintf("Generated      : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Applicants (%d)", len(d.Applicants)))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Applicants) == 0 {
		pdf.Cell(0, 6, "No applicants recorded yet.")
		pdf.Ln(6)
	}
	for i, ap := range d.Applicants {
		row := fmt.Sprintf("%d) %s | Passport %s (%s) | DOB %s | Expiry %s | %d extra document(s)",
			i+1, docSafe(ap.Name, "-"), docSafe(ap.PassportNumber, "-"),
			docSafe(ap.Nationality, "-"), docSafe(ap.DOB, "-"),
			docSafe(ap.DateOfExpiry, "-"), ap.Documents)
		pdf.MultiCell(0, 6, row, "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This summary is for internal processing only and is not a visa document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("APPLICATION_%d_%s.pdf", d.ApplicationID, docFilenamePart(ref))
	return buf.Bytes(), filename, nil
}

func docSafe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func docFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
