package repositories

import (
	"testing"

	"backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var visaTestColumns = []string{
	"id", "country", "title", "entry_type", "validity", "duration",
	"processing_time", "visa_type", "cost_price", "service_charge", "selling_price",
	"documents_required", "photography_required", "card_image", "supplier_id",
	"is_active", "is_popular", "created_at",
}

func TestVisaListFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM visas WHERE is_active = 1 AND LOWER\(country\) = LOWER\(\?\) ORDER BY country ASC, selling_price ASC`).
		WithArgs("UAE").
		WillReturnRows(sqlmock.NewRows(visaTestColumns).
			AddRow(1, "UAE", "Tourist Visa", "Single", "60 Days", "30 Days",
				"3-5 Days", "eVisa", 200.0, 50.0, 250.0,
				"Passport Front, Photo", "Photo", "", nil, true, false, "2025-01-01 10:00:00"))

	out, err := VisaRepository{DB: db}.List(true, "UAE")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("rows = %d", len(out))
	}
	v := out[0]
	if len(v.DocumentsRequired) != 2 || v.DocumentsRequired[1] != "Photo" {
		t.Fatalf("documents not split: %+v", v.DocumentsRequired)
	}
	if v.SupplierID != nil {
		t.Fatalf("NULL supplier scanned as %v", *v.SupplierID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVisaGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM visas WHERE id").WithArgs(int64(44)).
		WillReturnRows(sqlmock.NewRows(visaTestColumns))

	_, err = VisaRepository{DB: db}.GetByID(44)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestVisaSetFlagsSingleColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE visas SET is_active=\? WHERE id=\?`).
		WithArgs(false, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = VisaRepository{DB: db}.SetFlags(3, map[string]bool{"is_active": false})
	if err != nil {
		t.Fatalf("set flags error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVisaSetFlagsRejectsUnknownField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	err = VisaRepository{DB: db}.SetFlags(3, map[string]bool{"is_admin": true})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unknown field must not touch the database: %v", err)
	}
}

func TestVisaSetFlagsUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE visas SET is_popular=\? WHERE id=\?`).
		WithArgs(true, int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = VisaRepository{DB: db}.SetFlags(77, map[string]bool{"is_popular": true})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
