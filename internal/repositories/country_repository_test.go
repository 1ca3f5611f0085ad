package repositories

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCountryListAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CountryRepository{DB: db}

	mock.ExpectQuery("SELECT id, name, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "header_image", "video"}).
			AddRow(1, "Japan", "JP", "uploads/jp.png", "").
			AddRow(2, "Kenya", "", "", ""))

	out, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Japan" || out[0].HeaderImage != "uploads/jp.png" {
		t.Fatalf("list = %+v", out)
	}

	mock.ExpectQuery("FROM countries WHERE id").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "header_image", "video"}).
			AddRow(2, "Kenya", "", "", ""))

	c, err := repo.GetByID(2)
	if err != nil || c.Name != "Kenya" {
		t.Fatalf("get = %+v, %v", c, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM countries WHERE id").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "header_image", "video"}))

	_, err = CountryRepository{DB: db}.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCountryUpdateWritesClearedFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// a cleared header image arrives as "" and must be stored as NULL
	mock.ExpectExec("UPDATE countries SET").
		WithArgs("Japan", "JP", nil, nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = CountryRepository{DB: db}.Update(models.Country{ID: 1, Name: "Japan", Code: "JP"})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountryDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM countries").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = CountryRepository{DB: db}.Delete(5)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
