package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const supplierColumns = `
	id, company_name, COALESCE(services,''), COALESCE(address_line1,''), COALESCE(address_line2,''),
	COALESCE(city,''), COALESCE(state,''), COALESCE(country,''),
	COALESCE(contact_no,''), COALESCE(contact_person,''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanSupplier(row interface{ Scan(...any) error }) (models.Supplier, error) {
	var (
		s        models.Supplier
		services string
	)
	err := row.Scan(&s.ID, &s.CompanyName, &services, &s.AddressLine1, &s.AddressLine2,
		&s.City, &s.State, &s.Country, &s.ContactNo, &s.ContactPerson, &s.CreatedAt)
	if err != nil {
		return s, err
	}
	s.Services = models.SplitList(services)
	return s, nil
}

// GET /api/suppliers/
func GetSuppliers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + supplierColumns + ` FROM suppliers ORDER BY company_name ASC`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch suppliers", err)
		return
	}
	defer rows.Close()

	out := []models.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read supplier row", err)
			return
		}
		out = append(out, s)
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/suppliers/:id/
func GetSupplierByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := scanSupplier(intconfig.DB.QueryRow(`SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		RespondError(c, http.StatusNotFound, "supplier not found", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch supplier", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /api/suppliers/
func CreateSupplier(c *gin.Context) {
	var s models.Supplier
	if !BindJSONOrError(c, &s) {
		return
	}
	if strings.TrimSpace(s.CompanyName) == "" {
		RespondError(c, http.StatusBadRequest, "company_name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		INSERT INTO suppliers (company_name, services, address_line1, address_line2,
		                       city, state, country, contact_no, contact_person, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		strings.TrimSpace(s.CompanyName), s.Services.Join(), s.AddressLine1, s.AddressLine2,
		s.City, s.State, s.Country, s.ContactNo, s.ContactPerson)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create supplier", err)
		return
	}
	s.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, s)
}

// PUT /api/suppliers/:id/
func UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var s models.Supplier
	if !BindJSONOrError(c, &s) {
		return
	}
	if strings.TrimSpace(s.CompanyName) == "" {
		RespondError(c, http.StatusBadRequest, "company_name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		UPDATE suppliers SET company_name=?, services=?, address_line1=?, address_line2=?,
		                     city=?, state=?, country=?, contact_no=?, contact_person=?
		WHERE id=?`,
		strings.TrimSpace(s.CompanyName), s.Services.Join(), s.AddressLine1, s.AddressLine2,
		s.City, s.State, s.Country, s.ContactNo, s.ContactPerson, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update supplier", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "supplier not found", nil)
		return
	}
	s.ID = id
	c.JSON(http.StatusOK, s)
}

// DELETE /api/suppliers/:id/
func DeleteSupplier(c *gin.Context) {
	deleteCatalogRow(c, "suppliers", "supplier")
}
