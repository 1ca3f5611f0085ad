package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// Simple catalog entities stay on direct SQL; they are flat JSON rows with no
// file handling or derived fields.

// GET /api/destinations/?q=bali
func GetDestinations(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	query := `
		SELECT id, name, COALESCE(region,''), COALESCE(city,''), COALESCE(country,'')
		FROM destinations`
	args := []any{}
	if q != "" {
		query += ` WHERE name LIKE ? OR country LIKE ?`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY name ASC`

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch destinations", err)
		return
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.City, &d.Country); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read destination row", err)
			return
		}
		out = append(out, d)
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/destinations/:id/
func GetDestinationByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var d models.Destination
	err := intconfig.DB.QueryRow(`
		SELECT id, name, COALESCE(region,''), COALESCE(city,''), COALESCE(country,'')
		FROM destinations WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Region, &d.City, &d.Country)
	if err == sql.ErrNoRows {
		RespondError(c, http.StatusNotFound, "destination not found", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch destination", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/destinations/
func CreateDestination(c *gin.Context) {
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		INSERT INTO destinations (name, region, city, country) VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(d.Name), d.Region, d.City, d.Country)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create destination", err)
		return
	}
	d.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, d)
}

// PUT /api/destinations/:id/
func UpdateDestination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		UPDATE destinations SET name=?, region=?, city=?, country=? WHERE id=?`,
		strings.TrimSpace(d.Name), d.Region, d.City, d.Country, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update destination", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "destination not found", nil)
		return
	}
	d.ID = id
	c.JSON(http.StatusOK, d)
}

// DELETE /api/destinations/:id/
func DeleteDestination(c *gin.Context) {
	deleteCatalogRow(c, "destinations", "destination")
}

// GET /api/umrah-destinations/
func GetUmrahDestinations(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, name, COALESCE(country,'') FROM umrah_destinations ORDER BY name ASC`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch umrah destinations", err)
		return
	}
	defer rows.Close()

	out := []models.UmrahDestination{}
	for rows.Next() {
		var d models.UmrahDestination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read umrah destination row", err)
			return
		}
		out = append(out, d)
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/umrah-destinations/
func CreateUmrahDestination(c *gin.Context) {
	var d models.UmrahDestination
	if !BindJSONOrError(c, &d) {
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		INSERT INTO umrah_destinations (name, country) VALUES (?, ?)`,
		strings.TrimSpace(d.Name), d.Country)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create umrah destination", err)
		return
	}
	d.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, d)
}

// PUT /api/umrah-destinations/:id/
func UpdateUmrahDestination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var d models.UmrahDestination
	if !BindJSONOrError(c, &d) {
		return
	}
	res, err := intconfig.DB.Exec(`
		UPDATE umrah_destinations SET name=?, country=? WHERE id=?`,
		strings.TrimSpace(d.Name), d.Country, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update umrah destination", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "umrah destination not found", nil)
		return
	}
	d.ID = id
	c.JSON(http.StatusOK, d)
}

// DELETE /api/umrah-destinations/:id/
func DeleteUmrahDestination(c *gin.Context) {
	deleteCatalogRow(c, "umrah_destinations", "umrah destination")
}

// GET /api/starting-cities/
func GetStartingCities(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, name, COALESCE(region,'') FROM starting_cities ORDER BY name ASC`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch starting cities", err)
		return
	}
	defer rows.Close()

	out := []models.StartingCity{}
	for rows.Next() {
		var s models.StartingCity
		if err := rows.Scan(&s.ID, &s.Name, &s.Region); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read starting city row", err)
			return
		}
		out = append(out, s)
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/starting-cities/
func CreateStartingCity(c *gin.Context) {
	var s models.StartingCity
	if !BindJSONOrError(c, &s) {
		return
	}
	if strings.TrimSpace(s.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		INSERT INTO starting_cities (name, region) VALUES (?, ?)`,
		strings.TrimSpace(s.Name), s.Region)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create starting city", err)
		return
	}
	s.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, s)
}

// PUT /api/starting-cities/:id/
func UpdateStartingCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var s models.StartingCity
	if !BindJSONOrError(c, &s) {
		return
	}
	res, err := intconfig.DB.Exec(`
		UPDATE starting_cities SET name=?, region=? WHERE id=?`,
		strings.TrimSpace(s.Name), s.Region, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update starting city", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "starting city not found", nil)
		return
	}
	s.ID = id
	c.JSON(http.StatusOK, s)
}

// DELETE /api/starting-cities/:id/
func DeleteStartingCity(c *gin.Context) {
	deleteCatalogRow(c, "starting_cities", "starting city")
}

// GET /api/nationalities/
func GetNationalities(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, country, nationality, COALESCE(continent,'')
		FROM nationalities ORDER BY country ASC`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch nationalities", err)
		return
	}
	defer rows.Close()

	out := []models.Nationality{}
	for rows.Next() {
		var n models.Nationality
		if err := rows.Scan(&n.ID, &n.Country, &n.Nationality, &n.Continent); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read nationality row", err)
			return
		}
		out = append(out, n)
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/nationalities/
func CreateNationality(c *gin.Context) {
	var n models.Nationality
	if !BindJSONOrError(c, &n) {
		return
	}
	if strings.TrimSpace(n.Country) == "" || strings.TrimSpace(n.Nationality) == "" {
		RespondError(c, http.StatusBadRequest, "country and nationality are required", nil)
		return
	}
	res, err := intconfig.DB.Exec(`
		INSERT INTO nationalities (country, nationality, continent) VALUES (?, ?, ?)`,
		strings.TrimSpace(n.Country), strings.TrimSpace(n.Nationality), n.Continent)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create nationality", err)
		return
	}
	n.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, n)
}

// PUT /api/nationalities/:id/
func UpdateNationality(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var n models.Nationality
	if !BindJSONOrError(c, &n) {
		return
	}
	res, err := intconfig.DB.Exec(`
		UPDATE nationalities SET country=?, nationality=?, continent=? WHERE id=?`,
		strings.TrimSpace(n.Country), strings.TrimSpace(n.Nationality), n.Continent, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update nationality", err)
		return
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		RespondError(c, http.StatusNotFound, "nationality not found", nil)
		return
	}
	n.ID = id
	c.JSON(http.StatusOK, n)
}

// DELETE /api/nationalities/:id/
func DeleteNationality(c *gin.Context) {
	deleteCatalogRow(c, "nationalities", "nationality")
}

func deleteCatalogRow(c *gin.Context, table, label string) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := intconfig.DB.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete "+label, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, label+" not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
