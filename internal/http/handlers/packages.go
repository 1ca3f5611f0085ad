package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

const packageColumns = `
	id, title, COALESCE(description,''), COALESCE(category,''), COALESCE(starting_city,''),
	days, COALESCE(DATE_FORMAT(start_date, '%Y-%m-%d'), ''),
	price, offer_price, group_size, with_flight,
	COALESCE(header_image,''), COALESCE(card_image,''), is_active,
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanPackage(row interface{ Scan(...any) error }) (models.HolidayPackage, error) {
	var p models.HolidayPackage
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.StartingCity,
		&p.Days, &p.StartDate, &p.Price, &p.OfferPrice, &p.GroupSize, &p.WithFlight,
		&p.HeaderImage, &p.CardImage, &p.IsActive, &p.CreatedAt)
	return p, err
}

// GET /api/packages/?category=Umrah&active=1
func GetPackages(c *gin.Context) {
	query := `SELECT ` + packageColumns + ` FROM holiday_packages`
	where := []string{}
	args := []any{}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		where = append(where, "category = ?")
		args = append(args, cat)
	}
	if c.Query("active") == "1" || strings.EqualFold(c.Query("active"), "true") {
		where = append(where, "is_active = 1")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch packages", err)
		return
	}
	defer rows.Close()

	out := []models.HolidayPackage{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read package row", err)
			return
		}
		out = append(out, p)
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/packages/:id/
func GetPackageByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := scanPackage(intconfig.DB.QueryRow(`SELECT `+packageColumns+` FROM holiday_packages WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		RespondError(c, http.StatusNotFound, "package not found", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch package", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func packageFromForm(c *gin.Context, existing models.HolidayPackage) (models.HolidayPackage, error) {
	out := existing
	if v, ok := c.GetPostForm("title"); ok {
		out.Title = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		out.Description = v
	}
	if v, ok := c.GetPostForm("category"); ok {
		out.Category = v
	}
	if v, ok := c.GetPostForm("starting_city"); ok {
		out.StartingCity = v
	}
	if v, ok := c.GetPostForm("days"); ok {
		out.Days, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, ok := c.GetPostForm("start_date"); ok {
		out.StartDate = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("price"); ok {
		out.Price, _ = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	if v, ok := c.GetPostForm("Offer_price"); ok {
		out.OfferPrice, _ = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	if v, ok := c.GetPostForm("group_size"); ok {
		out.GroupSize, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, ok := c.GetPostForm("with_flight"); ok {
		out.WithFlight = parseFormBool(v)
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		out.IsActive = parseFormBool(v)
	}
	var err error
	if out.HeaderImage, err = resolveFileField(c, "header_image", existing.HeaderImage); err != nil {
		return out, err
	}
	if out.CardImage, err = resolveFileField(c, "card_image", existing.CardImage); err != nil {
		return out, err
	}
	return out, nil
}

func validatePackage(p models.HolidayPackage) string {
	if p.Title == "" {
		return "title is required"
	}
	if p.Days <= 0 {
		return "days must be a positive number"
	}
	if p.Price < 0 || p.OfferPrice < 0 {
		return "prices must not be negative"
	}
	return ""
}

// POST /api/packages/
func CreatePackage(c *gin.Context) {
	record, err := packageFromForm(c, models.HolidayPackage{IsActive: true})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if msg := validatePackage(record); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO holiday_packages (title, description, category, starting_city, days, start_date,
		                              price, offer_price, group_size, with_flight,
		                              header_image, card_image, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		record.Title, intdb.NullIfEmpty(record.Description), record.Category, record.StartingCity,
		record.Days, intdb.NullIfEmpty(record.StartDate),
		record.Price, record.OfferPrice, record.GroupSize, record.WithFlight,
		intdb.NullIfEmpty(record.HeaderImage), intdb.NullIfEmpty(record.CardImage), record.IsActive)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create package", err)
		return
	}
	record.ID, _ = res.LastInsertId()
	utils.LogEvent(middleware.GetRequestID(c), "packages", "create", record.Title)
	c.JSON(http.StatusCreated, record)
}

// PUT /api/packages/:id/
func UpdatePackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	existing, err := scanPackage(intconfig.DB.QueryRow(`SELECT `+packageColumns+` FROM holiday_packages WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		RespondError(c, http.StatusNotFound, "package not found", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch package", err)
		return
	}

	record, err := packageFromForm(c, existing)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if msg := validatePackage(record); msg != "" {
		RespondError(c, http.StatusBadRequest, msg, nil)
		return
	}
	record.ID = id

	_, err = intconfig.DB.Exec(`
		UPDATE holiday_packages
		SET title=?, description=?, category=?, starting_city=?, days=?, start_date=?,
		    price=?, offer_price=?, group_size=?, with_flight=?,
		    header_image=?, card_image=?, is_active=?
		WHERE id=?`,
		record.Title, intdb.NullIfEmpty(record.Description), record.Category, record.StartingCity,
		record.Days, intdb.NullIfEmpty(record.StartDate),
		record.Price, record.OfferPrice, record.GroupSize, record.WithFlight,
		intdb.NullIfEmpty(record.HeaderImage), intdb.NullIfEmpty(record.CardImage), record.IsActive, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update package", err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "packages", "update", record.Title)
	c.JSON(http.StatusOK, record)
}

// PATCH /api/packages/:id/
func PatchPackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload map[string]bool
	if !BindJSONOrError(c, &payload) {
		return
	}
	active, ok := payload["is_active"]
	if !ok {
		RespondError(c, http.StatusBadRequest, "no toggleable field in payload", nil)
		return
	}
	res, err := intconfig.DB.Exec(`UPDATE holiday_packages SET is_active=? WHERE id=?`, active, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update package", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "package not found", nil)
		return
	}
	p, err := scanPackage(intconfig.DB.QueryRow(`SELECT `+packageColumns+` FROM holiday_packages WHERE id = ?`, id))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch package", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/packages/:id/
func DeletePackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := intconfig.DB.Exec(`DELETE FROM holiday_packages WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete package", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		RespondError(c, http.StatusNotFound, "package not found", nil)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "packages", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}
