package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func visaRepo() repositories.VisaRepository {
	return repositories.VisaRepository{DB: intconfig.DB}
}

// GET /api/visas/?active=1&country=UAE
func GetVisas(c *gin.Context) {
	activeOnly := c.Query("active") == "1" || strings.EqualFold(c.Query("active"), "true")
	out, err := visaRepo().List(activeOnly, c.Query("country"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch visas", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/visas/:id/
func GetVisaByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := visaRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func visaFromForm(c *gin.Context, existing models.Visa) (models.Visa, error) {
	out := existing
	if v, ok := c.GetPostForm("country"); ok {
		out.Country = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("title"); ok {
		out.Title = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("entry_type"); ok {
		out.EntryType = v
	}
	if v, ok := c.GetPostForm("validity"); ok {
		out.Validity = v
	}
	if v, ok := c.GetPostForm("duration"); ok {
		out.Duration = v
	}
	if v, ok := c.GetPostForm("processing_time"); ok {
		out.ProcessingTime = v
	}
	if v, ok := c.GetPostForm("visa_type"); ok {
		out.VisaType = v
	}
	if v, ok := c.GetPostForm("cost_price"); ok {
		out.CostPrice, _ = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	if v, ok := c.GetPostForm("service_charge"); ok {
		out.ServiceCharge, _ = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	// selling price is derived server-side, never trusted from the form
	out.SellingPrice = out.CostPrice + out.ServiceCharge
	if v, ok := c.GetPostForm("documents_required"); ok {
		out.DocumentsRequired = models.SplitList(v)
	}
	if v, ok := c.GetPostForm("photography_required"); ok {
		out.PhotographyRequired = models.SplitList(v)
	}
	if v, ok := c.GetPostForm("supplier"); ok {
		if sid, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil && sid > 0 {
			out.SupplierID = &sid
		} else {
			out.SupplierID = nil
		}
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		out.IsActive = parseFormBool(v)
	}
	if v, ok := c.GetPostForm("is_popular"); ok {
		out.IsPopular = parseFormBool(v)
	}
	var err error
	if out.CardImage, err = resolveFileField(c, "card_image", existing.CardImage); err != nil {
		return out, err
	}
	return out, nil
}

func parseFormBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func validateVisa(v models.Visa) error {
	if v.Country == "" {
		return domain.ValidationError{Field: "country", Msg: "country is required"}
	}
	if v.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "title is required"}
	}
	if v.CostPrice < 0 || v.ServiceCharge < 0 {
		return domain.ValidationError{Field: "cost_price", Msg: "prices must not be negative"}
	}
	if v.IsPopular && strings.TrimSpace(v.CardImage) == "" {
		return domain.ValidationError{Field: "card_image", Msg: "popular visas need a card image"}
	}
	return nil
}

// POST /api/visas/
func CreateVisa(c *gin.Context) {
	record, err := visaFromForm(c, models.Visa{})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if err := validateVisa(record); err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := visaRepo().Create(record)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create visa", err)
		return
	}
	record.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "visas", "create", record.Country+" "+record.Title)
	c.JSON(http.StatusCreated, record)
}

// PUT /api/visas/:id/
func UpdateVisa(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	repo := visaRepo()
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	record, err := visaFromForm(c, existing)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if err := validateVisa(record); err != nil {
		RespondDomainError(c, err)
		return
	}
	record.ID = id

	if err := repo.Update(record); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "visas", "update", record.Country+" "+record.Title)
	c.JSON(http.StatusOK, record)
}

// PATCH /api/visas/:id/
//
// Toggle endpoint: accepts a JSON object of boolean columns only.
func PatchVisa(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload map[string]bool
	if !BindJSONOrError(c, &payload) {
		return
	}
	repo := visaRepo()
	if err := repo.SetFlags(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	out, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "visas", "patch_flags", c.Param("id"))
	c.JSON(http.StatusOK, out)
}

// DELETE /api/visas/:id/
func DeleteVisa(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := visaRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "visas", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}
