package handlers

import (
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func countryRepo() repositories.CountryRepository {
	return repositories.CountryRepository{DB: intconfig.DB}
}

// GET /api/countries/
func GetCountries(c *gin.Context) {
	out, err := countryRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch countries", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/countries/:id/
func GetCountryByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := countryRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// countryFromForm builds the record from a multipart payload, merging file
// fields against what is already stored.
func countryFromForm(c *gin.Context, existing models.Country) (models.Country, error) {
	out := existing
	if v, ok := c.GetPostForm("name"); ok {
		out.Name = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("code"); ok {
		out.Code = strings.TrimSpace(v)
	}
	var err error
	if out.HeaderImage, err = resolveFileField(c, "header_image", existing.HeaderImage); err != nil {
		return out, err
	}
	if out.Video, err = resolveFileField(c, "video", existing.Video); err != nil {
		return out, err
	}
	return out, nil
}

// POST /api/countries/
func CreateCountry(c *gin.Context) {
	record, err := countryFromForm(c, models.Country{})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if record.Name == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "name is required"})
		return
	}

	id, err := countryRepo().Create(record)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create country", err)
		return
	}
	record.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "countries", "create", record.Name)
	c.JSON(http.StatusCreated, record)
}

// PUT /api/countries/:id/
func UpdateCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	repo := countryRepo()
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	record, err := countryFromForm(c, existing)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}
	if record.Name == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "name is required"})
		return
	}
	record.ID = id

	if err := repo.Update(record); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "countries", "update", record.Name)
	c.JSON(http.StatusOK, record)
}

// DELETE /api/countries/:id/
func DeleteCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := countryRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "countries", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}
