package handlers

import (
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func enquiryRepo() repositories.EnquiryRepository {
	return repositories.EnquiryRepository{DB: intconfig.DB}
}

// GET /api/enquiry-form/?type=Cab
func GetEnquiries(c *gin.Context) {
	out, err := enquiryRepo().List(c.Query("type"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch enquiries", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/enquiry-form/
//
// Public endpoint, no auth. The site's contact widgets post here.
func CreateEnquiry(c *gin.Context) {
	var e models.Enquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Phone) == "" {
		RespondError(c, http.StatusBadRequest, "name and phone are required", nil)
		return
	}
	if e.EnquiryType == "" {
		e.EnquiryType = models.EnquiryTypeGeneral
	}
	id, err := enquiryRepo().Create(e)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save enquiry", err)
		return
	}
	e.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "create", e.EnquiryType)
	c.JSON(http.StatusCreated, e)
}

// DELETE /api/enquiry-form/:id/
func DeleteEnquiry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := enquiryRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/holiday-form/
func GetHolidayEnquiries(c *gin.Context) {
	out, err := enquiryRepo().ListHoliday()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch holiday enquiries", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/holiday-form/
func CreateHolidayEnquiry(c *gin.Context) {
	var e models.HolidayEnquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if strings.TrimSpace(e.FullName) == "" || strings.TrimSpace(e.Phone) == "" {
		RespondError(c, http.StatusBadRequest, "full_name and phone are required", nil)
		return
	}
	id, err := enquiryRepo().CreateHoliday(e)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save holiday enquiry", err)
		return
	}
	e.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "create_holiday", e.FullName)
	c.JSON(http.StatusCreated, e)
}

// DELETE /api/holiday-form/:id/
func DeleteHolidayEnquiry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := enquiryRepo().DeleteHoliday(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "delete_holiday", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/umrah-form/
func GetUmrahEnquiries(c *gin.Context) {
	out, err := enquiryRepo().ListUmrah()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch umrah enquiries", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/umrah-form/
func CreateUmrahEnquiry(c *gin.Context) {
	var e models.UmrahEnquiry
	if !BindJSONOrError(c, &e) {
		return
	}
	if strings.TrimSpace(e.FullName) == "" || strings.TrimSpace(e.Phone) == "" {
		RespondError(c, http.StatusBadRequest, "full_name and phone are required", nil)
		return
	}
	id, err := enquiryRepo().CreateUmrah(e)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save umrah enquiry", err)
		return
	}
	e.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "create_umrah", e.FullName)
	c.JSON(http.StatusCreated, e)
}

// DELETE /api/umrah-form/:id/
func DeleteUmrahEnquiry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := enquiryRepo().DeleteUmrah(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "enquiries", "delete_umrah", c.Param("id"))
	c.Status(http.StatusNoContent)
}
