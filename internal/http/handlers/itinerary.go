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
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func itineraryRepo() repositories.ItineraryRepository {
	return repositories.ItineraryRepository{DB: intconfig.DB}
}

// GET /api/itinerary-masters/?destination=3
func GetItineraryMasters(c *gin.Context) {
	var destID *int64
	if raw := strings.TrimSpace(c.Query("destination")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid destination", err)
			return
		}
		destID = &id
	}
	out, err := itineraryRepo().ListMasters(destID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch itinerary masters", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/itinerary-masters/:id/
func GetItineraryMasterByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := itineraryRepo().GetMaster(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/itinerary-masters/
func CreateItineraryMaster(c *gin.Context) {
	var m models.ItineraryMaster
	if !BindJSONOrError(c, &m) {
		return
	}
	if strings.TrimSpace(m.Title) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "title", Msg: "title is required"})
		return
	}
	id, err := itineraryRepo().CreateMaster(m)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create itinerary master", err)
		return
	}
	m.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "itinerary", "create_master", m.Title)
	c.JSON(http.StatusCreated, m)
}

// PUT /api/itinerary-masters/:id/
func UpdateItineraryMaster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var m models.ItineraryMaster
	if !BindJSONOrError(c, &m) {
		return
	}
	if strings.TrimSpace(m.Title) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "title", Msg: "title is required"})
		return
	}
	m.ID = id
	if err := itineraryRepo().UpdateMaster(m); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "itinerary", "update_master", m.Title)
	c.JSON(http.StatusOK, m)
}

// DELETE /api/itinerary-masters/:id/
func DeleteItineraryMaster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := itineraryRepo().DeleteMaster(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "itinerary", "delete_master", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/packages/:id/itinerary/
func GetPackageItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := itineraryRepo().ListDays(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch itinerary days", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type syncDaysRequest struct {
	Days int `json:"days"`
}

// POST /api/packages/:id/itinerary/sync
//
// Brings the stored day rows in line with the requested day count and returns
// the renumbered result.
func SyncPackageItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req syncDaysRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ItineraryService{
		Repo:      itineraryRepo(),
		RequestID: middleware.GetRequestID(c),
	}
	days, err := svc.SyncDays(id, req.Days)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

type applyTemplateRequest struct {
	DayID      int64 `json:"day_id"`
	TemplateID int64 `json:"template_id"`
}

// POST /api/packages/:id/itinerary/apply-template
func ApplyItineraryTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req applyTemplateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.DayID <= 0 || req.TemplateID <= 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "day_id and template_id are required"})
		return
	}

	svc := services.ItineraryService{
		Repo:      itineraryRepo(),
		RequestID: middleware.GetRequestID(c),
	}
	days, err := svc.ApplyTemplate(id, req.DayID, req.TemplateID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
