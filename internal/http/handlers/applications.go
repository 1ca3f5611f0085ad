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

func applicationRepo() repositories.ApplicationRepository {
	return repositories.ApplicationRepository{DB: intconfig.DB}
}

// GET /api/visa-applications/?status=Pending
func GetVisaApplications(c *gin.Context) {
	out, err := applicationRepo().List(c.Query("status"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch visa applications", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/visa-applications/:id/
func GetVisaApplicationByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := applicationRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func validateApplication(a models.VisaApplication) error {
	if a.VisaID <= 0 {
		return domain.ValidationError{Field: "visa", Msg: "visa is required"}
	}
	if a.ApplicationType != models.ApplicationTypeIndividual && a.ApplicationType != models.ApplicationTypeGroup {
		return domain.ValidationError{Field: "application_type", Msg: "application type must be Individual or Group"}
	}
	if a.ApplicationType == models.ApplicationTypeGroup && strings.TrimSpace(a.GroupName) == "" {
		return domain.ValidationError{Field: "group_name", Msg: "group name is required for group applications"}
	}
	if a.DepartureDate != "" {
		if _, err := utils.ParseDate(a.DepartureDate); err != nil {
			return domain.ValidationError{Field: "departure_date", Msg: "departure date must be YYYY-MM-DD"}
		}
	}
	if a.ReturnDate != "" {
		if _, err := utils.ParseDate(a.ReturnDate); err != nil {
			return domain.ValidationError{Field: "return_date", Msg: "return date must be YYYY-MM-DD"}
		}
	}
	return nil
}

// POST /api/visa-applications/
func CreateVisaApplication(c *gin.Context) {
	var a models.VisaApplication
	if !BindJSONOrError(c, &a) {
		return
	}
	if a.Status == "" {
		a.Status = models.ApplicationStatusPending
	}
	if err := validateApplication(a); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := applicationRepo()
	id, err := repo.Create(a)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create visa application", err)
		return
	}

	for i := range a.Applicants {
		a.Applicants[i].ApplicationID = id
		if _, err := repo.AddApplicant(a.Applicants[i]); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to save applicant", err)
			return
		}
	}

	out, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "applications", "create", strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, out)
}

// PUT /api/visa-applications/:id/
func UpdateVisaApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var a models.VisaApplication
	if !BindJSONOrError(c, &a) {
		return
	}
	a.ID = id
	if err := validateApplication(a); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := applicationRepo()
	if err := repo.Update(a); err != nil {
		RespondDomainError(c, err)
		return
	}
	out, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "applications", "update", c.Param("id"))
	c.JSON(http.StatusOK, out)
}

// DELETE /api/visa-applications/:id/
func DeleteVisaApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := applicationRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "applications", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/visa-applications/:id/summary-pdf
func GetVisaApplicationSummaryPDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := services.DocsService{
		ApplicationRepo: applicationRepo(),
		VisaRepo:        visaRepo(),
		RequestID:       middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateSummary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// POST /api/visa-applicants/
func CreateVisaApplicant(c *gin.Context) {
	var ap models.VisaApplicant
	if !BindJSONOrError(c, &ap) {
		return
	}
	if ap.ApplicationID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "application", Msg: "application is required"})
		return
	}
	id, err := applicationRepo().AddApplicant(ap)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save applicant", err)
		return
	}
	ap.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "applications", "add_applicant", strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, ap)
}

// PatchVisaApplicant handles both save paths of the applicant editor. A JSON
// body carries the allow-listed scalar fields; a multipart body carries one
// file field (new upload, or the empty-string sentinel to clear it).
//
// PATCH /api/visa-applicants/:id/
func PatchVisaApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	repo := applicationRepo()

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		patched := false
		for _, field := range []string{"passport_front", "photo"} {
			path, changed, err := patchApplicantFile(c, field)
			if err != nil {
				RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
				return
			}
			if !changed {
				continue
			}
			if err := repo.SetApplicantFile(id, field, path); err != nil {
				RespondDomainError(c, err)
				return
			}
			patched = true
		}
		if !patched {
			RespondDomainError(c, domain.ValidationError{Msg: "no file field in payload"})
			return
		}
	} else {
		var fields map[string]string
		if !BindJSONOrError(c, &fields) {
			return
		}
		if err := repo.PatchApplicant(id, fields); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	utils.LogEvent(middleware.GetRequestID(c), "applications", "patch_applicant", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// patchApplicantFile reports whether the field was present at all; the
// distinction between absent and cleared matters here.
func patchApplicantFile(c *gin.Context, field string) (string, bool, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return "", false, nil
	}
	if files := form.File[field]; len(files) > 0 {
		path, err := saveUpload(c, files[0])
		return path, true, err
	}
	if values, ok := form.Value[field]; ok && len(values) > 0 && strings.TrimSpace(values[0]) == "" {
		return "", true, nil
	}
	return "", false, nil
}

// DELETE /api/visa-applicants/:id/
func DeleteVisaApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := applicationRepo().DeleteApplicant(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "applications", "delete_applicant", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// POST /api/additional-documents/
//
// Multipart: applicant id, optional document_name, required file part.
func CreateAdditionalDocument(c *gin.Context) {
	applicantRaw, _ := c.GetPostForm("applicant")
	applicantID, err := strconv.ParseInt(strings.TrimSpace(applicantRaw), 10, 64)
	if err != nil || applicantID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "applicant", Msg: "applicant is required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file is required"})
		return
	}
	path, err := saveUpload(c, file)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store upload", err)
		return
	}

	doc := models.AdditionalDocument{
		ApplicantID:  applicantID,
		DocumentName: c.PostForm("document_name"),
		File:         path,
	}
	id, err := applicationRepo().AddDocument(doc)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save document", err)
		return
	}
	doc.ID = id
	utils.LogEvent(middleware.GetRequestID(c), "applications", "add_document", strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, doc)
}

// DELETE /api/additional-documents/:id/
func DeleteAdditionalDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := applicationRepo().DeleteDocument(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "applications", "delete_document", c.Param("id"))
	c.Status(http.StatusNoContent)
}
