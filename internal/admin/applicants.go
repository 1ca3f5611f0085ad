package admin

import (
	"context"
	"fmt"
	"strconv"

	"backoffice/internal/apiclient"
	"backoffice/internal/domain/models"
)

const (
	applicantsEndpoint   = "/api/visa-applicants/"
	documentsEndpoint    = "/api/additional-documents/"
	applicationsEndpoint = "/api/visa-applications/"
)

// ApplicantAPI is the client slice the applicant editor round-trips through.
type ApplicantAPI interface {
	Get(ctx context.Context, path string, out any) error
	Delete(ctx context.Context, path string) error
	PatchJSON(ctx context.Context, path string, body, out any) error
	PatchForm(ctx context.Context, path string, form *apiclient.Form, out any) error
	PostForm(ctx context.Context, path string, form *apiclient.Form, out any) error
}

// ApplicantEditor manages one application's applicants inline. There is no
// batched save: every upload, field save or delete is its own request against
// the child endpoint, and the parent application is re-fetched afterward so
// local state reflects what the server now holds.
type ApplicantEditor struct {
	API           ApplicantAPI
	ApplicationID int64
	Confirm       func(prompt string) bool

	Application models.VisaApplication
	Status      StatusMessage
}

// Refresh re-fetches the application with its applicants.
func (e *ApplicantEditor) Refresh(ctx context.Context) error {
	path := fmt.Sprintf("%s%d/", applicationsEndpoint, e.ApplicationID)
	var app models.VisaApplication
	if err := e.API.Get(ctx, path, &app); err != nil {
		e.Status = errorMessage("Failed to load visa application")
		return err
	}
	e.Application = app
	return nil
}

// SaveScalars PATCHes one applicant's text fields. Only keys on the
// allow-list are sent; preview state or stray keys in the caller's map are
// silently dropped.
func (e *ApplicantEditor) SaveScalars(ctx context.Context, applicantID int64, fields map[string]string) error {
	payload := map[string]string{}
	for _, key := range models.ApplicantScalarFields {
		if v, ok := fields[key]; ok {
			payload[key] = v
		}
	}
	path := fmt.Sprintf("%s%d/", applicantsEndpoint, applicantID)
	if err := e.API.PatchJSON(ctx, path, payload, nil); err != nil {
		e.Status = errorMessage("Failed to save applicant details")
		return err
	}
	e.Status = successMessage("Applicant updated successfully")
	return e.Refresh(ctx)
}

// UploadFile replaces one of the applicant's file slots (passport_front or
// photo) in a single independent request.
func (e *ApplicantEditor) UploadFile(ctx context.Context, applicantID int64, field, filename string, data []byte) error {
	form := &apiclient.Form{}
	form.SetFile(field, filename, data)
	path := fmt.Sprintf("%s%d/", applicantsEndpoint, applicantID)
	if err := e.API.PatchForm(ctx, path, form, nil); err != nil {
		e.Status = errorMessage("Failed to upload file")
		return err
	}
	e.Status = successMessage("File uploaded successfully")
	return e.Refresh(ctx)
}

// ClearFile removes a stored file via the empty sentinel.
func (e *ApplicantEditor) ClearFile(ctx context.Context, applicantID int64, field string) error {
	if e.Confirm == nil || !e.Confirm("Remove this file? This cannot be undone.") {
		return nil
	}
	form := &apiclient.Form{}
	form.ClearFile(field)
	path := fmt.Sprintf("%s%d/", applicantsEndpoint, applicantID)
	if err := e.API.PatchForm(ctx, path, form, nil); err != nil {
		e.Status = errorMessage("Failed to remove file")
		return err
	}
	e.Status = successMessage("File removed")
	return e.Refresh(ctx)
}

// AddDocument attaches an extra named document to the applicant.
func (e *ApplicantEditor) AddDocument(ctx context.Context, applicantID int64, documentName, filename string, data []byte) error {
	form := &apiclient.Form{}
	form.Set("applicant", strconv.FormatInt(applicantID, 10))
	if documentName != "" {
		form.Set("document_name", documentName)
	}
	form.SetFile("file", filename, data)
	if err := e.API.PostForm(ctx, documentsEndpoint, form, nil); err != nil {
		e.Status = errorMessage("Failed to upload document")
		return err
	}
	e.Status = successMessage("Document uploaded successfully")
	return e.Refresh(ctx)
}

// DeleteDocument removes an additional document after confirmation.
func (e *ApplicantEditor) DeleteDocument(ctx context.Context, documentID int64) error {
	if e.Confirm == nil || !e.Confirm("Delete this document? This cannot be undone.") {
		return nil
	}
	path := fmt.Sprintf("%s%d/", documentsEndpoint, documentID)
	if err := e.API.Delete(ctx, path); err != nil {
		e.Status = errorMessage("Failed to delete document")
		return err
	}
	e.Status = successMessage("Document deleted successfully")
	return e.Refresh(ctx)
}
