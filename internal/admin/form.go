package admin

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/apiclient"
)

// SaveAction selects the post-submit behavior by which button fired the form.
type SaveAction int

const (
	// Save navigates back to the manage list.
	Save SaveAction = iota
	// SaveAndNew resets the form to defaults and stays on Add.
	SaveAndNew
	// SaveAndContinue navigates to the Edit view of the saved record.
	SaveAndContinue
)

// FormAPI is the slice of the API client the form screens use.
type FormAPI interface {
	Get(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, body, out any) error
	PutJSON(ctx context.Context, path string, body, out any) error
	PostForm(ctx context.Context, path string, form *apiclient.Form, out any) error
	PutForm(ctx context.Context, path string, form *apiclient.Form, out any) error
}

// FormController drives an add/edit screen. RecordID zero means add mode;
// edit mode loads the record on mount and seeds FormData with it.
type FormController[T any] struct {
	API      FormAPI
	Resource Resource[T]
	// Navigate moves to another screen; routes come from the registry.
	Navigate  func(route string)
	ListRoute string
	// EditRoute is a pattern with one %d for the record id.
	EditRoute string

	RecordID     int64
	FormData     T
	Status       StatusMessage
	IsSubmitting bool
}

// Init seeds the form: defaults for add mode, the fetched record for edit.
func (f *FormController[T]) Init(ctx context.Context) error {
	if f.Resource.Defaults != nil {
		f.FormData = f.Resource.Defaults()
	}
	if f.RecordID == 0 {
		return nil
	}
	var record T
	if err := f.API.Get(ctx, f.Resource.ItemPath(f.RecordID), &record); err != nil {
		f.Status = errorMessage(fmt.Sprintf("Failed to load %s", lower(f.Resource.label())))
		return err
	}
	f.FormData = record
	return nil
}

// Reset returns the form to add-mode defaults (Save + New).
func (f *FormController[T]) Reset() {
	f.RecordID = 0
	if f.Resource.Defaults != nil {
		f.FormData = f.Resource.Defaults()
	} else {
		var zero T
		f.FormData = zero
	}
}

// Submit validates, sends, and applies the chosen post-submit action. A
// validation failure sets the banner and aborts with no network call. Server
// field errors are flattened into the banner and the form stays intact.
func (f *FormController[T]) Submit(ctx context.Context, action SaveAction) error {
	if f.IsSubmitting {
		return nil
	}
	if f.Resource.Validate != nil {
		if err := f.Resource.Validate(f.FormData); err != nil {
			f.Status = errorMessage(err.Error())
			return err
		}
	}

	f.IsSubmitting = true
	defer func() { f.IsSubmitting = false }()

	var saved T
	err := f.send(ctx, &saved)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			f.Status = errorMessage(apiErr.Flatten())
		} else {
			f.Status = errorMessage(fmt.Sprintf("Failed to save %s", lower(f.Resource.label())))
		}
		return err
	}

	savedID := f.RecordID
	if f.Resource.ID != nil {
		if id := f.Resource.ID(saved); id != 0 {
			savedID = id
		}
	}
	f.Status = successMessage(fmt.Sprintf("%s saved successfully", f.Resource.label()))

	switch action {
	case SaveAndNew:
		f.Reset()
	case SaveAndContinue:
		f.RecordID = savedID
		f.FormData = saved
		if f.Navigate != nil && f.EditRoute != "" {
			f.Navigate(fmt.Sprintf(f.EditRoute, savedID))
		}
	default:
		if f.Navigate != nil && f.ListRoute != "" {
			f.Navigate(f.ListRoute)
		}
	}
	return nil
}

func (f *FormController[T]) send(ctx context.Context, saved *T) error {
	creating := f.RecordID == 0
	path := f.Resource.Endpoint
	if !creating {
		path = f.Resource.ItemPath(f.RecordID)
	}

	if f.Resource.EncodeForm != nil {
		form, err := f.Resource.EncodeForm(f.FormData)
		if err != nil {
			return err
		}
		if creating {
			return f.API.PostForm(ctx, path, form, saved)
		}
		return f.API.PutForm(ctx, path, form, saved)
	}
	if creating {
		return f.API.PostJSON(ctx, path, f.FormData, saved)
	}
	return f.API.PutJSON(ctx, path, f.FormData, saved)
}
