package admin

import (
	"context"
	"encoding/json"
	"testing"

	"backoffice/internal/apiclient"
)

// fakeApplicantAPI scripts the child-endpoint round-trips.
type fakeApplicantAPI struct {
	appPayload string

	getPaths    []string
	patchPaths  []string
	patchBodies []map[string]string
	formPaths   []string
	lastForm    *apiclient.Form
	deletePaths []string
}

func (f *fakeApplicantAPI) Get(ctx context.Context, path string, out any) error {
	f.getPaths = append(f.getPaths, path)
	return json.Unmarshal([]byte(f.appPayload), out)
}

func (f *fakeApplicantAPI) Delete(ctx context.Context, path string) error {
	f.deletePaths = append(f.deletePaths, path)
	return nil
}

func (f *fakeApplicantAPI) PatchJSON(ctx context.Context, path string, body, out any) error {
	f.patchPaths = append(f.patchPaths, path)
	if m, ok := body.(map[string]string); ok {
		f.patchBodies = append(f.patchBodies, m)
	}
	return nil
}

func (f *fakeApplicantAPI) PatchForm(ctx context.Context, path string, form *apiclient.Form, out any) error {
	f.formPaths = append(f.formPaths, path)
	f.lastForm = form
	return nil
}

func (f *fakeApplicantAPI) PostForm(ctx context.Context, path string, form *apiclient.Form, out any) error {
	f.formPaths = append(f.formPaths, path)
	f.lastForm = form
	return nil
}

func newEditor(api *fakeApplicantAPI) *ApplicantEditor {
	api.appPayload = `{"id":5,"visa":1,"application_type":"Group","applicants":[{"id":11,"first_name":"Amira"}]}`
	return &ApplicantEditor{
		API:           api,
		ApplicationID: 5,
		Confirm:       func(string) bool { return true },
	}
}

func TestSaveScalarsFiltersAllowList(t *testing.T) {
	api := &fakeApplicantAPI{}
	e := newEditor(api)

	err := e.SaveScalars(context.Background(), 11, map[string]string{
		"first_name":     "Amira",
		"passport_front": "should-not-ship",
		"preview_url":    "blob:abc",
		"dob":            "1990-04-01",
	})
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if len(api.patchBodies) != 1 {
		t.Fatalf("patch calls = %d", len(api.patchBodies))
	}
	body := api.patchBodies[0]
	if _, ok := body["passport_front"]; ok {
		t.Fatalf("file field leaked into scalar save")
	}
	if _, ok := body["preview_url"]; ok {
		t.Fatalf("local preview state leaked into scalar save")
	}
	if body["first_name"] != "Amira" || body["dob"] != "1990-04-01" {
		t.Fatalf("allow-listed fields missing: %+v", body)
	}
	if api.patchPaths[0] != "/api/visa-applicants/11/" {
		t.Fatalf("patch path = %q", api.patchPaths[0])
	}
	// every mutation re-fetches the parent application
	if len(api.getPaths) != 1 || api.getPaths[0] != "/api/visa-applications/5/" {
		t.Fatalf("parent not refreshed: %v", api.getPaths)
	}
}

func TestUploadFilePatchesChildEndpoint(t *testing.T) {
	api := &fakeApplicantAPI{}
	e := newEditor(api)

	if err := e.UploadFile(context.Background(), 11, "photo", "photo.jpg", []byte{1, 2}); err != nil {
		t.Fatalf("upload error: %v", err)
	}
	if len(api.formPaths) != 1 || api.formPaths[0] != "/api/visa-applicants/11/" {
		t.Fatalf("upload path = %v", api.formPaths)
	}
	if !api.lastForm.Has("photo") {
		t.Fatalf("file part missing")
	}
	if e.Status.Type != StatusSuccess {
		t.Fatalf("banner = %+v", e.Status)
	}
}

func TestClearFileConfirmGatedAndSentinel(t *testing.T) {
	api := &fakeApplicantAPI{}
	e := newEditor(api)
	e.Confirm = func(string) bool { return false }

	if err := e.ClearFile(context.Background(), 11, "photo"); err != nil {
		t.Fatalf("declined clear should not error: %v", err)
	}
	if len(api.formPaths) != 0 {
		t.Fatalf("declined clear must not hit the network")
	}

	e.Confirm = func(string) bool { return true }
	if err := e.ClearFile(context.Background(), 11, "photo"); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	if api.lastForm.Value("photo") != "" || !api.lastForm.Has("photo") {
		t.Fatalf("clear must send the empty sentinel")
	}
}

func TestAddDocumentPostsToDocumentsEndpoint(t *testing.T) {
	api := &fakeApplicantAPI{}
	e := newEditor(api)

	if err := e.AddDocument(context.Background(), 11, "Bank statement", "stmt.pdf", []byte{9}); err != nil {
		t.Fatalf("add document error: %v", err)
	}
	if api.formPaths[0] != "/api/additional-documents/" {
		t.Fatalf("document path = %q", api.formPaths[0])
	}
	if api.lastForm.Value("applicant") != "11" || api.lastForm.Value("document_name") != "Bank statement" {
		t.Fatalf("document form fields wrong")
	}
	if !api.lastForm.Has("file") {
		t.Fatalf("file part missing")
	}
}

func TestDeleteDocumentConfirmGated(t *testing.T) {
	api := &fakeApplicantAPI{}
	e := newEditor(api)
	e.Confirm = func(string) bool { return false }

	_ = e.DeleteDocument(context.Background(), 3)
	if len(api.deletePaths) != 0 {
		t.Fatalf("declined delete must not hit the network")
	}

	e.Confirm = func(string) bool { return true }
	if err := e.DeleteDocument(context.Background(), 3); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if api.deletePaths[0] != "/api/additional-documents/3/" {
		t.Fatalf("delete path = %q", api.deletePaths[0])
	}
}
