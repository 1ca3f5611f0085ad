package admin

import (
	"context"
	"encoding/json"
	"testing"

	"backoffice/internal/apiclient"
)

// fakeFormAPI records which method was used and what the form carried.
type fakeFormAPI struct {
	getPayload string
	sendErr    error

	postJSONCalls int
	putJSONCalls  int
	postFormCalls int
	putFormCalls  int
	lastForm      *apiclient.Form
	savedPayload  string
}

func (f *fakeFormAPI) Get(ctx context.Context, path string, out any) error {
	return json.Unmarshal([]byte(f.getPayload), out)
}

func (f *fakeFormAPI) PostJSON(ctx context.Context, path string, body, out any) error {
	f.postJSONCalls++
	return f.finish(out)
}

func (f *fakeFormAPI) PutJSON(ctx context.Context, path string, body, out any) error {
	f.putJSONCalls++
	return f.finish(out)
}

func (f *fakeFormAPI) PostForm(ctx context.Context, path string, form *apiclient.Form, out any) error {
	f.postFormCalls++
	f.lastForm = form
	return f.finish(out)
}

func (f *fakeFormAPI) PutForm(ctx context.Context, path string, form *apiclient.Form, out any) error {
	f.putFormCalls++
	f.lastForm = form
	return f.finish(out)
}

func (f *fakeFormAPI) finish(out any) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	if out != nil && f.savedPayload != "" {
		return json.Unmarshal([]byte(f.savedPayload), out)
	}
	return nil
}

func countryFormController(api *fakeFormAPI) *FormController[CountryForm] {
	return &FormController[CountryForm]{
		API:       api,
		Resource:  CountryFormResource(),
		ListRoute: "/admin/countries",
		EditRoute: "/admin/countries/edit/%d",
	}
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	api := &fakeFormAPI{}
	ctrl := countryFormController(api)
	ctrl.FormData = CountryForm{} // name missing

	if err := ctrl.Submit(context.Background(), Save); err == nil {
		t.Fatalf("expected validation error")
	}
	if api.postFormCalls+api.putFormCalls+api.postJSONCalls+api.putJSONCalls != 0 {
		t.Fatalf("validation failure must not reach the network")
	}
	if ctrl.Status.Type != StatusError {
		t.Fatalf("banner = %+v", ctrl.Status)
	}
}

func TestSubmitCreateSendsMultipartAndNavigates(t *testing.T) {
	api := &fakeFormAPI{savedPayload: `{"id":7,"name":"Japan","code":"JP"}`}
	ctrl := countryFormController(api)
	var navigated string
	ctrl.Navigate = func(route string) { navigated = route }
	ctrl.FormData = CountryForm{Name: "Japan", Code: "JP"}

	if err := ctrl.Submit(context.Background(), Save); err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if api.postFormCalls != 1 {
		t.Fatalf("create must POST multipart once, got %d", api.postFormCalls)
	}
	if api.lastForm.Value("name") != "Japan" || api.lastForm.Value("code") != "JP" {
		t.Fatalf("form fields wrong")
	}
	// untouched file fields stay off the wire entirely
	if api.lastForm.Has("header_image") || api.lastForm.Has("video") {
		t.Fatalf("untouched file fields must be absent")
	}
	if navigated != "/admin/countries" {
		t.Fatalf("Save must navigate to the list, got %q", navigated)
	}
	if ctrl.Status.Text != "Country saved successfully" {
		t.Fatalf("banner = %q", ctrl.Status.Text)
	}
}

func TestSubmitSaveAndNewResetsForm(t *testing.T) {
	api := &fakeFormAPI{savedPayload: `{"id":7,"name":"Japan"}`}
	ctrl := countryFormController(api)
	ctrl.FormData = CountryForm{Name: "Japan"}

	if err := ctrl.Submit(context.Background(), SaveAndNew); err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if ctrl.RecordID != 0 {
		t.Fatalf("Save+New must return to add mode, RecordID = %d", ctrl.RecordID)
	}
	if ctrl.FormData.Name != "" {
		t.Fatalf("Save+New must reset the form: %+v", ctrl.FormData)
	}
}

func TestSubmitSaveAndContinueEntersEditMode(t *testing.T) {
	api := &fakeFormAPI{savedPayload: `{"id":7,"name":"Japan"}`}
	ctrl := countryFormController(api)
	var navigated string
	ctrl.Navigate = func(route string) { navigated = route }
	ctrl.FormData = CountryForm{Name: "Japan"}

	if err := ctrl.Submit(context.Background(), SaveAndContinue); err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if ctrl.RecordID != 7 {
		t.Fatalf("RecordID = %d, want the saved id", ctrl.RecordID)
	}
	if navigated != "/admin/countries/edit/7" {
		t.Fatalf("navigated = %q", navigated)
	}
}

func TestSubmitEditUsesPut(t *testing.T) {
	api := &fakeFormAPI{
		getPayload:   `{"id":7,"name":"Japan","code":"JP","header_image":"uploads/jp.png"}`,
		savedPayload: `{"id":7,"name":"Japan","code":"JPN"}`,
	}
	ctrl := countryFormController(api)
	ctrl.RecordID = 7

	if err := ctrl.Init(context.Background()); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if ctrl.FormData.Name != "Japan" || ctrl.FormData.HeaderImage.Existing != "uploads/jp.png" {
		t.Fatalf("edit mode not seeded: %+v", ctrl.FormData)
	}

	ctrl.FormData.Code = "JPN"
	if err := ctrl.Submit(context.Background(), Save); err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if api.putFormCalls != 1 || api.postFormCalls != 0 {
		t.Fatalf("edit must PUT, got put=%d post=%d", api.putFormCalls, api.postFormCalls)
	}
}

func TestSubmitServerFieldErrorsReachBanner(t *testing.T) {
	api := &fakeFormAPI{sendErr: &apiclient.APIError{
		StatusCode: 400,
		Fields:     map[string][]string{"name": {"A country with this name already exists."}},
	}}
	ctrl := countryFormController(api)
	ctrl.FormData = CountryForm{Name: "Japan"}

	if err := ctrl.Submit(context.Background(), Save); err == nil {
		t.Fatalf("expected submit error")
	}
	if ctrl.Status.Text != "name: A country with this name already exists." {
		t.Fatalf("banner = %q", ctrl.Status.Text)
	}
	if ctrl.FormData.Name != "Japan" {
		t.Fatalf("form must stay intact on server rejection")
	}
}

func TestFileFieldClearSendsSentinel(t *testing.T) {
	form := CountryForm{Name: "Japan", HeaderImage: FileField{Existing: "uploads/jp.png"}}
	form.HeaderImage.Remove()

	encoded, err := CountryFormResource().EncodeForm(form)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if !encoded.Has("header_image") {
		t.Fatalf("cleared file must be present as the empty sentinel")
	}
	if encoded.Value("header_image") != "" {
		t.Fatalf("sentinel must be the empty string, got %q", encoded.Value("header_image"))
	}
}
