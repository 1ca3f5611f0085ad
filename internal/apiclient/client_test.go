package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"backoffice/internal/session"
)

func newTestStore(t *testing.T, access, refresh string) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SetTokens(access, refresh); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}
	return store
}

func TestRefreshAndReplayOn401(t *testing.T) {
	var refreshCalls, dataCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/refresh/":
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "refresh-1" {
				t.Errorf("refresh payload = %q", body["refresh"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
		case "/api/countries/":
			atomic.AddInt32(&dataCalls, 1)
			if r.Header.Get("Authorization") == "Bearer access-2" {
				_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "UAE"}})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t, "access-1", "refresh-1")
	client := New(srv.URL, store)

	var out []map[string]any
	if err := client.Get(context.Background(), "/api/countries/", &out); err != nil {
		t.Fatalf("Get after refresh should succeed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("decoded %d items, want 1", len(out))
	}
	if n := atomic.LoadInt32(&refreshCalls); n != 1 {
		t.Fatalf("refresh calls = %d, want 1", n)
	}
	if n := atomic.LoadInt32(&dataCalls); n != 2 {
		t.Fatalf("data calls = %d, want original + one replay", n)
	}
	if store.AccessToken() != "access-2" {
		t.Fatalf("new access token not persisted: %q", store.AccessToken())
	}
	if store.RefreshToken() != "refresh-1" {
		t.Fatalf("refresh token should be kept: %q", store.RefreshToken())
	}
}

func TestSecond401IsSurfaced(t *testing.T) {
	var dataCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
			return
		}
		atomic.AddInt32(&dataCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "still unauthorized"})
	}))
	defer srv.Close()

	store := newTestStore(t, "access-1", "refresh-1")
	client := New(srv.URL, store)

	err := client.Get(context.Background(), "/api/visas/", nil)
	if err == nil {
		t.Fatalf("expected error after replayed 401")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", apiErr.StatusCode)
	}
	if n := atomic.LoadInt32(&dataCalls); n != 2 {
		t.Fatalf("data calls = %d, want exactly one replay", n)
	}
}

func TestRefreshFailureForcesLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "refresh expired"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t, "access-1", "refresh-1")
	_ = store.SetSidebarCollapsed(true)

	loggedOut := false
	client := New(srv.URL, store)
	client.OnLogout = func() { loggedOut = true }

	err := client.Get(context.Background(), "/api/visas/", nil)
	if err == nil {
		t.Fatalf("expected the original 401 to surface")
	}
	if !loggedOut {
		t.Fatalf("logout hook not fired")
	}
	if store.AccessToken() != "" || store.RefreshToken() != "" {
		t.Fatalf("tokens should be cleared")
	}
	if !store.SidebarCollapsed() {
		t.Fatalf("UI preferences must survive sign-out")
	}
}

func TestRefreshEndpointItselfNeverRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t, "access-1", "refresh-1")
	client := New(srv.URL, store)

	err := client.PostJSON(context.Background(), "/api/token/refresh/", map[string]string{"refresh": "refresh-1"}, nil)
	if err == nil {
		t.Fatalf("expected 401 error")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("refresh endpoint called %d times, want 1 (no retry loop)", n)
	}
}

func TestReplaySendsIdenticalBody(t *testing.T) {
	bodies := []string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
			return
		}
		buf, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(buf))
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := newTestStore(t, "stale", "refresh-1")
	client := New(srv.URL, store)

	if err := client.PostJSON(context.Background(), "/api/suppliers/", map[string]string{"company_name": "Acme"}, nil); err != nil {
		t.Fatalf("PostJSON error: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("got %d request bodies, want 2", len(bodies))
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("replay body differs:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestFieldErrorsFlattened(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":   []string{"This field is required."},
			"country": []string{"This field is required."},
		})
	}))
	defer srv.Close()

	store := newTestStore(t, "access-1", "refresh-1")
	client := New(srv.URL, store)

	err := client.PostJSON(context.Background(), "/api/visas/", map[string]string{}, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if len(apiErr.Fields["title"]) != 1 || len(apiErr.Fields["country"]) != 1 {
		t.Fatalf("field errors not parsed: %+v", apiErr.Fields)
	}
	flat := apiErr.Flatten()
	if flat != "country: This field is required. title: This field is required." {
		t.Fatalf("flatten order/format wrong: %q", flat)
	}
}
