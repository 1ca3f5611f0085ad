package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"backoffice/internal/domain/models"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetTokens("acc", "ref"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.SetAdminUser(&models.AdminUser{ID: 1, Username: "admin", IsStaff: true}); err != nil {
		t.Fatalf("set user: %v", err)
	}
	if err := store.SetSidebarCollapsed(true); err != nil {
		t.Fatalf("set sidebar: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.AccessToken() != "acc" || reopened.RefreshToken() != "ref" {
		t.Fatalf("tokens lost on reload")
	}
	u := reopened.AdminUser()
	if u == nil || u.Username != "admin" {
		t.Fatalf("admin user lost on reload: %+v", u)
	}
	if !reopened.SidebarCollapsed() {
		t.Fatalf("sidebar preference lost on reload")
	}
}

func TestSetTokensKeepsRefreshWhenEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetTokens("acc-1", "ref-1"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.SetTokens("acc-2", ""); err != nil {
		t.Fatalf("rotate access: %v", err)
	}
	if store.AccessToken() != "acc-2" {
		t.Fatalf("access token = %q", store.AccessToken())
	}
	if store.RefreshToken() != "ref-1" {
		t.Fatalf("refresh token = %q, want the original kept", store.RefreshToken())
	}
}

func TestClearTokensKeepsPreferences(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = store.SetTokens("acc", "ref")
	_ = store.SetAdminUser(&models.AdminUser{ID: 1, Username: "admin"})
	_ = store.SetSidebarCollapsed(true)

	if err := store.ClearTokens(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.AccessToken() != "" || store.RefreshToken() != "" || store.AdminUser() != nil {
		t.Fatalf("sign-out must drop tokens and user")
	}
	if !store.SidebarCollapsed() {
		t.Fatalf("sign-out must keep UI preferences")
	}
}

func TestOpenCorruptFileStartsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open corrupt file: %v", err)
	}
	if store.AccessToken() != "" {
		t.Fatalf("corrupt file should yield a fresh session")
	}
}

// unsignedJWT builds a token with only an exp claim, enough for the
// unverified expiry peek.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(claims)
	return fmt.Sprintf("%s.%s.sig", header, payload)
}

func TestAccessTokenExpired(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	now := time.Now()

	if !store.AccessTokenExpired(now) {
		t.Fatalf("empty token should count as expired")
	}

	_ = store.SetTokens(unsignedJWT(t, now.Add(time.Hour)), "")
	if store.AccessTokenExpired(now) {
		t.Fatalf("future exp reported expired")
	}

	_ = store.SetTokens(unsignedJWT(t, now.Add(-time.Hour)), "")
	if !store.AccessTokenExpired(now) {
		t.Fatalf("past exp not reported expired")
	}

	_ = store.SetTokens("garbage", "")
	if !store.AccessTokenExpired(now) {
		t.Fatalf("unparseable token should count as expired")
	}
}
