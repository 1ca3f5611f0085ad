package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"backoffice/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the back-office session: token pair, the signed-in admin user
// and the sidebar-collapsed flag. Everything persists to a single JSON file
// so a restart behaves like a browser reload.
type Store struct {
	mu   sync.Mutex
	path string
	data persisted
}

type persisted struct {
	AccessToken      string             `json:"access_token,omitempty"`
	RefreshToken     string             `json:"refresh_token,omitempty"`
	AdminUser        *models.AdminUser  `json:"admin_user,omitempty"`
	SidebarCollapsed bool               `json:"sidebar_collapsed"`
}

// Open hydrates the store from path. A missing file is a fresh session.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// corrupt session file: start clean rather than refuse to boot
		s.data = persisted{}
	}
	return s, nil
}

func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AccessToken
}

func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.RefreshToken
}

func (s *Store) AdminUser() *models.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.AdminUser == nil {
		return nil
	}
	u := *s.data.AdminUser
	return &u
}

func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.SidebarCollapsed
}

// SetTokens stores a fresh token pair. An empty refresh keeps the old one,
// matching the refresh flow which only rotates the access token.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = access
	if refresh != "" {
		s.data.RefreshToken = refresh
	}
	return s.flush()
}

func (s *Store) SetAdminUser(u *models.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AdminUser = u
	return s.flush()
}

func (s *Store) SetSidebarCollapsed(collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SidebarCollapsed = collapsed
	return s.flush()
}

// ClearTokens is the sign-out contract: tokens and admin user go, UI
// preferences stay.
func (s *Store) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = ""
	s.data.RefreshToken = ""
	s.data.AdminUser = nil
	return s.flush()
}

// AccessTokenExpired peeks at the stored access token's exp claim without
// verifying the signature. An unparseable token counts as expired.
func (s *Store) AccessTokenExpired(now time.Time) bool {
	tok := s.AccessToken()
	if tok == "" {
		return true
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}

func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}
