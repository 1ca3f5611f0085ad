package services

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := TokenService{Secret: []byte("test-secret"), Now: fixedClock(now)}

	raw, err := svc.IssueAccess(7, "admin", true)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	claims, err := svc.ParseAccess(raw)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" || !claims.IsStaff {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := TokenService{Secret: []byte("test-secret"), Now: fixedClock(issued)}

	raw, err := svc.IssueAccess(7, "admin", true)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	later := TokenService{Secret: []byte("test-secret"), Now: fixedClock(issued.Add(31 * time.Minute))}
	if _, err := later.ParseAccess(raw); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestRefreshTokenCannotActAsAccess(t *testing.T) {
	svc := TokenService{Secret: []byte("test-secret")}
	refresh, err := svc.IssueRefresh(7)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	if _, err := svc.ParseAccess(refresh); err == nil {
		t.Fatalf("refresh token accepted as access token")
	}
	id, err := svc.ParseRefresh(refresh)
	if err != nil || id != 7 {
		t.Fatalf("parse refresh = %d, %v", id, err)
	}
}

func TestAccessTokenCannotActAsRefresh(t *testing.T) {
	svc := TokenService{Secret: []byte("test-secret")}
	access, err := svc.IssueAccess(7, "admin", true)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := svc.ParseRefresh(access); err == nil {
		t.Fatalf("access token accepted as refresh token")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	svc := TokenService{Secret: []byte("test-secret")}
	raw, err := svc.IssueAccess(7, "admin", true)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	other := TokenService{Secret: []byte("different-secret")}
	if _, err := other.ParseAccess(raw); err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
}
