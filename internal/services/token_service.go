package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// TokenService issues and verifies the HS256 access/refresh pair the admin
// session runs on.
type TokenService struct {
	Secret []byte
	Now    func() time.Time
}

// AccessClaims is what the auth middleware gets back from a verified token.
type AccessClaims struct {
	UserID   int64
	Username string
	IsStaff  bool
}

func (s TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s TokenService) IssueAccess(userID int64, username string, isStaff bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"is_staff": isStaff,
		"exp":      s.now().Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// IssueRefresh mints the long-lived token. token_type distinguishes it from
// an access token so one can never stand in for the other.
func (s TokenService) IssueRefresh(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": "refresh",
		"exp":        s.now().Add(refreshTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s TokenService) ParseAccess(raw string) (AccessClaims, error) {
	var out AccessClaims
	claims, err := s.parse(raw)
	if err != nil {
		return out, err
	}
	if t, _ := claims["token_type"].(string); t == "refresh" {
		return out, fmt.Errorf("refresh token used as access token")
	}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int64(v)
	}
	out.Username, _ = claims["username"].(string)
	out.IsStaff, _ = claims["is_staff"].(bool)
	return out, nil
}

// ParseRefresh verifies a refresh token and returns the subject user id.
func (s TokenService) ParseRefresh(raw string) (int64, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return 0, err
	}
	if t, _ := claims["token_type"].(string); t != "refresh" {
		return 0, fmt.Errorf("not a refresh token")
	}
	v, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("refresh token missing user_id")
	}
	return int64(v), nil
}

func (s TokenService) parse(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
