package handlers

import (
	"net/http"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func tokenService() services.TokenService {
	return services.TokenService{Secret: []byte(envConf().JWTSecret)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin-login/
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{DB: intconfig.DB}
	user, hash, err := repo.GetCredentials(req.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if !user.IsStaff {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
		return
	}

	tokens := tokenService()
	access, err := tokens.IssueAccess(user.ID, user.Username, user.IsStaff)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}
	refresh, err := tokens.IssueRefresh(user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	_ = repo.TouchLastLogin(user.ID)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "admin_login", "username="+user.Username)

	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"refresh": refresh,
		"user":    user,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// POST /api/token/refresh/
//
// Accepts the long-lived refresh token and mints a fresh access token. The
// response shape matches what the admin client's retry path expects.
func TokenRefresh(c *gin.Context) {
	var req refreshRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	tokens := tokenService()
	userID, err := tokens.ParseRefresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	access, err := tokens.IssueAccess(user.ID, user.Username, user.IsStaff)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}
