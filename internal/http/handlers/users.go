package handlers

import (
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func userRepo() repositories.UserRepository {
	return repositories.UserRepository{DB: intconfig.DB}
}

// GET /api/users/
func GetUsers(c *gin.Context) {
	out, err := userRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/users/:id/
func GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := userRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func validateUserPayload(u models.AdminUser, isCreate bool) error {
	if strings.TrimSpace(u.Username) == "" {
		return domain.ValidationError{Field: "username", Msg: "username is required"}
	}
	if !utils.ValidUsername(u.Username) {
		return domain.ValidationError{Field: "username", Msg: "username may contain letters, digits and @/./+/-/_ only"}
	}
	if isCreate && len(u.Password) < 8 {
		return domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
	}
	if !isCreate && u.Password != "" && len(u.Password) < 8 {
		return domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
	}
	return nil
}

// POST /api/users/
func CreateUser(c *gin.Context) {
	var u models.AdminUser
	if !BindJSONOrError(c, &u) {
		return
	}
	if err := validateUserPayload(u, true); err != nil {
		RespondDomainError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	id, err := userRepo().Create(u, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}
	u.ID = id
	u.Password = ""
	utils.LogEvent(middleware.GetRequestID(c), "users", "create", u.Username)
	c.JSON(http.StatusCreated, u)
}

// PUT /api/users/:id/
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var u models.AdminUser
	if !BindJSONOrError(c, &u) {
		return
	}
	if err := validateUserPayload(u, false); err != nil {
		RespondDomainError(c, err)
		return
	}
	u.ID = id

	hash := ""
	if u.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
			return
		}
		hash = string(h)
	}

	if err := userRepo().Update(u, hash); err != nil {
		RespondDomainError(c, err)
		return
	}
	u.Password = ""
	utils.LogEvent(middleware.GetRequestID(c), "users", "update", u.Username)
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id/
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if claims, ok := middleware.GetAuthClaims(c); ok && claims.UserID == id {
		RespondError(c, http.StatusBadRequest, "you cannot delete your own account", nil)
		return
	}
	if err := userRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "users", "delete", c.Param("id"))
	c.Status(http.StatusNoContent)
}
