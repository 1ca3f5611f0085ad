package handlers

import (
	"net/http"
	"strconv"
	"sync"

	intconfig "backoffice/internal/config"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	confMu sync.RWMutex
	conf   intconfig.Env
)

// Configure stores the environment the handlers read secrets and paths from.
func Configure(env intconfig.Env) {
	confMu.Lock()
	defer confMu.Unlock()
	conf = env
}

func envConf() intconfig.Env {
	confMu.RLock()
	defer confMu.RUnlock()
	return conf
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// pathID parses the :id route segment; zero and negatives are rejected.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}
