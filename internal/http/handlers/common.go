package handlers

import (
	"net/http"

	"sewamobil-backend/internal/ai"
	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/http/middleware"
	"sewamobil-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

var (
	env        intconfig.Env
	aiClient   *ai.Client
	proofStore storage.Store
)

// Configure injects process-wide dependencies before routes are mounted.
func Configure(e intconfig.Env, client *ai.Client, store storage.Store) {
	env = e
	aiClient = client
	proofStore = store
}

// RespondError sends standard error payload with request_id included.
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
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}
