package handlers

import (
	"errors"
	"net/http"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	var gated domain.InvoiceNotAvailableError
	switch {
	case errors.As(err, &gated):
		// Status pesanan ditampilkan apa adanya di halaman "belum tersedia".
		c.JSON(http.StatusConflict, gin.H{
			"error":      "invoice belum tersedia",
			"code":       "invoice_not_available",
			"status":     gated.Status,
			"message":    "Invoice hanya dapat dibuat untuk pesanan yang telah lunas dan disetujui. Status pesanan ini adalah " + gated.Status + ".",
			"request_id": middleware.GetRequestID(c),
		})
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "terjadi kesalahan")
	}
}
