package handlers

import (
	"net/http"

	"sewamobil-backend/internal/ai"

	"github.com/gin-gonic/gin"
)

// POST /api/dashboard/promo-text
// Teks promosi slider dari layanan AI eksternal.
func GeneratePromoText(c *gin.Context) {
	if !aiClient.Enabled() {
		RespondError(c, http.StatusServiceUnavailable, "layanan AI belum dikonfigurasi", nil)
		return
	}

	var req ai.PromoTextInput
	if !BindJSONOrError(c, &req) {
		return
	}

	text, err := aiClient.GeneratePromoText(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promoText": text})
}
