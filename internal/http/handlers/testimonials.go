package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type testimonialPayload struct {
	CustomerName string `json:"customerName" binding:"required"`
	VehicleName  string `json:"vehicleName" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
}

// GET /api/testimonials
func GetTestimonials(c *gin.Context) {
	list, err := repositories.TestimonialRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/testimonials
func CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		RespondDomainError(c, domain.ValidationError{Field: "rating", Msg: "rating harus 1-5"})
		return
	}

	id, err := repositories.TestimonialRepository{}.Create(domain.Testimonial{
		CustomerName: strings.TrimSpace(payload.CustomerName),
		VehicleName:  strings.TrimSpace(payload.VehicleName),
		Rating:       payload.Rating,
		Comment:      strings.TrimSpace(payload.Comment),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "testimoni terkirim, terima kasih", "id": id})
}

// DELETE /api/dashboard/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	if err := (repositories.TestimonialRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimoni dihapus"})
}
