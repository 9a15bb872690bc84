package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type driverPayload struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"required"`
}

// GET /api/dashboard/drivers
func GetDrivers(c *gin.Context) {
	list, err := repositories.DriverRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/dashboard/drivers
func CreateDriver(c *gin.Context) {
	var payload driverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	id, err := repositories.DriverRepository{}.Create(domain.Driver{
		Name:    strings.TrimSpace(payload.Name),
		Address: payload.Address,
		Phone:   strings.TrimSpace(payload.Phone),
		Status:  domain.DriverAvailable,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "driver berhasil ditambahkan", "id": id})
}

// PUT /api/dashboard/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var payload driverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := (repositories.DriverRepository{}).Update(id, domain.Driver{
		Name:    strings.TrimSpace(payload.Name),
		Address: payload.Address,
		Phone:   strings.TrimSpace(payload.Phone),
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver berhasil diupdate"})
}

// DELETE /api/dashboard/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	if err := (repositories.DriverRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver berhasil dihapus"})
}
