package handlers

import (
	"net/http"
	"strconv"

	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/fleet?q=&brand=all&type=all&sort=price-asc&visible=6
// Katalog publik: filter, sort, dan jendela "tampilkan lebih banyak".
func BrowseFleet(c *gin.Context) {
	visible, _ := strconv.Atoi(c.Query("visible"))

	svc := services.CatalogService{VehicleRepo: repositories.VehicleRepository{}}
	page, err := svc.Browse(services.FleetQuery{
		Query:   c.Query("q"),
		Brand:   c.Query("brand"),
		Type:    c.Query("type"),
		Sort:    c.DefaultQuery("sort", services.SortPriceAsc),
		Visible: visible,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/fleet/:id
func GetFleetVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	v, err := repositories.VehicleRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
