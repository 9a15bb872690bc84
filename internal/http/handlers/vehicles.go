package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	Code               string  `json:"code" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	Brand              string  `json:"brand" binding:"required"`
	Type               string  `json:"type" binding:"required"`
	Passengers         int     `json:"passengers"`
	Transmission       string  `json:"transmission" binding:"required"`
	Fuel               string  `json:"fuel"`
	Year               int     `json:"year"`
	PricePerDay        int64   `json:"pricePerDay" binding:"required"`
	Rating             float64 `json:"rating"`
	DiscountPercentage int     `json:"discountPercentage"`
	PhotoURL           string  `json:"photoUrl"`
}

func (p vehiclePayload) validate() error {
	switch p.Transmission {
	case domain.TransmissionManual, domain.TransmissionMatic:
	default:
		return domain.ValidationError{Field: "transmission", Msg: "harus Manual atau Matic"}
	}
	if p.PricePerDay <= 0 {
		return domain.ValidationError{Field: "pricePerDay", Msg: "harga per hari harus positif"}
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return domain.ValidationError{Field: "discountPercentage", Msg: "diskon harus 0-100"}
	}
	return nil
}

func (p vehiclePayload) toDomain() domain.Vehicle {
	return domain.Vehicle{
		Code:               strings.TrimSpace(p.Code),
		Name:               strings.TrimSpace(p.Name),
		Brand:              strings.TrimSpace(p.Brand),
		Type:               strings.TrimSpace(p.Type),
		Passengers:         p.Passengers,
		Transmission:       p.Transmission,
		Fuel:               p.Fuel,
		Year:               p.Year,
		PricePerDay:        p.PricePerDay,
		Rating:             p.Rating,
		DiscountPercentage: p.DiscountPercentage,
		PhotoURL:           p.PhotoURL,
	}
}

// GET /api/dashboard/vehicles?q=avanza&page=1&limit=50
func GetVehicles(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := repositories.VehicleRepository{}.List(c.Query("q"), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/dashboard/vehicles
func CreateVehicle(c *gin.Context) {
	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := payload.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	id, err := repositories.VehicleRepository{}.Create(payload.toDomain())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "kendaraan berhasil ditambahkan", "id": id})
}

// PUT /api/dashboard/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := payload.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := (repositories.VehicleRepository{}).Update(id, payload.toDomain()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil diupdate"})
}

// DELETE /api/dashboard/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	if err := (repositories.VehicleRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil dihapus"})
}
