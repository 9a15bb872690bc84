package handlers

import (
	"net/http"
	"strconv"

	"sewamobil-backend/internal/http/middleware"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/orders?status=pending
func GetOrders(c *gin.Context) {
	list, err := repositories.OrderRepository{}.List(c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/dashboard/orders/:id
func GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	order, err := repositories.OrderRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/track/:code
// Pelanggan melacak pesanannya dengan kode order dari halaman sukses.
func TrackOrder(c *gin.Context) {
	order, err := repositories.OrderRepository{}.GetByCode(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/dashboard/orders/:id/status
func ChangeOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.OrderService{
		OrderRepo:  repositories.OrderRepository{},
		DriverRepo: repositories.DriverRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	order, err := svc.ChangeStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status order diperbarui", "order": order})
}

type assignDriverRequest struct {
	DriverID int64 `json:"driverId" binding:"required"`
}

// PUT /api/dashboard/orders/:id/driver
func AssignOrderDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var req assignDriverRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.OrderService{
		OrderRepo:  repositories.OrderRepository{},
		DriverRepo: repositories.DriverRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	order, err := svc.AssignDriver(id, req.DriverID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver ditugaskan", "order": order})
}
