package handlers

import (
	"net/http"

	"sewamobil-backend/internal/http/middleware"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	VehicleID int64  `json:"vehicleId" binding:"required"`
	Days      int    `json:"days"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Service   string `json:"service"`
}

// POST /api/quotes
// Rincian biaya untuk halaman pembayaran; tidak menyimpan apa pun.
func GetQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{
		VehicleRepo: repositories.VehicleRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	quote, err := svc.QuoteFor(services.QuoteInput{
		VehicleID: req.VehicleID,
		Days:      req.Days,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Service:   req.Service,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

type createOrderRequest struct {
	VehicleID     int64  `json:"vehicleId" binding:"required"`
	Days          int    `json:"days"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Service       string `json:"service"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	PaymentProof  string `json:"paymentProof"`
}

// POST /api/orders
// Konfirmasi pembayaran pelanggan; order dibuat pending dengan snapshot
// harga saat ini.
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{
		VehicleRepo: repositories.VehicleRepository{},
		OrderRepo:   repositories.OrderRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	order, err := svc.CreateOrder(services.CreateOrderInput{
		VehicleID:     req.VehicleID,
		Days:          req.Days,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Service:       req.Service,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		PaymentProof:  req.PaymentProof,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "pesanan berhasil dibuat", "order": order})
}

// POST /api/uploads/proof (multipart, field "file")
func UploadProof(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file bukti pembayaran wajib diunggah", err)
		return
	}

	src, err := file.Open()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membaca file", err)
		return
	}
	defer src.Close()

	ref, err := proofStore.SaveProof(file.Filename, file.Size, src)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bukti pembayaran tersimpan", "proof": ref})
}
