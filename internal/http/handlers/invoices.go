package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sewamobil-backend/internal/ai"
	"sewamobil-backend/internal/http/middleware"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/services"
	"sewamobil-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func invoiceService(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		OrderRepo:   repositories.OrderRepository{},
		CompanyName: env.CompanyName,
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/invoices/:id/share
// Tampilan publik (tautan bagikan); tanpa anotasi validasi.
func GetInvoiceShare(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	view, err := invoiceService(c).Render(id, "")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/dashboard/orders/:id/invoice
func GetInvoiceAdmin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	view, err := invoiceService(c).Render(id, middleware.SessionUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/invoices/:id/pdf
func GetInvoicePDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	pdf, filename, err := invoiceService(c).RenderPDF(id, middleware.SessionUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/dashboard/orders/:id/invoice-image
// Membuat gambar invoice lewat layanan AI eksternal; hasilnya data URI.
func GenerateInvoiceImage(c *gin.Context) {
	if !aiClient.Enabled() {
		RespondError(c, http.StatusServiceUnavailable, "layanan AI belum dikonfigurasi", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	view, err := invoiceService(c).Render(id, middleware.SessionUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	items := make([]ai.InvoiceImageItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, ai.InvoiceImageItem{
			Description: line.Description,
			Amount:      utils.FormatRupiah(line.Amount),
		})
	}

	dataURI, err := aiClient.GenerateInvoiceImage(c.Request.Context(), ai.InvoiceImageInput{
		OrderID:      view.OrderCode,
		CustomerName: view.CustomerName,
		Date:         utils.FormatDate(time.Now()),
		Items:        items,
		Total:        utils.FormatRupiah(view.Total),
		Status:       view.Status,
		CompanyName:  env.CompanyName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoiceImageDataUri": dataURI})
}
