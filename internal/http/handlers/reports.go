package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/reports/finance?year=2026&month=8&status=&format=csv
func GetFinanceReport(c *gin.Context) {
	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		RespondError(c, http.StatusBadRequest, "bulan harus 1-12", nil)
		return
	}

	svc := services.ReportsService{OrderRepo: repositories.OrderRepository{}}
	report, err := svc.GetFinanceReport(services.FinanceFilter{
		Year:   year,
		Month:  month,
		Status: c.Query("status"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if strings.EqualFold(c.Query("format"), "csv") {
		filename := fmt.Sprintf("laporan_keuangan_%02d_%d.csv", month, year)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := svc.WriteCSV(c.Writer, report); err != nil {
			// Header sudah terkirim; cukup catat.
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
