package services

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"
)

type FinanceFilter struct {
	Year   int
	Month  int // 1-12
	Status string
}

type FinanceRow struct {
	OrderCode     string `json:"orderCode"`
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	VehicleName   string `json:"vehicleName"`
	Service       string `json:"service"`
	Days          int    `json:"days"`
	BaseCost      int64  `json:"baseCost"`
	DriverFee     int64  `json:"driverFee"`
	MaticFee      int64  `json:"maticFee"`
	Discount      int64  `json:"discount"`
	Total         int64  `json:"total"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
}

type FinanceReport struct {
	Rows []FinanceRow `json:"rows"`

	Revenue      int64 `json:"revenue"`
	PaidOrders   int   `json:"paidOrders"`
	PendingCount int   `json:"pendingCount"`
	TotalOrders  int   `json:"totalOrders"`
}

type ReportsService struct {
	OrderRepo repositories.OrderRepository
}

// GetFinanceReport joins order snapshots into the monthly report.
// Pendapatan dihitung dari order disetujui/selesai saja.
func (s ReportsService) GetFinanceReport(f FinanceFilter) (FinanceReport, error) {
	orders, err := s.OrderRepo.ListByPeriod(f.Year, f.Month)
	if err != nil {
		return FinanceReport{}, err
	}

	report := FinanceReport{Rows: []FinanceRow{}}
	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		report.Rows = append(report.Rows, FinanceRow{
			OrderCode:     o.OrderCode,
			Date:          o.CreatedAt,
			CustomerName:  o.CustomerName,
			VehicleName:   o.VehicleName,
			Service:       o.Service,
			Days:          o.Days,
			BaseCost:      o.BaseCost,
			DriverFee:     o.DriverFee,
			MaticFee:      o.MaticFee,
			Discount:      o.DiscountAmount,
			Total:         o.Total,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
		})
		report.TotalOrders++
		switch o.Status {
		case domain.StatusApproved, domain.StatusDone:
			report.Revenue += o.Total
			report.PaidOrders++
		case domain.StatusPending:
			report.PendingCount++
		}
	}
	return report, nil
}

const csvBufferSize = 32 * 1024

// WriteCSV streams the report as the downloadable spreadsheet.
func (s ReportsService) WriteCSV(w io.Writer, report FinanceReport) error {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	cw := csv.NewWriter(buf)
	cw.UseCRLF = true

	header := []string{
		"Kode Order", "Tanggal", "Pelanggan", "Mobil", "Layanan", "Hari",
		"Biaya Sewa", "Biaya Supir", "Biaya Matic", "Diskon", "Total",
		"Status", "Metode Pembayaran",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range report.Rows {
		rec := []string{
			row.OrderCode,
			row.Date,
			row.CustomerName,
			row.VehicleName,
			row.Service,
			strconv.Itoa(row.Days),
			strconv.FormatInt(row.BaseCost, 10),
			strconv.FormatInt(row.DriverFee, 10),
			strconv.FormatInt(row.MaticFee, 10),
			strconv.FormatInt(row.Discount, 10),
			strconv.FormatInt(row.Total, 10),
			row.Status,
			row.PaymentMethod,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	totalRow := []string{
		"TOTAL", "", "", "", "", "", "", "", "", "",
		strconv.FormatInt(report.Revenue, 10), "", "",
	}
	if err := cw.Write(totalRow); err != nil {
		return err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
