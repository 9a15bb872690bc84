package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetFinanceReportTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(orderRowColumns)
	rows = orderRow(rows, 3, domain.StatusDone, domain.ServiceWithDriver, int64(9))
	rows = orderRow(rows, 2, domain.StatusApproved, domain.ServiceSelfDrive, nil)
	rows = orderRow(rows, 1, domain.StatusPending, domain.ServiceSelfDrive, nil)
	mock.ExpectQuery("SELECT(.+)WHERE YEAR\\(o.created_at\\)").WithArgs(2026, 8).WillReturnRows(rows)

	svc := ReportsService{OrderRepo: repositories.OrderRepository{DB: db}}

	report, err := svc.GetFinanceReport(FinanceFilter{Year: 2026, Month: 8})
	if err != nil {
		t.Fatalf("GetFinanceReport returned error: %v", err)
	}

	if report.TotalOrders != 3 {
		t.Fatalf("total orders: got %d", report.TotalOrders)
	}
	if report.PaidOrders != 2 {
		t.Fatalf("paid orders: got %d", report.PaidOrders)
	}
	if report.PendingCount != 1 {
		t.Fatalf("pending count: got %d", report.PendingCount)
	}
	// Pendapatan hanya dari order disetujui/selesai.
	if report.Revenue != 2*940000 {
		t.Fatalf("revenue: got %d want %d", report.Revenue, 2*940000)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetFinanceReportStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(orderRowColumns)
	rows = orderRow(rows, 2, domain.StatusApproved, domain.ServiceSelfDrive, nil)
	rows = orderRow(rows, 1, domain.StatusPending, domain.ServiceSelfDrive, nil)
	mock.ExpectQuery("SELECT(.+)WHERE YEAR\\(o.created_at\\)").WithArgs(2026, 8).WillReturnRows(rows)

	svc := ReportsService{OrderRepo: repositories.OrderRepository{DB: db}}

	report, err := svc.GetFinanceReport(FinanceFilter{Year: 2026, Month: 8, Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("GetFinanceReport returned error: %v", err)
	}
	if report.TotalOrders != 1 || len(report.Rows) != 1 {
		t.Fatalf("filter tidak bekerja: %+v", report)
	}
	if report.Rows[0].Status != domain.StatusPending {
		t.Fatalf("row status: got %q", report.Rows[0].Status)
	}
}

func TestWriteCSVLayout(t *testing.T) {
	report := FinanceReport{
		Rows: []FinanceRow{
			{
				OrderCode: "ORD-AAAA0001", Date: "2026-08-01 09:00:00",
				CustomerName: "Budi", VehicleName: "Avanza", Service: domain.ServiceWithDriver,
				Days: 2, BaseCost: 600000, DriverFee: 300000, MaticFee: 100000,
				Discount: 60000, Total: 940000,
				Status: domain.StatusApproved, PaymentMethod: domain.PaymentBankTransfer,
			},
		},
		Revenue: 940000,
	}

	var buf bytes.Buffer
	if err := (ReportsService{}).WriteCSV(&buf, report); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 1 row + total, got %d records", len(records))
	}

	if records[0][0] != "Kode Order" || records[0][10] != "Total" {
		t.Fatalf("header wrong: %v", records[0])
	}
	if records[1][0] != "ORD-AAAA0001" || records[1][10] != "940000" {
		t.Fatalf("data row wrong: %v", records[1])
	}

	total := records[2]
	if total[0] != "TOTAL" || total[10] != "940000" {
		t.Fatalf("total row wrong: %v", total)
	}
}
