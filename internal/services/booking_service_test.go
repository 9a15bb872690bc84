package services

import (
	"strings"
	"testing"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var vehicleRowColumns = []string{
	"id", "vehicle_code", "name", "brand", "type", "passengers",
	"transmission", "fuel", "year", "price_per_day", "rating",
	"discount_percentage", "photo_url",
}

func TestCreateOrderPersistsQuoteSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.+)FROM vehicles WHERE id=").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(vehicleRowColumns).
			AddRow(3, "AVZ-01", "Avanza", "Toyota", "MPV", 7,
				domain.TransmissionMatic, "Bensin", 2022, 300000, 4.5, 10, ""))
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(42, 1))

	svc := BookingService{
		VehicleRepo: repositories.VehicleRepository{DB: db},
		OrderRepo:   repositories.OrderRepository{DB: db},
	}

	order, err := svc.CreateOrder(CreateOrderInput{
		VehicleID:     3,
		StartDate:     "2026-08-01",
		EndDate:       "2026-08-03",
		Service:       "dengan-supir",
		CustomerName:  "  Budi   Santoso ",
		CustomerPhone: "0812",
		PaymentMethod: domain.PaymentBankTransfer,
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if order.ID != 42 {
		t.Fatalf("order id: got %d", order.ID)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("status: got %q", order.Status)
	}
	if order.CustomerName != "Budi Santoso" {
		t.Fatalf("customer name not normalized: %q", order.CustomerName)
	}
	if order.Days != 2 {
		t.Fatalf("days from dates: got %d want 2", order.Days)
	}
	// Snapshot harga ikut tersimpan di order.
	if order.BaseCost != 600000 || order.MaticFee != 100000 ||
		order.DriverFee != 300000 || order.DiscountAmount != 60000 || order.Total != 940000 {
		t.Fatalf("snapshot salah: %+v", order)
	}
	if !strings.HasPrefix(order.OrderCode, "ORD-") || len(order.OrderCode) != len("ORD-")+8 {
		t.Fatalf("order code format: %q", order.OrderCode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteForDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.+)FROM vehicles WHERE id=").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(vehicleRowColumns).
			AddRow(3, "AVZ-01", "Avanza", "Toyota", "MPV", 7,
				domain.TransmissionMatic, "Bensin", 2022, 300000, 4.5, 10, ""))

	svc := BookingService{VehicleRepo: repositories.VehicleRepository{DB: db}}

	view, err := svc.QuoteFor(QuoteInput{
		VehicleID: 3,
		StartDate: "2026-08-01",
		EndDate:   "2026-08-03",
		Service:   "dengan-supir",
	})
	if err != nil {
		t.Fatalf("QuoteFor returned error: %v", err)
	}
	if view.Days != 2 || view.Total != 940000 {
		t.Fatalf("quote wrong: %+v", view.Quote)
	}
	if view.RentalPeriod != "2026-08-01 s/d 2026-08-03" {
		t.Fatalf("rental period: got %q", view.RentalPeriod)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := BookingService{}

	cases := []struct {
		name string
		in   CreateOrderInput
	}{
		{"nama kosong", CreateOrderInput{CustomerPhone: "0812", PaymentMethod: domain.PaymentQRIS}},
		{"telepon kosong", CreateOrderInput{CustomerName: "Budi", PaymentMethod: domain.PaymentQRIS}},
		{"metode tidak dikenal", CreateOrderInput{CustomerName: "Budi", CustomerPhone: "0812", PaymentMethod: "Cash"}},
		{"tanggal terbalik", CreateOrderInput{
			CustomerName: "Budi", CustomerPhone: "0812", PaymentMethod: domain.PaymentQRIS,
			StartDate: "2026-08-05", EndDate: "2026-08-01",
		}},
	}

	for _, c := range cases {
		if _, err := svc.CreateOrder(c.in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
		}
	}
}

func TestNormalizeService(t *testing.T) {
	for _, raw := range []string{"dengan-supir", "Dengan Supir", "with-driver"} {
		if got := normalizeService(raw); got != domain.ServiceWithDriver {
			t.Fatalf("%q: got %q", raw, got)
		}
	}
	for _, raw := range []string{"", "tanpa-supir", "self-drive"} {
		if got := normalizeService(raw); got != domain.ServiceSelfDrive {
			t.Fatalf("%q: got %q", raw, got)
		}
	}
}

func TestNewOrderCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := NewOrderCode()
		if !strings.HasPrefix(code, "ORD-") {
			t.Fatalf("prefix: %q", code)
		}
		suffix := strings.TrimPrefix(code, "ORD-")
		if len(suffix) != 8 || suffix != strings.ToUpper(suffix) {
			t.Fatalf("suffix: %q", suffix)
		}
		if seen[code] {
			t.Fatalf("duplicate code in 50 draws: %q", code)
		}
		seen[code] = true
	}
}
