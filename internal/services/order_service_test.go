package services

import (
	"testing"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var orderRowColumns = []string{
	"id", "order_code", "vehicle_id", "vehicle_name", "vehicle_type",
	"transmission", "service", "customer_name", "customer_phone",
	"payment_method", "payment_proof", "driver_id", "driver_name",
	"status", "days", "start_date", "end_date",
	"base_cost", "matic_fee", "driver_fee", "discount_amount", "total",
	"created_at",
}

func orderRow(mockRows *sqlmock.Rows, id int64, status, service string, driverID any) *sqlmock.Rows {
	return mockRows.AddRow(
		id, "ORD-AAAA0001", 3, "Avanza", "MPV",
		domain.TransmissionMatic, service, "Budi", "0812",
		domain.PaymentBankTransfer, "", driverID, "",
		status, 2, "2026-08-01", "2026-08-03",
		600000, 100000, 300000, 60000, 940000,
		"2026-08-01 09:00:00",
	)
}

func TestChangeStatusDoneReleasesDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := orderRow(sqlmock.NewRows(orderRowColumns), 1, domain.StatusApproved, domain.ServiceWithDriver, int64(9))
	mock.ExpectQuery("SELECT(.+)FROM orders o LEFT JOIN drivers d").WithArgs(int64(1)).WillReturnRows(rows)
	mock.ExpectExec("UPDATE orders SET status").WithArgs(domain.StatusDone, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE drivers SET status").WithArgs(domain.DriverAvailable, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := OrderService{
		OrderRepo:  repositories.OrderRepository{DB: db},
		DriverRepo: repositories.DriverRepository{DB: db},
	}

	order, err := svc.ChangeStatus(1, domain.StatusDone)
	if err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	if order.Status != domain.StatusDone {
		t.Fatalf("status: got %q", order.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangeStatusRejectsIllegalTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := orderRow(sqlmock.NewRows(orderRowColumns), 1, domain.StatusDone, domain.ServiceSelfDrive, nil)
	mock.ExpectQuery("SELECT(.+)FROM orders o LEFT JOIN drivers d").WithArgs(int64(1)).WillReturnRows(rows)

	svc := OrderService{OrderRepo: repositories.OrderRepository{DB: db}}

	_, err = svc.ChangeStatus(1, domain.StatusApproved)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	svc := OrderService{}
	_, err := svc.ChangeStatus(1, "lunas")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAssignDriverHappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := orderRow(sqlmock.NewRows(orderRowColumns), 1, domain.StatusPending, domain.ServiceWithDriver, nil)
	mock.ExpectQuery("SELECT(.+)FROM orders o LEFT JOIN drivers d").WithArgs(int64(1)).WillReturnRows(rows)
	mock.ExpectQuery("SELECT(.+)FROM drivers").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone", "status"}).
			AddRow(9, "Pak Joko", "", "0813", domain.DriverAvailable))
	mock.ExpectExec("UPDATE orders SET driver_id").WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE drivers SET status").WithArgs(domain.DriverAssigned, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := OrderService{
		OrderRepo:  repositories.OrderRepository{DB: db},
		DriverRepo: repositories.DriverRepository{DB: db},
	}

	order, err := svc.AssignDriver(1, 9)
	if err != nil {
		t.Fatalf("AssignDriver returned error: %v", err)
	}
	if order.DriverID == nil || *order.DriverID != 9 {
		t.Fatalf("driver id not set: %+v", order.DriverID)
	}
	if order.DriverName != "Pak Joko" {
		t.Fatalf("driver name: got %q", order.DriverName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignDriverRejectsSelfDriveOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := orderRow(sqlmock.NewRows(orderRowColumns), 1, domain.StatusPending, domain.ServiceSelfDrive, nil)
	mock.ExpectQuery("SELECT(.+)FROM orders o LEFT JOIN drivers d").WithArgs(int64(1)).WillReturnRows(rows)

	svc := OrderService{OrderRepo: repositories.OrderRepository{DB: db}}

	_, err = svc.AssignDriver(1, 9)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestAssignDriverRejectsBusyDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := orderRow(sqlmock.NewRows(orderRowColumns), 1, domain.StatusPending, domain.ServiceWithDriver, nil)
	mock.ExpectQuery("SELECT(.+)FROM orders o LEFT JOIN drivers d").WithArgs(int64(1)).WillReturnRows(rows)
	mock.ExpectQuery("SELECT(.+)FROM drivers").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone", "status"}).
			AddRow(9, "Pak Joko", "", "0813", domain.DriverAssigned))

	svc := OrderService{
		OrderRepo:  repositories.OrderRepository{DB: db},
		DriverRepo: repositories.DriverRepository{DB: db},
	}

	_, err = svc.AssignDriver(1, 9)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
