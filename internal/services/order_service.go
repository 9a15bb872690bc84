package services

import (
	"fmt"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/utils"
)

// OrderService menjalankan alur status pesanan di back-office.
type OrderService struct {
	OrderRepo  repositories.OrderRepository
	DriverRepo repositories.DriverRepository
	RequestID  string
}

// ChangeStatus moves an order through the workflow. Menyelesaikan order
// yang punya driver sekaligus membebaskan driver tersebut.
func (s OrderService) ChangeStatus(orderID int64, newStatus string) (domain.Order, error) {
	if !domain.ValidStatus(newStatus) {
		return domain.Order{}, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
	}

	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if !domain.CanTransition(order.Status, newStatus) {
		return domain.Order{}, domain.ConflictError{
			Resource: "order",
			Msg:      fmt.Sprintf("transisi %s -> %s tidak diizinkan", order.Status, newStatus),
		}
	}

	if err := s.OrderRepo.UpdateStatus(orderID, newStatus); err != nil {
		return domain.Order{}, err
	}
	order.Status = newStatus

	if newStatus == domain.StatusDone && order.DriverID != nil {
		if err := s.DriverRepo.UpdateStatus(*order.DriverID, domain.DriverAvailable); err != nil {
			// Status order sudah berubah; kegagalan di sini harus terlihat.
			utils.LogEvent(s.RequestID, "order", "release_driver", "gagal: "+err.Error())
			return domain.Order{}, err
		}
		utils.LogEvent(s.RequestID, "order", "release_driver",
			fmt.Sprintf("order_id=%d driver_id=%d", orderID, *order.DriverID))
	}

	utils.LogEvent(s.RequestID, "order", "change_status",
		fmt.Sprintf("order_id=%d status=%s", orderID, newStatus))
	return order, nil
}

// AssignDriver binds an available driver to a with-driver order that has
// not been approved yet.
func (s OrderService) AssignDriver(orderID, driverID int64) (domain.Order, error) {
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if order.Service != domain.ServiceWithDriver {
		return domain.Order{}, domain.ConflictError{Resource: "order", Msg: "pesanan tanpa supir tidak butuh driver"}
	}
	if order.Status == domain.StatusDone || order.Status == domain.StatusRejected {
		return domain.Order{}, domain.ConflictError{Resource: "order", Msg: "pesanan sudah " + order.Status}
	}

	driver, err := s.DriverRepo.GetByID(driverID)
	if err != nil {
		return domain.Order{}, err
	}
	if driver.Status != domain.DriverAvailable {
		return domain.Order{}, domain.ConflictError{Resource: "driver", Msg: driver.Name + " sedang bertugas"}
	}

	if err := s.OrderRepo.AssignDriver(orderID, driverID); err != nil {
		return domain.Order{}, err
	}
	if err := s.DriverRepo.UpdateStatus(driverID, domain.DriverAssigned); err != nil {
		return domain.Order{}, err
	}

	// Driver lama (kalau ada) dibebaskan lagi.
	if order.DriverID != nil && *order.DriverID != driverID {
		if err := s.DriverRepo.UpdateStatus(*order.DriverID, domain.DriverAvailable); err != nil {
			return domain.Order{}, err
		}
	}

	order.DriverID = &driverID
	order.DriverName = driver.Name

	utils.LogEvent(s.RequestID, "order", "assign_driver",
		fmt.Sprintf("order_id=%d driver_id=%d", orderID, driverID))
	return order, nil
}
