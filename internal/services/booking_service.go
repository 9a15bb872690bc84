package services

import (
	"fmt"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/utils"

	"github.com/google/uuid"
)

// BookingService membuat order dari konfirmasi pembayaran pelanggan.
// Harga dihitung sekali di sini dan disimpan sebagai snapshot pada order.
type BookingService struct {
	VehicleRepo repositories.VehicleRepository
	OrderRepo   repositories.OrderRepository
	RequestID   string
}

type CreateOrderInput struct {
	VehicleID     int64
	Days          int
	StartDate     string
	EndDate       string
	Service       string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	PaymentProof  string
}

type QuoteInput struct {
	VehicleID int64
	Days      int
	StartDate string
	EndDate   string
	Service   string
}

// QuoteView is the breakdown shown on the payment page.
type QuoteView struct {
	domain.Quote
	RentalPeriod string `json:"rentalPeriod"`
}

// QuoteFor computes the breakdown without persisting anything.
func (s BookingService) QuoteFor(in QuoteInput) (QuoteView, error) {
	days, err := rentalDays(in.Days, in.StartDate, in.EndDate)
	if err != nil {
		return QuoteView{}, err
	}

	v, err := s.VehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return QuoteView{}, err
	}

	quote := domain.ComputeQuote(v, days, normalizeService(in.Service))

	period := fmt.Sprintf("%d hari", quote.Days)
	if strings.TrimSpace(in.StartDate) != "" && strings.TrimSpace(in.EndDate) != "" {
		period = fmt.Sprintf("%s s/d %s", strings.TrimSpace(in.StartDate), strings.TrimSpace(in.EndDate))
	}

	return QuoteView{Quote: quote, RentalPeriod: period}, nil
}

// rentalDays derives the billed day count. Tanggal menang atas field days
// kalau keduanya dikirim.
func rentalDays(days int, startDate, endDate string) (int, error) {
	if startDate != "" && endDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return 0, domain.ValidationError{Field: "startDate", Msg: "format tanggal harus YYYY-MM-DD"}
		}
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return 0, domain.ValidationError{Field: "endDate", Msg: "format tanggal harus YYYY-MM-DD"}
		}
		if end.Before(start) {
			return 0, domain.ValidationError{Field: "endDate", Msg: "tanggal selesai sebelum tanggal mulai"}
		}
		days = int(end.Sub(start).Hours() / 24)
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

func (s BookingService) CreateOrder(in CreateOrderInput) (domain.Order, error) {
	in.CustomerName = utils.NormalizeSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if in.CustomerName == "" {
		return domain.Order{}, domain.ValidationError{Field: "customerName", Msg: "nama wajib diisi"}
	}
	if in.CustomerPhone == "" {
		return domain.Order{}, domain.ValidationError{Field: "customerPhone", Msg: "nomor telepon wajib diisi"}
	}
	switch in.PaymentMethod {
	case domain.PaymentBankTransfer, domain.PaymentQRIS:
	default:
		return domain.Order{}, domain.ValidationError{Field: "paymentMethod", Msg: "metode pembayaran tidak dikenal"}
	}

	service := normalizeService(in.Service)

	days, err := rentalDays(in.Days, strings.TrimSpace(in.StartDate), strings.TrimSpace(in.EndDate))
	if err != nil {
		return domain.Order{}, err
	}

	vehicle, err := s.VehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return domain.Order{}, err
	}

	quote := domain.ComputeQuote(vehicle, days, service)

	order := domain.Order{
		OrderCode: NewOrderCode(),

		VehicleID:    vehicle.ID,
		VehicleName:  vehicle.Name,
		VehicleType:  vehicle.Type,
		Transmission: vehicle.Transmission,
		Service:      service,

		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		PaymentMethod: in.PaymentMethod,
		PaymentProof:  strings.TrimSpace(in.PaymentProof),

		Status: domain.StatusPending,

		Days:           quote.Days,
		StartDate:      strings.TrimSpace(in.StartDate),
		EndDate:        strings.TrimSpace(in.EndDate),
		BaseCost:       quote.BaseCost,
		MaticFee:       quote.MaticFee,
		DriverFee:      quote.DriverFee,
		DiscountAmount: quote.DiscountAmount,
		Total:          quote.Total,
	}

	id, err := s.OrderRepo.Create(order)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id

	utils.LogEvent(s.RequestID, "booking", "create_order",
		fmt.Sprintf("order_code=%s vehicle_id=%d total=%d", order.OrderCode, order.VehicleID, order.Total))
	return order, nil
}

// NewOrderCode returns a short unique order code, e.g. ORD-3F2A91BC.
func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func normalizeService(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case domain.ServiceWithDriver, "dengan supir", "with-driver":
		return domain.ServiceWithDriver
	default:
		return domain.ServiceSelfDrive
	}
}
