package domain

import (
	"fmt"
	"strings"
)

// InvoiceNotAvailableError is returned when an order has not reached a
// paid status yet. Status is surfaced verbatim to the caller.
type InvoiceNotAvailableError struct {
	Status string
}

func (e InvoiceNotAvailableError) Error() string {
	return fmt.Sprintf("invoice belum tersedia untuk status %q", e.Status)
}

type InvoiceLine struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type InvoiceView struct {
	InvoiceNo     string        `json:"invoiceNo"`
	OrderCode     string        `json:"orderCode"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	VehicleName   string        `json:"vehicleName"`
	Service       string        `json:"service"`
	Days          int           `json:"days"`
	RentalPeriod  string        `json:"rentalPeriod"`
	Lines         []InvoiceLine `json:"lines"`
	Total         int64         `json:"total"`
	Status        string        `json:"status"`
	ValidatedBy   string        `json:"validatedBy,omitempty"`
}

// BuildInvoice derives the line-itemized invoice from an order's quote
// snapshot. Semua angka diambil dari snapshot saat booking, bukan dari
// harga kendaraan sekarang.
func BuildInvoice(o Order) (InvoiceView, error) {
	if !InvoiceEligible(o.Status) {
		return InvoiceView{}, InvoiceNotAvailableError{Status: o.Status}
	}

	days := o.Days
	if days < 1 {
		days = 1
	}

	period := fmt.Sprintf("%d hari", days)
	if o.StartDate != "" && o.EndDate != "" {
		period = fmt.Sprintf("%s s/d %s", o.StartDate, o.EndDate)
	}

	lines := []InvoiceLine{
		{
			Description: fmt.Sprintf("Sewa %s (%d hari)", o.VehicleName, days),
			Amount:      o.BaseCost,
		},
	}
	if o.DriverFee > 0 {
		lines = append(lines, InvoiceLine{
			Description: fmt.Sprintf("Biaya Supir (%d hari)", days),
			Amount:      o.DriverFee,
		})
	}
	if o.MaticFee > 0 {
		lines = append(lines, InvoiceLine{
			Description: fmt.Sprintf("Biaya Transmisi Matic (%d hari)", days),
			Amount:      o.MaticFee,
		})
	}
	if o.DiscountAmount > 0 {
		lines = append(lines, InvoiceLine{
			Description: "Diskon",
			Amount:      -o.DiscountAmount,
		})
	}

	return InvoiceView{
		InvoiceNo:     "INV-" + strings.TrimPrefix(o.OrderCode, "ORD-"),
		OrderCode:     o.OrderCode,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		VehicleName:   o.VehicleName,
		Service:       o.Service,
		Days:          days,
		RentalPeriod:  period,
		Lines:         lines,
		Total:         o.Total,
		Status:        DisplayStatus(o.Status),
	}, nil
}
