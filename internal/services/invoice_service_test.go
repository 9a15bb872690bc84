package services

import (
	"bytes"
	"errors"
	"testing"

	"sewamobil-backend/internal/domain"
)

func invoiceTestOrder(status string) domain.Order {
	return domain.Order{
		ID:             1,
		OrderCode:      "ORD-3F2A91BC",
		VehicleName:    "Avanza",
		Service:        domain.ServiceWithDriver,
		CustomerName:   "Budi",
		CustomerPhone:  "0812",
		Status:         status,
		Days:           2,
		StartDate:      "2026-08-01",
		EndDate:        "2026-08-03",
		BaseCost:       600000,
		MaticFee:       100000,
		DriverFee:      300000,
		DiscountAmount: 60000,
		Total:          940000,
	}
}

func TestInvoiceRenderGatedOnPending(t *testing.T) {
	svc := InvoiceService{
		Loader: func(int64) (domain.Order, error) {
			return invoiceTestOrder(domain.StatusPending), nil
		},
	}

	_, err := svc.Render(1, "")
	var notAvailable domain.InvoiceNotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("expected InvoiceNotAvailableError, got %v", err)
	}
	if notAvailable.Status != domain.StatusPending {
		t.Fatalf("error status: got %q", notAvailable.Status)
	}
}

func TestInvoiceRenderApprovedOrder(t *testing.T) {
	svc := InvoiceService{
		Loader: func(int64) (domain.Order, error) {
			return invoiceTestOrder(domain.StatusApproved), nil
		},
	}

	view, err := svc.Render(1, "admin")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.InvoiceNo != "INV-3F2A91BC" {
		t.Fatalf("invoice no: got %q", view.InvoiceNo)
	}
	if view.ValidatedBy != "admin" {
		t.Fatalf("validated by: got %q", view.ValidatedBy)
	}
	if view.Status != "Lunas" {
		t.Fatalf("status label: got %q", view.Status)
	}
}

func TestInvoiceShareViewHasNoValidator(t *testing.T) {
	svc := InvoiceService{
		Loader: func(int64) (domain.Order, error) {
			return invoiceTestOrder(domain.StatusDone), nil
		},
	}

	view, err := svc.Render(1, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.ValidatedBy != "" {
		t.Fatalf("share view should not carry validator, got %q", view.ValidatedBy)
	}
}

func TestInvoiceRenderPDF(t *testing.T) {
	svc := InvoiceService{
		CompanyName: "Sewa Mobil Nusantara",
		Loader: func(int64) (domain.Order, error) {
			return invoiceTestOrder(domain.StatusApproved), nil
		},
	}

	pdf, filename, err := svc.RenderPDF(1, "admin")
	if err != nil {
		t.Fatalf("RenderPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("RenderPDF returned empty document")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:4])
	}
	if filename != "INVOICE_ORD-3F2A91BC.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
}
