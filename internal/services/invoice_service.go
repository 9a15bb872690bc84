package services

import (
	"bytes"
	"fmt"
	"time"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"
	"sewamobil-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceService menghasilkan tampilan invoice dan PDF-nya dari snapshot
// order. Loader bisa diganti di test tanpa database.
type InvoiceService struct {
	OrderRepo   repositories.OrderRepository
	CompanyName string
	RequestID   string
	Loader      func(int64) (domain.Order, error)
}

func (s InvoiceService) loadOrder(orderID int64) (domain.Order, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	return s.OrderRepo.GetByID(orderID)
}

// Render returns the invoice view, gated on the order status. validatedBy
// diisi hanya untuk tampilan admin.
func (s InvoiceService) Render(orderID int64, validatedBy string) (domain.InvoiceView, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return domain.InvoiceView{}, err
	}

	view, err := domain.BuildInvoice(order)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	view.ValidatedBy = validatedBy

	utils.LogEvent(s.RequestID, "invoice", "render", fmt.Sprintf("order_id=%d", orderID))
	return view, nil
}

// RenderPDF builds the downloadable invoice document.
func (s InvoiceService) RenderPDF(orderID int64, validatedBy string) ([]byte, string, error) {
	view, err := s.Render(orderID, validatedBy)
	if err != nil {
		return nil, "", err
	}

	company := s.CompanyName
	if company == "" {
		company = "Sewa Mobil Nusantara"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, company)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice  : "+view.InvoiceNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal     : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status      : "+view.Status)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ditagihkan kepada:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Nama   : "+view.CustomerName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "No HP  : "+view.CustomerPhone)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Periode: "+view.RentalPeriod)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, line := range view.Lines {
		pdf.Cell(130, 6, fmt.Sprintf("%d) %s", i+1, line.Description))
		pdf.CellFormat(0, 6, utils.FormatRupiah(line.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(130, 8, "Total")
	pdf.CellFormat(0, 8, utils.FormatRupiah(view.Total), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	if view.ValidatedBy != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "Divalidasi oleh: "+view.ValidatedBy)
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Invoice ini dibuat otomatis dan sah tanpa tanda tangan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", utils.SafeFilenamePart(view.OrderCode))
	return buf.Bytes(), filename, nil
}
