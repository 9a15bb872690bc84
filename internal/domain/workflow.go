package domain

// Order lifecycle statuses. Nilai dipertahankan dalam bahasa Indonesia
// karena tampil apa adanya di dashboard dan invoice.
const (
	StatusPending  = "pending"
	StatusApproved = "disetujui"
	StatusRejected = "tidak disetujui"
	StatusDone     = "selesai"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDone:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. tidak disetujui dan selesai bersifat terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusDone
	default:
		return false
	}
}

// InvoiceEligible reports whether an invoice may be rendered for the
// status. Pesanan selesai tetap pesanan lunas, jadi invoicenya tetap
// bisa dibuka.
func InvoiceEligible(status string) bool {
	return status == StatusApproved || status == StatusDone
}

// DisplayStatus maps an order status to the label shown on invoices.
func DisplayStatus(status string) string {
	if status == StatusApproved || status == StatusDone {
		return "Lunas"
	}
	return status
}
