package domain

// Tarif layanan per hari, berlaku seragam untuk semua armada.
const (
	DriverFeePerDay int64 = 150000
	MaticFeePerDay  int64 = 50000
)

// Quote is the itemized cost breakdown for a prospective rental. It is
// derived, never persisted on its own; orders store a copy taken at
// booking time.
type Quote struct {
	Days           int   `json:"days"`
	BaseCost       int64 `json:"baseCost"`
	MaticFee       int64 `json:"maticFee"`
	DriverFee      int64 `json:"driverFee"`
	DiscountAmount int64 `json:"discountAmount"`
	Total          int64 `json:"total"`
}

// ComputeQuote is the single pricing calculator shared by the booking,
// payment, report, and invoice paths. Diskon hanya dihitung dari biaya
// sewa dasar, bukan dari biaya supir/matic. days di bawah 1 dianggap 1.
func ComputeQuote(v Vehicle, days int, service string) Quote {
	if days < 1 {
		days = 1
	}

	base := v.PricePerDay * int64(days)

	var maticFee int64
	if v.Transmission == TransmissionMatic {
		maticFee = MaticFeePerDay * int64(days)
	}

	var driverFee int64
	if service == ServiceWithDriver {
		driverFee = DriverFeePerDay * int64(days)
	}

	var discount int64
	if v.DiscountPercentage > 0 {
		discount = base * int64(v.DiscountPercentage) / 100
	}

	total := base + maticFee + driverFee - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		Days:           days,
		BaseCost:       base,
		MaticFee:       maticFee,
		DriverFee:      driverFee,
		DiscountAmount: discount,
		Total:          total,
	}
}
