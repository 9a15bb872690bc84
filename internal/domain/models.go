package domain

// Transmission values as exposed to the frontend.
const (
	TransmissionManual = "Manual"
	TransmissionMatic  = "Matic"
)

// Service types for a rental.
const (
	ServiceSelfDrive  = "tanpa-supir"
	ServiceWithDriver = "dengan-supir"
)

// Driver availability.
const (
	DriverAvailable = "Tersedia"
	DriverAssigned  = "Bertugas"
)

// Payment methods offered on the confirmation page.
const (
	PaymentBankTransfer = "Transfer Bank"
	PaymentQRIS         = "QRIS"
)

type Vehicle struct {
	ID                 int64   `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	Brand              string  `json:"brand"`
	Type               string  `json:"type"`
	Passengers         int     `json:"passengers"`
	Transmission       string  `json:"transmission"`
	Fuel               string  `json:"fuel"`
	Year               int     `json:"year"`
	PricePerDay        int64   `json:"pricePerDay"`
	Rating             float64 `json:"rating"`
	DiscountPercentage int     `json:"discountPercentage,omitempty"`
	PhotoURL           string  `json:"photoUrl,omitempty"`
}

type Driver struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

// Order captures the booking plus the quote snapshot taken at creation
// time, so reports and invoices never recompute from live vehicle data.
type Order struct {
	ID        int64  `json:"id"`
	OrderCode string `json:"orderCode"`

	VehicleID    int64  `json:"vehicleId"`
	VehicleName  string `json:"vehicleName"`
	VehicleType  string `json:"vehicleType"`
	Transmission string `json:"transmission"`
	Service      string `json:"service"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentProof  string `json:"paymentProof,omitempty"`

	DriverID   *int64 `json:"driverId,omitempty"`
	DriverName string `json:"driverName,omitempty"`

	Status string `json:"status"`

	Days           int    `json:"days"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	BaseCost       int64  `json:"baseCost"`
	MaticFee       int64  `json:"maticFee"`
	DriverFee      int64  `json:"driverFee"`
	DiscountAmount int64  `json:"discountAmount"`
	Total          int64  `json:"total"`

	CreatedAt string `json:"createdAt,omitempty"`
}

type Testimonial struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	VehicleName  string `json:"vehicleName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type BankAccount struct {
	ID            int64  `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	LogoURL       string `json:"logoUrl,omitempty"`
}

type ContactInfo struct {
	Address  string `json:"address"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Maps     string `json:"maps"`
}

type TermsContent struct {
	General string `json:"general"`
	Payment string `json:"payment"`
}
