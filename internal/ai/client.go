package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sewamobil-backend/internal/domain"
)

// Client is a thin wrapper around the external generative service. Kedua
// flow di sini murni request/response; tidak ada retry (kegagalan
// dianggap final dan user mengulang manual).
type Client struct {
	Endpoint   string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClient(endpoint, apiKey, model string) *Client {
	return &Client{
		Endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		APIKey:     strings.TrimSpace(apiKey),
		Model:      model,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether the service is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.Endpoint != "" && c.APIKey != ""
}

type PromoTextInput struct {
	VehicleName        string `json:"vehicleName" binding:"required"`
	VehicleType        string `json:"vehicleType" binding:"required"`
	RentalPrice        int64  `json:"rentalPrice" binding:"required"`
	DiscountPercentage int    `json:"discountPercentage"`
}

type InvoiceImageItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type InvoiceImageInput struct {
	OrderID      string             `json:"orderId"`
	CustomerName string             `json:"customerName"`
	Date         string             `json:"date"`
	Items        []InvoiceImageItem `json:"items"`
	Total        string             `json:"total"`
	Status       string             `json:"status"`
	CompanyName  string             `json:"companyName"`
	LogoURL      string             `json:"logoUrl,omitempty"`
}

// GeneratePromoText asks the model for slider promo copy.
func (c *Client) GeneratePromoText(ctx context.Context, in PromoTextInput) (string, error) {
	prompt := fmt.Sprintf(
		"Buat teks promosi singkat dan menarik untuk slider rental mobil. "+
			"Mobil: %s (%s), harga sewa %d per hari, diskon %d%%. "+
			"Tonjolkan diskonnya. Contoh: \"Liburan makin hemat! Nikmati diskon %d%% untuk sewa %s. Pesan sekarang!\"",
		in.VehicleName, in.VehicleType, in.RentalPrice, in.DiscountPercentage,
		in.DiscountPercentage, in.VehicleName,
	)

	var out struct {
		PromoText string `json:"promoText"`
	}
	if err := c.post(ctx, "/v1/generate-text", map[string]any{
		"model":  c.Model,
		"prompt": prompt,
	}, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.PromoText) == "" {
		return "", domain.InternalError{Msg: "layanan AI tidak mengembalikan teks"}
	}
	return out.PromoText, nil
}

// GenerateInvoiceImage returns the rendered invoice as a data URI
// (data:image/png;base64,...).
func (c *Client) GenerateInvoiceImage(ctx context.Context, in InvoiceImageInput) (string, error) {
	var out struct {
		InvoiceImageDataURI string `json:"invoiceImageDataUri"`
	}
	if err := c.post(ctx, "/v1/generate-invoice-image", map[string]any{
		"model":   c.Model,
		"invoice": in,
	}, &out); err != nil {
		return "", err
	}
	if !strings.HasPrefix(out.InvoiceImageDataURI, "data:image/") {
		return "", domain.InternalError{Msg: "layanan AI tidak mengembalikan gambar"}
	}
	return out.InvoiceImageDataURI, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, dst any) error {
	if !c.Enabled() {
		return domain.ConflictError{Resource: "ai", Msg: "layanan AI belum dikonfigurasi"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode permintaan AI", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return domain.InternalError{Msg: "gagal membuat permintaan AI", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.InternalError{Msg: "layanan AI tidak bisa dihubungi", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return domain.InternalError{Msg: "gagal membaca respons AI", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return domain.InternalError{Msg: fmt.Sprintf("layanan AI menjawab status %d", resp.StatusCode)}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.InternalError{Msg: "respons AI tidak valid", Err: err}
	}
	return nil
}
