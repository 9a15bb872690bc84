package domain

import "testing"

func TestComputeQuoteFullBreakdown(t *testing.T) {
	v := Vehicle{
		Name:               "Avanza",
		Transmission:       TransmissionMatic,
		PricePerDay:        300000,
		DiscountPercentage: 10,
	}

	q := ComputeQuote(v, 2, ServiceWithDriver)

	if q.Days != 2 {
		t.Fatalf("days: got %d want 2", q.Days)
	}
	if q.BaseCost != 600000 {
		t.Fatalf("base cost: got %d want 600000", q.BaseCost)
	}
	if q.DiscountAmount != 60000 {
		t.Fatalf("discount: got %d want 60000 (10%% dari base saja)", q.DiscountAmount)
	}
	if q.MaticFee != 100000 {
		t.Fatalf("matic fee: got %d want 100000", q.MaticFee)
	}
	if q.DriverFee != 300000 {
		t.Fatalf("driver fee: got %d want 300000", q.DriverFee)
	}
	if q.Total != 940000 {
		t.Fatalf("total: got %d want 940000", q.Total)
	}
}

func TestComputeQuoteSelfDriveManualNoFees(t *testing.T) {
	v := Vehicle{Transmission: TransmissionManual, PricePerDay: 250000}

	q := ComputeQuote(v, 3, ServiceSelfDrive)

	if q.MaticFee != 0 || q.DriverFee != 0 || q.DiscountAmount != 0 {
		t.Fatalf("unexpected fees: %+v", q)
	}
	if q.Total != 750000 {
		t.Fatalf("total: got %d want 750000", q.Total)
	}
}

func TestComputeQuoteClampsDaysToOne(t *testing.T) {
	v := Vehicle{Transmission: TransmissionManual, PricePerDay: 200000}

	for _, days := range []int{0, -3} {
		q := ComputeQuote(v, days, ServiceSelfDrive)
		if q.Days != 1 {
			t.Fatalf("days=%d: got %d want 1", days, q.Days)
		}
		if q.Total != 200000 {
			t.Fatalf("days=%d: total got %d want 200000", days, q.Total)
		}
	}
}

func TestComputeQuoteDiscountOnBaseOnly(t *testing.T) {
	// Diskon penuh tidak boleh memakan biaya supir/matic.
	v := Vehicle{
		Transmission:       TransmissionMatic,
		PricePerDay:        100000,
		DiscountPercentage: 100,
	}

	q := ComputeQuote(v, 1, ServiceWithDriver)

	if q.DiscountAmount != 100000 {
		t.Fatalf("discount: got %d want 100000", q.DiscountAmount)
	}
	if q.Total != MaticFeePerDay+DriverFeePerDay {
		t.Fatalf("total: got %d want %d", q.Total, MaticFeePerDay+DriverFeePerDay)
	}
}

func TestComputeQuoteTotalNeverNegative(t *testing.T) {
	v := Vehicle{Transmission: TransmissionManual, PricePerDay: 0, DiscountPercentage: 100}

	q := ComputeQuote(v, 5, ServiceSelfDrive)
	if q.Total < 0 {
		t.Fatalf("total negatif: %d", q.Total)
	}
}
