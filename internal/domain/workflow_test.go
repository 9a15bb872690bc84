package domain

import "testing"

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDone, false},
		{StatusApproved, StatusDone, true},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
		{StatusDone, StatusApproved, false},
		{StatusDone, StatusPending, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusDone} {
		if !ValidStatus(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "lunas", "Disetujui", "done"} {
		if ValidStatus(s) {
			t.Fatalf("%q should not be valid", s)
		}
	}
}

func TestInvoiceEligible(t *testing.T) {
	if InvoiceEligible(StatusPending) || InvoiceEligible(StatusRejected) {
		t.Fatalf("pending/tidak disetujui tidak boleh punya invoice")
	}
	if !InvoiceEligible(StatusApproved) {
		t.Fatalf("disetujui harus bisa invoice")
	}
	if !InvoiceEligible(StatusDone) {
		t.Fatalf("selesai tetap pesanan lunas, invoice harus tetap bisa dibuka")
	}
}

func TestDisplayStatus(t *testing.T) {
	if got := DisplayStatus(StatusApproved); got != "Lunas" {
		t.Fatalf("disetujui: got %q want Lunas", got)
	}
	if got := DisplayStatus(StatusDone); got != "Lunas" {
		t.Fatalf("selesai: got %q want Lunas", got)
	}
	if got := DisplayStatus(StatusPending); got != StatusPending {
		t.Fatalf("pending: got %q", got)
	}
}
