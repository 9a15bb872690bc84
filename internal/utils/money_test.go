package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{940000, "Rp940.000"},
		{1500000, "Rp1.500.000"},
		{-60000, "-Rp60.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"Rp940.000", 940000},
		{"Rp 1.500.000", 1500000},
		{"250000", 250000},
		{"1,000", 1000},
	}
	for _, c := range cases {
		got, err := ParseRupiahToInt(c.in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseRupiahToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	if _, err := ParseRupiahToInt("Rp"); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}
