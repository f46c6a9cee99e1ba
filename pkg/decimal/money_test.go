package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("$1,234.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "1234.50" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "$0.00"},
		{"999.5", "$999.50"},
		{"1000", "$1,000.00"},
		{"317000", "$317,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-3000", "($3,000.00)"},
		{"999.999", "$1,000.00"},
		{"-0.001", "$0.00"},
		{"-1234567.5", "($1,234,567.50)"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Format(); got != c.out {
			t.Fatalf("Format(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestLineHelpers(t *testing.T) {
	a := stddec.NewFromInt(500)
	b := stddec.NewFromInt(-200)

	if got := Sum(a, b, stddec.NewFromInt(25)); !got.Equal(stddec.NewFromInt(325)) {
		t.Fatalf("Sum got %s", got)
	}
	if got := Sum(); !got.IsZero() {
		t.Fatalf("empty Sum got %s", got)
	}
	if got := Floor0(b); !got.IsZero() {
		t.Fatalf("Floor0 got %s", got)
	}
	if got := Floor0(a); !got.Equal(a) {
		t.Fatalf("Floor0 positive got %s", got)
	}
	if got := Ceil0(a); !got.IsZero() {
		t.Fatalf("Ceil0 got %s", got)
	}
	if got := Ceil0(b); !got.Equal(b) {
		t.Fatalf("Ceil0 negative got %s", got)
	}
	if got := Excess(a, stddec.NewFromInt(800)); !got.IsZero() {
		t.Fatalf("Excess got %s", got)
	}
	if got := Excess(a, stddec.NewFromInt(100)); !got.Equal(stddec.NewFromInt(400)) {
		t.Fatalf("Excess got %s", got)
	}
}

func TestRoundToNearest(t *testing.T) {
	step := stddec.NewFromInt(1000)
	cases := []struct {
		in, out string
	}{
		{"326510", "327000"},
		{"326499.99", "326000"},
		{"500", "1000"},
		{"499", "0"},
	}
	for _, c := range cases {
		in, _ := stddec.NewFromString(c.in)
		want, _ := stddec.NewFromString(c.out)
		if got := RoundToNearest(in, step); !got.Equal(want) {
			t.Fatalf("RoundToNearest(%s) got %s want %s", c.in, got, c.out)
		}
	}
	if got := RoundToNearest(stddec.NewFromInt(7), stddec.Zero); !got.Equal(stddec.NewFromInt(7)) {
		t.Fatalf("zero step should be identity, got %s", got)
	}
}
