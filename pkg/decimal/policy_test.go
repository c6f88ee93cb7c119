package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestNewPolicyScale(t *testing.T) {
	if got := NewPolicy(0).Scale(); got != DefaultScale {
		t.Fatalf("NewPolicy(0).Scale() = %d, want %d", got, DefaultScale)
	}
	if got := NewPolicy(12).Scale(); got != 12 {
		t.Fatalf("NewPolicy(12).Scale() = %d, want 12", got)
	}
	for _, scale := range []int32{1, 2, 3, 9} {
		if got := NewPolicy(scale).Scale(); got != MinScale {
			t.Fatalf("NewPolicy(%d).Scale() = %d, want %d", scale, got, MinScale)
		}
	}
	var zero Policy
	if got := zero.Scale(); got != DefaultScale {
		t.Fatalf("zero Policy scale = %d, want %d", got, DefaultScale)
	}
}

func TestMulDivRoundToScale(t *testing.T) {
	p := NewPolicy(MinScale)

	if got := p.Div(stddec.NewFromInt(1), stddec.NewFromInt(3)).String(); got != "0.3333333333" {
		t.Fatalf("Div got %s want 0.3333333333", got)
	}
	if got := p.Mul(stddec.RequireFromString("1.234567890123"), stddec.RequireFromString("2")).String(); got != "2.4691357802" {
		t.Fatalf("Mul got %s want 2.4691357802", got)
	}
	if got := p.Monthly(stddec.RequireFromString("0.12")).String(); got != "0.01" {
		t.Fatalf("Monthly got %s want 0.01", got)
	}
}

func TestMonthlyRateAtMinScaleIsNonZero(t *testing.T) {
	p := NewPolicy(MinScale)
	if p.Monthly(RateEpsilon).IsZero() {
		t.Fatalf("Monthly(%s) rounded to zero at scale %d", RateEpsilon, MinScale)
	}
}

func TestPowInt(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		base string
		n    int
		want string
	}{
		{"2", 0, "1"},
		{"2", 1, "2"},
		{"2", 10, "1024"},
		{"1.01", 2, "1.0201"},
		{"1.1", 3, "1.331"},
		{"2", -2, "0.25"},
	}
	for _, c := range cases {
		got := p.PowInt(stddec.RequireFromString(c.base), c.n)
		if !got.Equal(stddec.RequireFromString(c.want)) {
			t.Fatalf("PowInt(%s, %d) = %s want %s", c.base, c.n, got, c.want)
		}
	}
}

func TestPowIntLongHorizonStaysBounded(t *testing.T) {
	p := DefaultPolicy()
	got := p.PowInt(stddec.RequireFromString("1.0066"), 1200)
	if got.Exponent() < -DefaultScale {
		t.Fatalf("PowInt kept %d fractional digits, want at most %d", -got.Exponent(), DefaultScale)
	}
	// 1.0066^1200 is roughly 2.7e3
	if got.LessThan(stddec.NewFromInt(2000)) || got.GreaterThan(stddec.NewFromInt(3500)) {
		t.Fatalf("PowInt(1.0066, 1200) = %s out of expected range", got)
	}
}

func TestPercent(t *testing.T) {
	p := DefaultPolicy()
	if got := p.Percent(stddec.NewFromInt(25), stddec.NewFromInt(200)); !got.Equal(stddec.RequireFromString("12.5")) {
		t.Fatalf("Percent got %s want 12.5", got)
	}
	if got := p.Percent(stddec.NewFromInt(25), stddec.Zero); !got.IsZero() {
		t.Fatalf("Percent with zero basis got %s want 0", got)
	}
}

func TestHelpers(t *testing.T) {
	if !IsNearZero(stddec.RequireFromString("0.00000001"), RateEpsilon) {
		t.Fatalf("1e-8 should be near zero")
	}
	if IsNearZero(stddec.RequireFromString("0.0000001"), RateEpsilon) {
		t.Fatalf("1e-7 should not be near zero")
	}
	if !ClampZero(stddec.NewFromInt(-5)).IsZero() {
		t.Fatalf("ClampZero(-5) should be zero")
	}
	if !ClampZero(stddec.NewFromInt(5)).Equal(stddec.NewFromInt(5)) {
		t.Fatalf("ClampZero(5) should be 5")
	}
}
