package units

import (
	"math"
	"testing"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestConvertLength(t *testing.T) {
	got, err := Convert(1000, "m", "ft")
	if err != nil || !near(got, 3280.839895, 1e-5) {
		t.Fatalf("m->ft: got %v err %v", got, err)
	}
	rt, err := Convert(got, "ft", "m")
	if err != nil || !near(rt, 1000, 1e-9) {
		t.Fatalf("round-trip: got %v err %v", rt, err)
	}
}

func TestConvertForceAndFlow(t *testing.T) {
	n, err := Convert(1, "lbf", "N")
	if err != nil || !near(n, 4.4482216152605, 1e-12) {
		t.Fatalf("lbf->N: %v %v", n, err)
	}
	kgs, err := Convert(3600, "lb/h", "kg/s")
	if err != nil || !near(kgs, 0.45359237, 1e-12) {
		t.Fatalf("lb/h->kg/s: %v %v", kgs, err)
	}
	// lbm/h is accepted as a spelling of lb/h
	same, err := Convert(10, "lbm/h", "lb/h")
	if err != nil || same != 10 {
		t.Fatalf("lbm/h alias: %v %v", same, err)
	}
}

func TestConvertTemperature(t *testing.T) {
	k, err := Convert(518.67, "degR", "K")
	if err != nil || !near(k, 288.15, 1e-9) {
		t.Fatalf("degR->K: %v %v", k, err)
	}
	c, err := Convert(288.15, "K", "degC")
	if err != nil || !near(c, 15, 1e-9) {
		t.Fatalf("K->degC: %v %v", c, err)
	}
	f, err := Convert(15, "degC", "degF")
	if err != nil || !near(f, 59, 1e-9) {
		t.Fatalf("degC->degF: %v %v", f, err)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := Convert(1, "furlong", "ft"); err == nil {
		t.Fatal("expected unknown-unit error")
	}
	if _, err := Convert(1, "ft", "lbf"); err == nil {
		t.Fatal("expected cross-family error")
	}
	if Compatible("ft", "kW") {
		t.Fatal("ft and kW must not be compatible")
	}
	if !Compatible("lb/h", "kg/s") {
		t.Fatal("lb/h and kg/s should be compatible")
	}
}

func TestGeopotentialToGeometric(t *testing.T) {
	if got := GeopotentialToGeometric(0); got != 0 {
		t.Fatalf("zero altitude changed: %v", got)
	}
	// Geometric altitude exceeds geopotential and the gap grows with height.
	g35 := GeopotentialToGeometric(35000)
	g10 := GeopotentialToGeometric(10000)
	if g35 <= 35000 || g10 <= 10000 {
		t.Fatalf("geometric should exceed geopotential: %v %v", g10, g35)
	}
	if (g35 - 35000) <= (g10 - 10000) {
		t.Fatalf("correction should grow with altitude: %v %v", g10-10000, g35-35000)
	}
	// Stays within a plausible band (~0.6% at 35 kft).
	if g35 > 35400 {
		t.Fatalf("correction implausibly large: %v", g35)
	}
}
