package engine

import (
	"math"
	"strings"
	"testing"

	"edeck-core/deck"
	"edeck-core/deckvar"
	"edeck-core/opts"
)

const sampleDeck = `Mach, Alt, Thr, Thrust, Fuel Flow
0.0, 0, 0.2, 1000, 800
0.0, 0, 1.0, 5000, 3200
0.8, 35000, 0.2, 800, 700
0.8, 35000, 1.0, 4000, 2600
`

func load(t *testing.T) *deck.Table {
	t.Helper()
	tab, err := deck.Parse(strings.NewReader(sampleDeck), "sample")
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestDeckPerformance(t *testing.T) {
	d, err := NewDeck("sample", load(t), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Performance(Conditions{Mach: 0, Altitude: 0, Throttle: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := out[deckvar.NetThrust]; math.Abs(got-5000) > 1e-9 {
		t.Fatalf("thrust = %v", got)
	}
	if got := out[deckvar.FuelFlow]; math.Abs(got-3200) > 1e-9 {
		t.Fatalf("fuel = %v", got)
	}
}

func TestDeckScaleFactor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScaleFactor = 1.2
	d, err := NewDeck("sample", load(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Performance(Conditions{Throttle: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := out[deckvar.NetThrust]; math.Abs(got-6000) > 1e-6 {
		t.Fatalf("scaled thrust = %v", got)
	}
	if got := out[deckvar.FuelFlow]; math.Abs(got-3840) > 1e-6 {
		t.Fatalf("scaled fuel = %v", got)
	}
}

func TestDeckNegativeThrustClamp(t *testing.T) {
	src := "0.0 0 0.0 -500\n0.0 0 1.0 5000\n0.8 0 0.0 -400\n0.8 0 1.0 4000\n"
	tab, err := deck.Parse(strings.NewReader(src), "neg")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.ClampNegativeThrust = true
	d, err := NewDeck("neg", tab, cfg)
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Performance(Conditions{Throttle: 0})
	if err != nil {
		t.Fatal(err)
	}
	if out[deckvar.NetThrust] != 0 {
		t.Fatalf("thrust = %v, want clamped 0", out[deckvar.NetThrust])
	}
}

func TestFlightIdleSynthesis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GenerateFlightIdle = true
	cfg.FlightIdleThrustFraction = 0.05
	d, err := NewDeck("sample", load(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// One synthesized point per unique (Mach, Altitude): 4 + 2.
	lo, _ := d.Envelope()
	thrAxisLo := lo[2]
	if thrAxisLo != 0 {
		t.Fatalf("throttle envelope low = %v, want synthesized 0", thrAxisLo)
	}
	out, _, err := d.Query(Conditions{Mach: 0, Altitude: 0, Throttle: 0})
	if err != nil {
		t.Fatal(err)
	}
	// Idle thrust = 5% of the condition's peak (5000).
	if got := out[deckvar.NetThrust]; math.Abs(got-250) > 1e-6 {
		t.Fatalf("idle thrust = %v", got)
	}
	// Fuel extrapolates to 800 - 0.2*(3200-800)/0.8 = 200, then the 8%
	// floor of peak fuel (3200) lifts it to 256.
	if got := out[deckvar.FuelFlow]; math.Abs(got-256) > 1e-6 {
		t.Fatalf("idle fuel = %v", got)
	}
}

func TestFlightIdleSkippedWhenSampled(t *testing.T) {
	src := "0.0 0 0.0 500\n0.0 0 1.0 5000\n0.8 0 0.0 400\n0.8 0 1.0 4000\n"
	tab, err := deck.Parse(strings.NewReader(src), "idle")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.GenerateFlightIdle = true
	d, err := NewDeck("idle", tab, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Throttle 0 already sampled: no synthesis, stored value wins.
	out, err := d.Performance(Conditions{Throttle: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := out[deckvar.NetThrust]; math.Abs(got-500) > 1e-9 {
		t.Fatalf("thrust = %v", got)
	}
}

func TestGeopotentialAltitudeConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GeopotentialAltitude = true
	d, err := NewDeck("sample", load(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	_, hi := d.Envelope()
	// Altitude axis is index 1; 35000 ft geopotential is higher geometric.
	if hi[1] <= 35000 {
		t.Fatalf("altitude envelope = %v, want converted above 35000", hi[1])
	}
}

func TestHeterogeneousModels(t *testing.T) {
	d, err := NewDeck("sample", load(t), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	c := NewCustom("rubber", func(cond Conditions) (Outputs, error) {
		return Outputs{deckvar.NetThrust: 1234 * cond.Throttle}, nil
	})

	var total float64
	for _, m := range []Model{d, c} {
		out, err := m.Performance(Conditions{Throttle: 1})
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		total += out[deckvar.NetThrust]
	}
	if math.Abs(total-6234) > 1e-6 {
		t.Fatalf("total = %v", total)
	}
}

func TestConfigFromValues(t *testing.T) {
	v := opts.New()
	v.Set(opts.KeyScaleFactor, 1.5, "")
	v.Set(opts.KeyGenerateFlightIdle, true, "")
	cfg, missing := ConfigFromValues(v)
	if cfg.ScaleFactor != 1.5 || !cfg.GenerateFlightIdle {
		t.Fatalf("cfg = %+v", cfg)
	}
	// Defaults substituted for the absent idle fractions and flags.
	if cfg.FlightIdleMinFuelFraction != 0.08 || cfg.FlightIdleMaxFuelFraction != 1.0 {
		t.Fatalf("idle fractions = %+v", cfg)
	}
	if len(missing) == 0 {
		t.Fatal("expected missing-option names")
	}
	for _, m := range missing {
		if m == opts.KeyScaleFactor {
			t.Fatal("present option reported missing")
		}
	}
}
