package solenoid

import (
	"errors"
	"math"
	"testing"

	"github.com/coilworks/gosolenoid/internal/units"
	"github.com/coilworks/gosolenoid/internal/wire"
)

// referenceDesign is the worked example from the Schimpf paper: a 27 mm
// long, 572 turn coil of AWG 30 copper on a 2.3 mm bore, driven at 4.3 V.
func referenceDesign() Design {
	return Design{
		Voltage:        4.3,
		Permeability:   375,
		Gauge:          30,
		BoreRadius:     0.0023,
		Length:         0.027,
		Turns:          572,
		PackingDensity: 0.25,
	}
}

func TestReferenceDesign(t *testing.T) {
	d := referenceDesign()

	checks := []struct {
		name string
		got  func() (float64, error)
		want float64
	}{
		{"average radius", func() (float64, error) { v, err := d.AverageRadius(); return float64(v), err }, 4.4577543062e-03},
		{"winding factor", func() (float64, error) { v, err := d.WindingFactor(); return float64(v), err }, 2.6620941780e-01},
		{"decay factor", func() (float64, error) { v, err := d.DecayFactor(); return float64(v), err }, 5.9269260260e+00},
		{"wire length", func() (float64, error) { v, err := d.WireLength(); return float64(v), err }, 1.6021088718e+01},
		{"resistance", func() (float64, error) { v, err := d.Resistance(); return float64(v), err }, 5.2852018141e+00},
		{"current", func() (float64, error) { v, err := d.Current(); return float64(v), err }, 8.1359239462e-01},
		{"power", func() (float64, error) { v, err := d.Power(); return float64(v), err }, 3.4984472968e+00},
		{"force", func() (float64, error) { v, err := d.Force(); return float64(v), err }, -6.8948445216e+00},
		{"efficiency", func() (float64, error) { v, err := d.Efficiency(); return float64(v), err }, -1.9708298958e+00},
	}

	for _, c := range checks {
		got, err := c.got()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if relErr(got, c.want) > 1e-9 {
			t.Errorf("%s = %.10e, want %.10e", c.name, got, c.want)
		}
	}
}

func TestForceKeepsSign(t *testing.T) {
	d := referenceDesign()
	f, err := d.Force()
	if err != nil {
		t.Fatal(err)
	}
	if f >= 0 {
		t.Errorf("force = %v, want negative for μr > 1", f)
	}

	eff, err := d.Efficiency()
	if err != nil {
		t.Fatal(err)
	}
	if eff >= 0 {
		t.Errorf("efficiency = %v, want negative alongside force", eff)
	}
}

func TestForceScalesWithVoltageSquared(t *testing.T) {
	lo := referenceDesign()
	hi := referenceDesign()
	hi.Voltage = 5.0

	fLo, err := lo.Force()
	if err != nil {
		t.Fatal(err)
	}
	fHi, err := hi.Force()
	if err != nil {
		t.Fatal(err)
	}

	wantRatio := (5.0 / 4.3) * (5.0 / 4.3)
	gotRatio := float64(fHi) / float64(fLo)
	if relErr(gotRatio, wantRatio) > 1e-12 {
		t.Errorf("force ratio = %.12f, want %.12f", gotRatio, wantRatio)
	}
}

func TestAverageRadiusGrowsWithWireArea(t *testing.T) {
	// Lower gauge numbers mean thicker wire, which spreads the winding
	// farther out from the bore.
	d := referenceDesign()
	prev := 0.0
	for _, awg := range []units.WireGauge{38, 30, 22, 14, 6} {
		d.Gauge = awg
		ra, err := d.AverageRadius()
		if err != nil {
			t.Fatalf("awg=%v: %v", awg, err)
		}
		if float64(ra) <= prev {
			t.Errorf("awg=%v: average radius %v did not grow from %v", awg, ra, prev)
		}
		prev = float64(ra)
	}
}

func TestWindingFactorBounds(t *testing.T) {
	d := referenceDesign()
	prev := 1.0
	for _, turns := range []units.Turns{1, 50, 572, 5000} {
		d.Turns = turns
		wf, err := d.WindingFactor()
		if err != nil {
			t.Fatalf("turns=%v: %v", turns, err)
		}
		if wf <= 0 || wf > 1 {
			t.Errorf("turns=%v: winding factor %v outside (0, 1]", turns, wf)
		}
		if float64(wf) >= prev {
			t.Errorf("turns=%v: winding factor %v did not shrink from %v", turns, wf, prev)
		}
		prev = float64(wf)
	}
}

func TestDecayFactorGrowsWithPermeability(t *testing.T) {
	d := referenceDesign()
	prev := 0.0
	for _, mu := range []units.RelativePermeability{1.5, 10, 375, 10000} {
		d.Permeability = mu
		a, err := d.DecayFactor()
		if err != nil {
			t.Fatalf("mu=%v: %v", mu, err)
		}
		if float64(a) <= prev {
			t.Errorf("mu=%v: decay factor %v did not grow from %v", mu, a, prev)
		}
		prev = float64(a)
	}
}

func TestParameterValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Design)
		wantParam string
	}{
		{"zero voltage", func(d *Design) { d.Voltage = 0 }, "voltage"},
		{"negative voltage", func(d *Design) { d.Voltage = -4.3 }, "voltage"},
		{"unit permeability", func(d *Design) { d.Permeability = 1 }, "relative permeability"},
		{"sub-unit permeability", func(d *Design) { d.Permeability = 0.3 }, "relative permeability"},
		{"negative gauge", func(d *Design) { d.Gauge = -1 }, "awg"},
		{"oversized gauge", func(d *Design) { d.Gauge = 41 }, "awg"},
		{"zero radius", func(d *Design) { d.BoreRadius = 0 }, "radius"},
		{"zero length", func(d *Design) { d.Length = 0 }, "length"},
		{"negative turns", func(d *Design) { d.Turns = -5 }, "turns"},
		{"zero packing density", func(d *Design) { d.PackingDensity = 0 }, "packing density"},
	}

	for _, tt := range tests {
		d := referenceDesign()
		tt.mutate(&d)

		_, err := d.Force()
		if err == nil {
			t.Errorf("%s: Force accepted invalid design", tt.name)
			continue
		}
		var rangeErr *ParameterOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%s: error = %v, want *ParameterOutOfRangeError", tt.name, err)
			continue
		}
		if rangeErr.Param != tt.wantParam {
			t.Errorf("%s: error names %q, want %q", tt.name, rangeErr.Param, tt.wantParam)
		}
	}
}

func TestOperationsValidateOwnSubset(t *testing.T) {
	// DecayFactor only reads the permeability: a broken voltage must not
	// stop it.
	d := referenceDesign()
	d.Voltage = -1
	if _, err := d.DecayFactor(); err != nil {
		t.Errorf("DecayFactor rejected unrelated voltage: %v", err)
	}

	// The winding geometry ignores both electrical parameters.
	d = referenceDesign()
	d.Voltage = 0
	d.Permeability = 0
	if _, err := d.AverageRadius(); err != nil {
		t.Errorf("AverageRadius rejected unrelated electricals: %v", err)
	}
	if _, err := d.Resistance(); err != nil {
		t.Errorf("Resistance rejected unrelated electricals: %v", err)
	}

	// Current needs voltage but not permeability.
	d = referenceDesign()
	d.Permeability = 0
	if _, err := d.Current(); err != nil {
		t.Errorf("Current rejected unrelated permeability: %v", err)
	}

	// Force reads everything.
	if _, err := d.Force(); err == nil {
		t.Error("Force accepted broken permeability")
	}
}

func TestUnknownMaterialPropagates(t *testing.T) {
	d := referenceDesign()
	d.Material = "kryptonite"

	_, err := d.Resistance()
	if err == nil {
		t.Fatal("expected unknown material error")
	}
	var unknownErr *wire.UnknownMaterialError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want *wire.UnknownMaterialError", err)
	}
}

func TestMaterialAndTemperatureDefaults(t *testing.T) {
	implicit := referenceDesign()

	explicit := referenceDesign()
	explicit.Material = "copper"
	explicit.Temperature = wire.ReferenceTemperature

	ri, err := implicit.Resistance()
	if err != nil {
		t.Fatal(err)
	}
	re, err := explicit.Resistance()
	if err != nil {
		t.Fatal(err)
	}
	if ri != re {
		t.Errorf("implicit defaults gave %v, explicit copper@293K gave %v", ri, re)
	}

	hot := referenceDesign()
	hot.Temperature = 373
	rh, err := hot.Resistance()
	if err != nil {
		t.Fatal(err)
	}
	if float64(rh) <= float64(ri) {
		t.Errorf("hot winding resistance %v not above reference %v", rh, ri)
	}
}

func TestTraceEmission(t *testing.T) {
	var ops []string
	values := make(map[string]map[string]float64)

	d := referenceDesign()
	d.Trace = TraceFunc(func(op string, vals map[string]float64) {
		ops = append(ops, op)
		values[op] = vals
	})

	f, err := d.Force()
	if err != nil {
		t.Fatal(err)
	}

	if len(ops) != 1 || ops[0] != "force" {
		t.Fatalf("trace ops = %v, want [force]", ops)
	}
	for _, key := range []string{"winding_factor", "decay_factor", "gamma", "force"} {
		if _, ok := values["force"][key]; !ok {
			t.Errorf("force trace missing %q", key)
		}
	}
	if got := values["force"]["force"]; got != float64(f) {
		t.Errorf("trace force = %v, return value = %v", got, f)
	}

	// A nil Trace stays silent and costs nothing.
	d.Trace = nil
	if _, err := d.Force(); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluateMatchesAccessors(t *testing.T) {
	d := referenceDesign()
	s, err := d.Evaluate()
	if err != nil {
		t.Fatal(err)
	}

	f, _ := d.Force()
	if s.Force != f {
		t.Errorf("summary force %v != accessor %v", s.Force, f)
	}
	p, _ := d.Power()
	if s.Power != p {
		t.Errorf("summary power %v != accessor %v", s.Power, p)
	}
	if s.WindingFactor <= 0 || s.WindingFactor > 1 {
		t.Errorf("summary winding factor %v outside (0, 1]", s.WindingFactor)
	}

	bad := referenceDesign()
	bad.Gauge = 99
	if _, err := bad.Evaluate(); err == nil {
		t.Error("Evaluate accepted out-of-range gauge")
	}
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
