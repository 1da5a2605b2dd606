package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/coilworks/gosolenoid/internal/solenoid"
	"github.com/coilworks/gosolenoid/internal/units"
)

// referenceConfig holds every parameter at the worked-example scalar
// values. Tests promote one parameter at a time to a range.
func referenceConfig() Config {
	return Config{
		Voltage:        Param{4.3},
		Length:         Param{0.027},
		Radius:         Param{0.0023},
		Gauge:          Param{30},
		Turns:          Param{572},
		Permeability:   Param{375},
		PackingDensity: Param{0.25},
	}
}

func TestAxisDetection(t *testing.T) {
	cfg := referenceConfig()
	cfg.Turns = Param{100, 1000}

	axis, err := cfg.Axis()
	if err != nil {
		t.Fatal(err)
	}
	if axis != AxisTurns {
		t.Errorf("axis = %q, want %q", axis, AxisTurns)
	}
}

func TestAxisNoRange(t *testing.T) {
	_, err := referenceConfig().Axis()
	if !errors.Is(err, ErrNoRange) {
		t.Errorf("error = %v, want ErrNoRange", err)
	}
}

func TestAxisMultipleRanges(t *testing.T) {
	cfg := referenceConfig()
	cfg.Voltage = Param{2, 8}
	cfg.Gauge = Param{20, 34}

	_, err := cfg.Axis()
	if !errors.Is(err, ErrMultipleRanges) {
		t.Errorf("error = %v, want ErrMultipleRanges", err)
	}
}

func TestAxisParamCount(t *testing.T) {
	cfg := referenceConfig()
	cfg.Radius = nil
	var countErr *ParamCountError
	if _, err := cfg.Axis(); !errors.As(err, &countErr) {
		t.Fatalf("error = %v, want *ParamCountError", err)
	}
	if countErr.Param != AxisRadius || countErr.Count != 0 {
		t.Errorf("error = %+v, want Radius/0", countErr)
	}

	cfg = referenceConfig()
	cfg.Voltage = Param{1, 2, 3}
	if _, err := cfg.Axis(); !errors.As(err, &countErr) {
		t.Fatalf("error = %v, want *ParamCountError", err)
	}
	if countErr.Param != AxisVoltage || countErr.Count != 3 {
		t.Errorf("error = %+v, want Voltage/3", countErr)
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(2, 8, 30)
	if len(xs) != 30 {
		t.Fatalf("len = %d, want 30", len(xs))
	}
	if xs[0] != 2 || xs[29] != 8 {
		t.Errorf("endpoints = %v, %v; want 2, 8", xs[0], xs[29])
	}
	if math.Abs(xs[1]-2.206896551724138) > 1e-12 {
		t.Errorf("xs[1] = %.15f, want 2.206896551724138", xs[1])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("xs[%d] = %v not above xs[%d] = %v", i, xs[i], i-1, xs[i-1])
		}
	}

	// Descending ranges sample downhill.
	down := Linspace(8, 2, 30)
	if down[0] != 8 || down[29] != 2 {
		t.Errorf("descending endpoints = %v, %v; want 8, 2", down[0], down[29])
	}

	// Degenerate ranges hold the value at every sample.
	flat := Linspace(5, 5, 30)
	for _, x := range flat {
		if x != 5 {
			t.Fatalf("flat sample = %v, want 5", x)
		}
	}

	if one := Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Errorf("n=1 gave %v, want [3]", one)
	}
}

func TestRunVoltageAxis(t *testing.T) {
	cfg := referenceConfig()
	cfg.Voltage = Param{2, 8}

	res, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if res.Axis != AxisVoltage || res.Unit != "V" {
		t.Errorf("axis = %q [%q], want Voltage [V]", res.Axis, res.Unit)
	}
	if res.XLabel() != "Voltage [V]" {
		t.Errorf("XLabel = %q", res.XLabel())
	}
	if len(res.X) != Samples {
		t.Fatalf("len(X) = %d, want %d", len(res.X), Samples)
	}
	for _, series := range [][]float64{res.Force, res.Current, res.Power, res.Efficiency, res.CurrentLimit, res.PowerLimit} {
		if len(series) != Samples {
			t.Fatalf("series length %d, want %d", len(series), Samples)
		}
	}
	if res.X[0] != 2 || res.X[Samples-1] != 8 {
		t.Errorf("X endpoints = %v, %v; want 2, 8", res.X[0], res.X[Samples-1])
	}

	// Every sample must agree with a direct model evaluation.
	for _, i := range []int{0, 14, Samples - 1} {
		d := solenoid.Design{
			Voltage:        units.Voltage(res.X[i]),
			Length:         0.027,
			BoreRadius:     0.0023,
			Gauge:          30,
			Turns:          572,
			Permeability:   375,
			PackingDensity: 0.25,
		}
		f, err := d.Force()
		if err != nil {
			t.Fatal(err)
		}
		if res.Force[i] != float64(f) {
			t.Errorf("Force[%d] = %v, model says %v", i, res.Force[i], f)
		}
		p, err := d.Power()
		if err != nil {
			t.Fatal(err)
		}
		if res.Power[i] != float64(p) {
			t.Errorf("Power[%d] = %v, model says %v", i, res.Power[i], p)
		}
	}

	// AWG 30 is held, so the current limit is flat at its table row and
	// the power limit follows the sampled voltage.
	for i := range res.X {
		if res.CurrentLimit[i] != 0.86 {
			t.Fatalf("CurrentLimit[%d] = %v, want 0.86", i, res.CurrentLimit[i])
		}
		want := 0.86 * res.X[i]
		if math.Abs(res.PowerLimit[i]-want) > 1e-12 {
			t.Fatalf("PowerLimit[%d] = %v, want %v", i, res.PowerLimit[i], want)
		}
	}

	// Six held parameters land in the legend lines.
	if len(res.Fixed) != 6 {
		t.Errorf("Fixed = %v, want 6 lines", res.Fixed)
	}
}

func TestRunGaugeAxis(t *testing.T) {
	cfg := referenceConfig()
	cfg.Gauge = Param{20, 34}

	res, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if res.XLabel() != "Awg [AWG]" {
		t.Errorf("XLabel = %q", res.XLabel())
	}

	// The current limit now tracks the sampled gauge downward, and the
	// power limit is the limit at the held 4.3 V.
	for i := 1; i < len(res.X); i++ {
		if res.CurrentLimit[i] >= res.CurrentLimit[i-1] {
			t.Fatalf("CurrentLimit[%d] = %v did not fall from %v", i, res.CurrentLimit[i], res.CurrentLimit[i-1])
		}
	}
	for i := range res.X {
		want := res.CurrentLimit[i] * 4.3
		if math.Abs(res.PowerLimit[i]-want) > 1e-12 {
			t.Fatalf("PowerLimit[%d] = %v, want %v", i, res.PowerLimit[i], want)
		}
	}

	// Endpoint gauges are integral, so they hit table rows exactly.
	if res.CurrentLimit[0] != 11 {
		t.Errorf("CurrentLimit at AWG 20 = %v, want 11", res.CurrentLimit[0])
	}
	if res.CurrentLimit[Samples-1] != 0.33 {
		t.Errorf("CurrentLimit at AWG 34 = %v, want 0.33", res.CurrentLimit[Samples-1])
	}
}

func TestRunDimensionlessAxis(t *testing.T) {
	cfg := referenceConfig()
	cfg.Permeability = Param{10, 1000}

	res, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Unit != "" || res.XLabel() != AxisPermeability {
		t.Errorf("XLabel = %q, want bare %q", res.XLabel(), AxisPermeability)
	}

	// Force strengthens (grows more negative) with permeability.
	first, last := res.Force[0], res.Force[Samples-1]
	if first >= 0 || last >= 0 {
		t.Fatalf("forces %v, %v should be negative", first, last)
	}
	if last >= first {
		t.Errorf("force at μr=1000 (%v) not stronger than at μr=10 (%v)", last, first)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if _, err := Run(referenceConfig()); !errors.Is(err, ErrNoRange) {
		t.Errorf("error = %v, want ErrNoRange", err)
	}
}

func TestRunPropagatesModelErrors(t *testing.T) {
	cfg := referenceConfig()
	cfg.Permeability = Param{0.5, 10} // first sample is below the μr > 1 floor

	_, err := Run(cfg)
	var rangeErr *solenoid.ParameterOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want *solenoid.ParameterOutOfRangeError", err)
	}
}

func TestCurrentLimitTable(t *testing.T) {
	tests := []struct {
		awg  units.WireGauge
		want float64
	}{
		{0, 245},
		{10, 55},
		{20, 11},
		{30, 0.86},
		{40, 0.09},
		{22.5, (7 + 4.7) / 2}, // halfway between the AWG 22 and 23 rows
		{-3, 245},             // clamped
		{55, 0.09},            // clamped
	}
	for _, tt := range tests {
		got := float64(CurrentLimit(tt.awg))
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("CurrentLimit(%v) = %v, want %v", tt.awg, got, tt.want)
		}
	}
}
