// Package sweep evaluates the solenoid model over a one-dimensional
// parameter range. Exactly one of the seven design parameters is given as
// a start/end pair; the driver samples it at evenly spaced points, holds
// the remaining six fixed, and collects the force, current, power and
// efficiency series together with the wire ampacity limit curves.
package sweep

import (
	"errors"
	"fmt"

	"github.com/coilworks/gosolenoid/internal/solenoid"
	"github.com/coilworks/gosolenoid/internal/units"
)

// Samples is the number of evenly spaced points evaluated per sweep.
const Samples = 30

// Parameter names, as reported by Config.Axis and carried on Result.
const (
	AxisVoltage        = "Voltage"
	AxisLength         = "Length"
	AxisRadius         = "Radius"
	AxisGauge          = "Awg"
	AxisTurns          = "Turns"
	AxisPermeability   = "Relative Permeability"
	AxisPackingDensity = "Packing Density"
)

var (
	// ErrNoRange reports a configuration with every parameter scalar.
	ErrNoRange = errors.New("no parameter specified as a range")

	// ErrMultipleRanges reports a configuration with more than one
	// ranged parameter.
	ErrMultipleRanges = errors.New("more than one parameter specified as a range")
)

// ParamCountError reports a parameter with an unusable number of values.
type ParamCountError struct {
	Param string
	Count int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("parameter %s needs one or two values, got %d", e.Param, e.Count)
}

// Param holds the values given for one design parameter: a single value
// holds it fixed, a start/end pair sweeps it.
type Param []float64

// Config is a sweep request: the seven design parameters, of which exactly
// one must be ranged, plus the wire material options passed through to the
// model.
type Config struct {
	Voltage        Param
	Length         Param
	Radius         Param
	Gauge          Param
	Turns          Param
	Permeability   Param
	PackingDensity Param

	Material    string
	Temperature units.Temperature

	// Trace is handed to every evaluated design point.
	Trace solenoid.Tracer
}

type paramSpec struct {
	name   string
	unit   string // display unit, empty for dimensionless
	values Param
}

func (c Config) specs() []paramSpec {
	return []paramSpec{
		{AxisVoltage, "V", c.Voltage},
		{AxisLength, "m", c.Length},
		{AxisRadius, "m", c.Radius},
		{AxisGauge, "AWG", c.Gauge},
		{AxisTurns, "#", c.Turns},
		{AxisPermeability, "", c.Permeability},
		{AxisPackingDensity, "", c.PackingDensity},
	}
}

// Axis returns the name of the single ranged parameter. It fails with
// ErrNoRange, ErrMultipleRanges or a ParamCountError when the
// configuration does not describe a valid sweep.
func (c Config) Axis() (string, error) {
	axis := ""
	for _, s := range c.specs() {
		switch len(s.values) {
		case 1:
		case 2:
			if axis != "" {
				return "", fmt.Errorf("%w: %s and %s", ErrMultipleRanges, axis, s.name)
			}
			axis = s.name
		default:
			return "", &ParamCountError{Param: s.name, Count: len(s.values)}
		}
	}
	if axis == "" {
		return "", ErrNoRange
	}
	return axis, nil
}

// Linspace returns n evenly spaced samples from start to end, endpoints
// inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	xs := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = end
	return xs
}

// Result holds the sampled series of one sweep. All slices share the
// length and indexing of X.
type Result struct {
	Axis string // ranged parameter name
	Unit string // axis display unit, empty for dimensionless

	// Fixed lists the held parameters as "Name = value [unit]" lines for
	// chart legends and report headers.
	Fixed []string

	X          []float64
	Force      []float64 // N
	Current    []float64 // A
	Power      []float64 // W
	Efficiency []float64 // N/W

	// Ampacity limits. CurrentLimit varies only when the gauge is the
	// axis; PowerLimit additionally follows the sampled voltage when the
	// voltage is the axis.
	CurrentLimit []float64 // A
	PowerLimit   []float64 // W

	Config Config // the request that produced this result
}

// XLabel returns the axis name with its unit, for chart and table headers.
func (r *Result) XLabel() string {
	if r.Unit == "" {
		return r.Axis
	}
	return fmt.Sprintf("%s [%s]", r.Axis, r.Unit)
}

// Run samples the ranged parameter at Samples evenly spaced points and
// evaluates the model at each one. The first model validation failure
// aborts the sweep and is returned unmodified.
func Run(cfg Config) (*Result, error) {
	axis, err := cfg.Axis()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Axis:         axis,
		X:            nil,
		Force:        make([]float64, 0, Samples),
		Current:      make([]float64, 0, Samples),
		Power:        make([]float64, 0, Samples),
		Efficiency:   make([]float64, 0, Samples),
		CurrentLimit: make([]float64, 0, Samples),
		PowerLimit:   make([]float64, 0, Samples),
		Config:       cfg,
	}
	for _, s := range cfg.specs() {
		if s.name == axis {
			res.Unit = s.unit
			res.X = Linspace(s.values[0], s.values[1], Samples)
			continue
		}
		line := fmt.Sprintf("%s = %g", s.name, s.values[0])
		if s.unit != "" {
			line = fmt.Sprintf("%s = %g [%s]", s.name, s.values[0], s.unit)
		}
		res.Fixed = append(res.Fixed, line)
	}

	pick := func(name string, x float64, p Param) float64 {
		if name == axis {
			return x
		}
		return p[0]
	}

	for _, x := range res.X {
		d := solenoid.Design{
			Voltage:        units.Voltage(pick(AxisVoltage, x, cfg.Voltage)),
			Length:         units.Length(pick(AxisLength, x, cfg.Length)),
			BoreRadius:     units.Radius(pick(AxisRadius, x, cfg.Radius)),
			Gauge:          units.WireGauge(pick(AxisGauge, x, cfg.Gauge)),
			Turns:          units.Turns(pick(AxisTurns, x, cfg.Turns)),
			Permeability:   units.RelativePermeability(pick(AxisPermeability, x, cfg.Permeability)),
			PackingDensity: units.PackingDensity(pick(AxisPackingDensity, x, cfg.PackingDensity)),
			Material:       cfg.Material,
			Temperature:    cfg.Temperature,
			Trace:          cfg.Trace,
		}

		f, err := d.Force()
		if err != nil {
			return nil, err
		}
		i, err := d.Current()
		if err != nil {
			return nil, err
		}
		p, err := d.Power()
		if err != nil {
			return nil, err
		}
		e, err := d.Efficiency()
		if err != nil {
			return nil, err
		}

		limit := CurrentLimit(d.Gauge)

		res.Force = append(res.Force, float64(f))
		res.Current = append(res.Current, float64(i))
		res.Power = append(res.Power, float64(p))
		res.Efficiency = append(res.Efficiency, float64(e))
		res.CurrentLimit = append(res.CurrentLimit, float64(limit))
		res.PowerLimit = append(res.PowerLimit, float64(limit)*float64(d.Voltage))
	}

	return res, nil
}
