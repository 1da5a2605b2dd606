// Package solenoid implements a closed-form DC steady-state model of a
// solenoid actuator, after "A Detailed Explanation of Solenoid Force",
// Paul H. Schimpf, Int. J. on Recent Trends in Engineering and Technology,
// Vol. 8, No. 2, Jan 2013.
//
// Every quantity is a pure function of the seven design parameters; there
// is no iteration and no state. Each accessor validates exactly the subset
// of parameters it consumes and fails hard with a ParameterOutOfRangeError
// on physically meaningless input.
package solenoid

import (
	"math"

	"github.com/coilworks/gosolenoid/internal/units"
	"github.com/coilworks/gosolenoid/internal/wire"
)

// Mu0 is the permeability of free space in H/m.
const Mu0 units.Permeability = 4 * math.Pi * 1e-7

// Design holds the design parameters of a DC solenoid actuator.
type Design struct {
	// Electrical
	Voltage      units.Voltage              `json:"voltage"`               // v - applied DC voltage (V)
	Permeability units.RelativePermeability `json:"relative_permeability"` // μr - armature permeability relative to vacuum

	// Winding geometry
	Gauge          units.WireGauge      `json:"awg"`             // wire gauge, 0–40
	BoreRadius     units.Radius         `json:"radius"`          // r_o - nominal inner radius (m)
	Length         units.Length         `json:"length"`          // l - solenoid length (m)
	Turns          units.Turns          `json:"turns"`           // N - winding count
	PackingDensity units.PackingDensity `json:"packing_density"` // d - conductor fill fraction

	// Wire material, defaulting to copper at the 20°C reference
	// temperature when left zero.
	Material    string            `json:"material,omitempty"`
	Temperature units.Temperature `json:"temperature,omitempty"`

	// Trace, when non-nil, receives the intermediate sub-expressions of
	// each computation. Disabled by default.
	Trace Tracer `json:"-"`
}

// AverageRadius returns the effective mean winding radius: the nominal
// bore radius grown outward by the accumulated wire cross-section,
// r_a = N·A/(2·d·l) + r_o. Thicker wire, more turns, or looser packing
// all push the mean winding outward.
func (d Design) AverageRadius() (units.Radius, error) {
	if err := d.checkWinding(); err != nil {
		return 0, err
	}
	return d.averageRadius(), nil
}

// WindingFactor returns r_o²/r_a², the dimensionless attenuation in (0, 1]
// capturing how far the effective winding has spread past the bore.
func (d Design) WindingFactor() (units.WindingFactor, error) {
	if err := d.checkWinding(); err != nil {
		return 0, err
	}
	return d.windingFactor(), nil
}

// DecayFactor returns ln(μr), the axial force decay coefficient. Higher
// permeability armatures sustain force over a longer stroke.
func (d Design) DecayFactor() (units.DecayFactor, error) {
	if err := checkPermeability(d.Permeability); err != nil {
		return 0, err
	}
	return units.DecayFactor(math.Log(float64(d.Permeability))), nil
}

// WireLength returns the total conductor length of the winding,
// 2π·r_a·N.
func (d Design) WireLength() (units.Length, error) {
	if err := d.checkWinding(); err != nil {
		return 0, err
	}
	return d.wireLength(), nil
}

// Resistance returns the total winding resistance: the wire model's
// resistance per length applied over the full conductor length.
func (d Design) Resistance() (units.Resistance, error) {
	if err := d.checkWinding(); err != nil {
		return 0, err
	}

	length := d.wireLength()
	r, err := wire.Resistance(d.Gauge, length, d.Material, d.Temperature)
	if err != nil {
		return 0, err
	}

	d.emit("resistance", map[string]float64{
		"average_radius": float64(d.averageRadius()),
		"wire_length":    float64(length),
		"resistance":     float64(r),
	})
	return r, nil
}

// Force returns the pull force in newtons:
//
//	F = −(v²·μr·μ0·wf·α) / (8π·γ²·l²)
//
// with wf the winding factor, α the decay factor and γ the wire resistance
// per length. The sign is inherited from the reference derivation: α > 0
// for μr > 1, so the computed value is negative. Consumers receive the
// signed value as-is.
func (d Design) Force() (units.Force, error) {
	if err := d.checkAll(); err != nil {
		return 0, err
	}

	gamma, err := wire.ResistancePerLength(d.Gauge, d.Material, d.Temperature)
	if err != nil {
		return 0, err
	}

	v := float64(d.Voltage)
	l := float64(d.Length)
	wf := float64(d.windingFactor())
	alpha := math.Log(float64(d.Permeability))

	numerator := -(v * v) * float64(d.Permeability) * float64(Mu0) * wf * alpha
	denominator := 8 * math.Pi * float64(gamma) * float64(gamma) * l * l
	force := numerator / denominator

	d.emit("force", map[string]float64{
		"winding_factor": wf,
		"decay_factor":   alpha,
		"gamma":          float64(gamma),
		"numerator":      numerator,
		"denominator":    denominator,
		"force":          force,
	})
	return units.Force(force), nil
}

// Current returns the steady-state winding current by Ohm's law, v/R.
func (d Design) Current() (units.Current, error) {
	if err := checkVoltage(d.Voltage); err != nil {
		return 0, err
	}
	r, err := d.Resistance()
	if err != nil {
		return 0, err
	}

	i := float64(d.Voltage) / float64(r)
	d.emit("current", map[string]float64{"current": i})
	return units.Current(i), nil
}

// Power returns the dissipated power, v·i (equivalently v²/R).
func (d Design) Power() (units.Power, error) {
	i, err := d.Current()
	if err != nil {
		return 0, err
	}

	p := float64(d.Voltage) * float64(i)
	d.emit("power", map[string]float64{"power": p})
	return units.Power(p), nil
}

// Efficiency returns pull force per watt of dissipated power. It carries
// the force's sign convention.
func (d Design) Efficiency() (units.Efficiency, error) {
	f, err := d.Force()
	if err != nil {
		return 0, err
	}
	p, err := d.Power()
	if err != nil {
		return 0, err
	}

	e := float64(f) / float64(p)
	d.emit("efficiency", map[string]float64{"efficiency": e})
	return units.Efficiency(e), nil
}

// averageRadius computes r_a assuming checkWinding passed.
func (d Design) averageRadius() units.Radius {
	beta := float64(wire.Area(d.Gauge)) / (2 * float64(d.PackingDensity) * float64(d.Length))
	return units.Radius(beta*float64(d.Turns) + float64(d.BoreRadius))
}

func (d Design) windingFactor() units.WindingFactor {
	ro := float64(d.BoreRadius)
	ra := float64(d.averageRadius())
	return units.WindingFactor(ro * ro / (ra * ra))
}

func (d Design) wireLength() units.Length {
	return units.Length(2 * math.Pi * float64(d.averageRadius()) * float64(d.Turns))
}
