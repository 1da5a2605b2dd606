// Package units defines named scalar types for the physical quantities the
// solenoid model works with. All values are SI: meters, kilograms, seconds,
// amps, kelvin. The named types carry no behavior; they exist so that a
// Radius cannot be handed to something expecting a Length without an
// explicit conversion at the call site.
package units

type (
	// Area is a cross-sectional area in m².
	Area float64

	// Current is an electric current in amps.
	Current float64

	// DecayFactor is the dimensionless axial force decay coefficient,
	// the natural log of the relative permeability.
	DecayFactor float64

	// Efficiency is pull force per unit of dissipated power, in N/W.
	Efficiency float64

	// Force is a pull force in newtons.
	Force float64

	// Length is a solenoid or wire length in meters.
	Length float64

	// PackingDensity is the fraction of the winding cross-section
	// occupied by conductor, 0 < d ≤ 1.
	PackingDensity float64

	// Permeability is an absolute magnetic permeability in H/m.
	Permeability float64

	// Power is a dissipated electrical power in watts.
	Power float64

	// Radius is a wire or solenoid radius in meters.
	Radius float64

	// RelativePermeability is an armature permeability relative to
	// vacuum, dimensionless, > 1 for useful armature materials.
	RelativePermeability float64

	// Resistance is an electrical resistance in ohms.
	Resistance float64

	// ResistancePerLength is a wire resistivity per unit length in Ω/m.
	ResistancePerLength float64

	// Temperature is an absolute temperature in kelvin.
	Temperature float64

	// Turns is a winding count. It is declared as a float so that sweep
	// axes can sample it continuously; the model only requires it to be
	// positive.
	Turns float64

	// Voltage is an applied DC voltage in volts.
	Voltage float64

	// WindingFactor is the dimensionless geometric attenuation factor
	// r_o²/r_a², in (0, 1].
	WindingFactor float64

	// WireGauge is an American Wire Gauge number, valid on [0, 40].
	// Fractional gauges are meaningful to the gauge formula and appear
	// when a sweep samples the gauge axis.
	WireGauge float64
)
