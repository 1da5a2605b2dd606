// Package wire models the physical properties of round solenoid wire by
// American Wire Gauge number: radius, cross-sectional area, and resistance
// per unit length for a configurable conductor material and temperature.
//
// Gauge-dependent functions perform no range checking of their own; the
// solenoid model validates gauges before calling in. Material and
// temperature handling follows the first-order linear resistivity model
// ρ(T) = ρ₂₀ · (1 + α·(T − 293 K)), adequate for the voltage and current
// ranges of small DC actuators.
package wire

import (
	"math"

	"github.com/coilworks/gosolenoid/internal/units"
)

const (
	// DefaultMaterial is the conductor assumed when none is specified.
	DefaultMaterial = "copper"

	// ReferenceTemperature is the 20°C reference point of the
	// resistivity table, in kelvin.
	ReferenceTemperature units.Temperature = 293
)

// Radius converts an AWG number to the physical wire radius in meters.
//
// diameter [mm] = 0.127 · 92^((36−awg)/39)
//
// The 92^(1/39) progression is the AWG standard: the radius halves roughly
// every 3.1 gauge steps, so Radius is strictly decreasing in awg.
func Radius(awg units.WireGauge) units.Radius {
	diameterMM := 0.127 * math.Pow(92, (36-float64(awg))/39)
	return units.Radius(diameterMM / 1000 / 2)
}

// Area returns the wire cross-sectional area in m².
func Area(awg units.WireGauge) units.Area {
	r := float64(Radius(awg))
	return units.Area(math.Pi * r * r)
}

// ResistancePerLength returns the wire resistance per unit length in Ω/m
// for the given material at the given temperature. An empty material means
// DefaultMaterial; a zero temperature means ReferenceTemperature. Materials
// outside the resistivity table fail with an UnknownMaterialError.
func ResistancePerLength(awg units.WireGauge, material string, temp units.Temperature) (units.ResistancePerLength, error) {
	if material == "" {
		material = DefaultMaterial
	}
	if temp == 0 {
		temp = ReferenceTemperature
	}

	m, err := Lookup(material)
	if err != nil {
		return 0, err
	}

	deltaT := float64(temp - ReferenceTemperature)
	resistivity := m.Resistivity * (1 + m.TempCoeff*deltaT)

	return units.ResistancePerLength(resistivity / float64(Area(awg))), nil
}

// Resistance returns the total resistance in ohms of a wire of the given
// length. Material and temperature default as in ResistancePerLength.
func Resistance(awg units.WireGauge, length units.Length, material string, temp units.Temperature) (units.Resistance, error) {
	perLength, err := ResistancePerLength(awg, material, temp)
	if err != nil {
		return 0, err
	}
	return units.Resistance(float64(perLength) * float64(length)), nil
}
