package solenoid

import (
	"fmt"

	"github.com/coilworks/gosolenoid/internal/units"
	"github.com/coilworks/gosolenoid/internal/wire"
)

// ParameterOutOfRangeError reports a design parameter outside its physical
// domain. The model refuses to evaluate rather than return a number with
// no physical meaning.
type ParameterOutOfRangeError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *ParameterOutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be %s, got %g", e.Param, e.Constraint, e.Value)
}

func checkVoltage(v units.Voltage) error {
	if !(v > 0) {
		return &ParameterOutOfRangeError{Param: "voltage", Value: float64(v), Constraint: "greater than 0"}
	}
	return nil
}

func checkPermeability(mu units.RelativePermeability) error {
	if !(mu > 1) {
		return &ParameterOutOfRangeError{Param: "relative permeability", Value: float64(mu), Constraint: "greater than 1"}
	}
	return nil
}

func checkGauge(awg units.WireGauge) error {
	if awg < 0 || awg > 40 {
		return &ParameterOutOfRangeError{Param: "awg", Value: float64(awg), Constraint: "between 0 and 40"}
	}
	return nil
}

func checkBoreRadius(r units.Radius) error {
	if !(r > 0) {
		return &ParameterOutOfRangeError{Param: "radius", Value: float64(r), Constraint: "greater than 0"}
	}
	return nil
}

func checkLength(l units.Length) error {
	if !(l > 0) {
		return &ParameterOutOfRangeError{Param: "length", Value: float64(l), Constraint: "greater than 0"}
	}
	return nil
}

func checkTurns(n units.Turns) error {
	if !(n > 0) {
		return &ParameterOutOfRangeError{Param: "turns", Value: float64(n), Constraint: "greater than 0"}
	}
	return nil
}

func checkPackingDensity(d units.PackingDensity) error {
	if !(d > 0) {
		return &ParameterOutOfRangeError{Param: "packing density", Value: float64(d), Constraint: "greater than 0"}
	}
	return nil
}

// checkWinding validates the parameters the winding geometry depends on:
// gauge, bore radius, length, turns and packing density.
func (d Design) checkWinding() error {
	if err := checkGauge(d.Gauge); err != nil {
		return err
	}
	if err := checkBoreRadius(d.BoreRadius); err != nil {
		return err
	}
	if err := checkLength(d.Length); err != nil {
		return err
	}
	if err := checkTurns(d.Turns); err != nil {
		return err
	}
	return checkPackingDensity(d.PackingDensity)
}

// checkAll validates the full seven-parameter design.
func (d Design) checkAll() error {
	if err := checkVoltage(d.Voltage); err != nil {
		return err
	}
	if err := checkPermeability(d.Permeability); err != nil {
		return err
	}
	return d.checkWinding()
}

// Validate checks every design parameter, including the wire material when
// one is set, and returns the first violation found.
func (d Design) Validate() error {
	if err := d.checkAll(); err != nil {
		return err
	}
	if d.Material != "" {
		if _, err := wire.Lookup(d.Material); err != nil {
			return err
		}
	}
	return nil
}
