package solenoid

import (
	"encoding/json"
	"os"

	"github.com/coilworks/gosolenoid/internal/units"
)

// Summary holds every quantity the model derives from a single design
// point.
type Summary struct {
	// Winding geometry
	AverageRadius units.Radius        // r_a - effective mean winding radius (m)
	WireLength    units.Length        // total conductor length (m)
	WindingFactor units.WindingFactor // r_o²/r_a²
	DecayFactor   units.DecayFactor   // ln(μr)

	// Electrical
	Resistance units.Resistance // winding resistance (Ω)
	Current    units.Current    // steady-state current (A)
	Power      units.Power      // dissipated power (W)

	// Performance
	Force      units.Force      // pull force (N), negative toward the bore
	Efficiency units.Efficiency // force per watt (N/W)
}

// Evaluate computes the full set of derived quantities for the design.
func (d Design) Evaluate() (*Summary, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var (
		s   Summary
		err error
	)
	if s.AverageRadius, err = d.AverageRadius(); err != nil {
		return nil, err
	}
	if s.WireLength, err = d.WireLength(); err != nil {
		return nil, err
	}
	if s.WindingFactor, err = d.WindingFactor(); err != nil {
		return nil, err
	}
	if s.DecayFactor, err = d.DecayFactor(); err != nil {
		return nil, err
	}
	if s.Resistance, err = d.Resistance(); err != nil {
		return nil, err
	}
	if s.Current, err = d.Current(); err != nil {
		return nil, err
	}
	if s.Power, err = d.Power(); err != nil {
		return nil, err
	}
	if s.Force, err = d.Force(); err != nil {
		return nil, err
	}
	if s.Efficiency, err = d.Efficiency(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadDesign loads a design definition from a JSON file.
func LoadDesign(filepath string) (*Design, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var design Design
	if err := json.Unmarshal(data, &design); err != nil {
		return nil, err
	}

	if err := design.Validate(); err != nil {
		return nil, err
	}

	return &design, nil
}
