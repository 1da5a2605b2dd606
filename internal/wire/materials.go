package wire

import (
	"fmt"
	"strings"
)

// Material holds the electrical properties of a conductor material at the
// 20°C reference temperature.
type Material struct {
	Name        string
	Resistivity float64 // ρ at 20°C (Ω·m)
	TempCoeff   float64 // α, per kelvin
}

// materials is the resistivity table, ordered from best to worst conductor.
// Values are the standard reference-book pairs; the negative coefficients
// at the bottom are semiconductors, kept so that temperature studies of
// non-metallic windings behave sensibly.
var materials = []Material{
	{"silver", 1.59e-8, 0.0038},
	{"copper", 1.68e-8, 0.0039},
	{"gold", 2.44e-8, 0.0034},
	{"aluminum", 2.82e-8, 0.0039},
	{"tungsten", 5.60e-8, 0.0045},
	{"zinc", 5.90e-8, 0.0037},
	{"nickel", 6.99e-8, 0.006},
	{"iron", 1.00e-7, 0.005},
	{"platinum", 1.06e-7, 0.00392},
	{"tin", 1.09e-7, 0.0045},
	{"lead", 2.20e-7, 0.0039},
	{"manganin", 4.82e-7, 0.000002},
	{"constantan", 4.90e-7, 0.000008},
	{"mercury", 9.80e-7, 0.0009},
	{"nichrome", 1.10e-6, 0.0004},
	{"carbon", 3.50e-5, -0.0005},
	{"germanium", 4.60e-1, -0.048},
	{"silicon", 6.40e+2, -0.075},
}

var materialIndex = make(map[string]Material, len(materials))

func init() {
	for _, m := range materials {
		materialIndex[m.Name] = m
	}
}

// UnknownMaterialError reports a material with no entry in the
// resistivity table.
type UnknownMaterialError struct {
	Material string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown wire material %q", e.Material)
}

// Lookup returns the table entry for a material name, case-insensitively.
func Lookup(name string) (Material, error) {
	m, ok := materialIndex[strings.ToLower(name)]
	if !ok {
		return Material{}, &UnknownMaterialError{Material: name}
	}
	return m, nil
}

// Materials returns the known material names in table order, best
// conductor first.
func Materials() []string {
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return names
}
