package sweep

import (
	"math"

	"github.com/coilworks/gosolenoid/internal/units"
)

// maxAmps is the maximum recommended continuous current for chassis wiring
// in free air, indexed by gauge from AWG 0 through AWG 40. Coil windings
// buried in a bobbin dissipate worse than chassis runs, so these are
// optimistic ceilings, drawn as limit curves rather than enforced.
var maxAmps = [41]float64{
	245, 211, 181, 158, 135, // 0–4
	118, 101, 89, 73, 64, // 5–9
	55, 47, 41, 35, 32, // 10–14
	28, 22, 19, 16, 14, // 15–19
	11, 9, 7, 4.7, 3.5, // 20–24
	2.7, 2.2, 1.7, 1.4, 1.2, // 25–29
	0.86, 0.7, 0.53, 0.43, 0.33, // 30–34
	0.27, 0.21, 0.17, 0.13, 0.11, // 35–39
	0.09, // 40
}

// CurrentLimit returns the maximum safe continuous current for a wire
// gauge. Fractional gauges, as produced by sweeping the gauge axis,
// interpolate linearly between the neighboring table rows; values outside
// the table clamp to its ends.
func CurrentLimit(awg units.WireGauge) units.Current {
	g := float64(awg)
	if g <= 0 {
		return units.Current(maxAmps[0])
	}
	if g >= 40 {
		return units.Current(maxAmps[40])
	}

	lo := int(math.Floor(g))
	frac := g - float64(lo)
	if frac == 0 {
		return units.Current(maxAmps[lo])
	}
	return units.Current(maxAmps[lo]*(1-frac) + maxAmps[lo+1]*frac)
}
