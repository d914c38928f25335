package units

import "math"

// GeopotentialToGeometric converts a geopotential altitude in feet to a
// geometric altitude in feet. Iterative FLOPS formulation; converges in a
// handful of steps for any altitude of aeronautical interest.
func GeopotentialToGeometric(altFt float64) float64 {
	if altFt <= 0 {
		return altFt
	}
	const (
		g      = 9.80665
		radius = 6.371e6
		cm1    = 0.99850
		oc2    = 26.76566e-10
		gns    = 9.8236930
	)
	ho := altFt * 0.30480
	z := (altFt + 4.37e-8*math.Pow(altFt, 2.00850)) * 0.30480

	dh := math.Inf(1)
	for math.Abs(dh) > 1.0 {
		r := radius + z
		gn := gns * math.Pow(radius/r, cm1+1.0)
		h := (r*gn*(math.Pow(r/radius, cm1)-1.0)/cm1 - z*(r-z/2.0)*oc2) / g
		dh = ho - h
		z += dh
	}
	return z / 0.30480
}
