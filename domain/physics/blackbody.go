package physics

import "math"

// TemperatureFromLuminosity inverts the Stefan-Boltzmann law for a
// sphere of the given radius:
//
//	T = (L / (4 pi r^2 sigma))^(1/4)
//
// luminosity in erg/s, radius in cm, result in K. radius must be
// positive.
func TemperatureFromLuminosity(luminosity, radius float64) float64 {
	return math.Pow(luminosity/(4*math.Pi*radius*radius*StefanBoltzmann), 0.25)
}

// LuminosityFromTemperature is the forward Stefan-Boltzmann law,
// L = 4 pi r^2 sigma T^4.
func LuminosityFromTemperature(temperature, radius float64) float64 {
	t2 := temperature * temperature
	return 4 * math.Pi * radius * radius * StefanBoltzmann * t2 * t2
}

// BoundaryBeta is the velocity fraction of a homologously expanding
// boundary, beta = (r / t_explosion) / c.
func BoundaryBeta(radius, timeExplosion float64) float64 {
	return radius / timeExplosion / SpeedOfLight
}

// LorentzGamma returns 1 / sqrt(1 - beta^2).
func LorentzGamma(beta float64) float64 {
	return 1 / math.Sqrt(1-beta*beta)
}

// InnerBoundaryToCMFFactor converts energy emitted from a static inner
// boundary to the comoving frame of material receding at beta:
//
//	(2 beta + 1) / (1 - beta^2)
//
// It reduces to 1 as beta approaches 0.
func InnerBoundaryToCMFFactor(beta float64) float64 {
	return (2*beta + 1) / (1 - beta*beta)
}
